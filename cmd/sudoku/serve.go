package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON solve/validate/persistence API",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("log-level", "info", "debug|info|warn|error")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Settings resolve flag > env (SUDOKU_ADDR, ...) > sudoku.yaml > default.
	v := viper.New()
	v.SetConfigName("sudoku")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SUDOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("log-level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("store", cmd.Root().PersistentFlags().Lookup("store"))
	_ = v.BindPFlag("data-dir", cmd.Root().PersistentFlags().Lookup("data-dir"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	flagStore = v.GetString("store")
	flagDataDir = v.GetString("data-dir")

	lvl := slog.LevelInfo
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	st, err := newStorage()
	if err != nil {
		return err
	}
	if c, ok := st.(io.Closer); ok {
		defer c.Close()
	}

	uc := usecase.NewService(solver.NewEngine(), validator.New(), st)
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", srv.Addr, "store", flagStore, "dataDir", flagDataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
