package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
)

var (
	flagStore   string
	flagDataDir string
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve and serve standard 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagStore, "store", "fs", "puzzle storage backend: fs|sqlite")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "./data", "puzzle storage directory")
	root.AddCommand(newSolveCommand(), newValidateCommand(), newServeCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

// newStorage builds the configured storage backend. SQLite stores implement
// io.Closer; callers close them when done.
func newStorage() (ports.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(flagStore)) {
	case "sqlite":
		if err := os.MkdirAll(flagDataDir, 0o755); err != nil {
			return nil, err
		}
		return storage.NewSQLite(filepath.Join(flagDataDir, "puzzles.db"))
	case "", "fs":
		return storage.NewFS(flagDataDir), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want fs or sqlite)", flagStore)
	}
}
