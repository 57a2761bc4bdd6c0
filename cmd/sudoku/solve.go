package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func newSolveCommand() *cobra.Command {
	var (
		save       bool
		name       string
		difficulty string
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long: `Solve a puzzle read from a file or stdin.

Input is 81 cells as digits, '.' or '0' for a blank; whitespace is ignored,
so both a single line and a 9-line grid work.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPuzzle(args)
			if err != nil {
				return err
			}
			b, err := domain.Parse(string(raw))
			if err != nil {
				return err
			}
			bt, err := solver.NewBacktracker(b)
			if err != nil {
				return err
			}
			log.Info("puzzle loaded", "percentSolved", fmt.Sprintf("%.1f%%", bt.PercentSolved()))

			out, st, err := bt.Solve()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(out, b))
			log.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))

			if !save {
				return nil
			}
			store, err := newStorage()
			if err != nil {
				return err
			}
			if c, ok := store.(io.Closer); ok {
				defer c.Close()
			}
			p := &domain.Puzzle{
				ID:         uuid.NewString(),
				Name:       name,
				Difficulty: difficulty,
				Board:      *b,
				Solution:   out,
				CreatedAt:  time.Now().UnixNano(),
			}
			if err := store.Save(cmd.Context(), p); err != nil {
				return err
			}
			log.Info("saved", "id", p.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "persist the puzzle and its solution")
	cmd.Flags().StringVar(&name, "name", "", "name to store with the puzzle")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty label to store with the puzzle")
	return cmd
}

func readPuzzle(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(io.LimitReader(os.Stdin, 1024))
}
