package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a puzzle for row/column/box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPuzzle(args)
			if err != nil {
				return err
			}
			b, err := domain.Parse(string(raw))
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				for _, c := range conflicts {
					log.Warn("conflict", "row", c.Row, "col", c.Col)
				}
				return errors.New("board violates sudoku constraints")
			}
			log.Info("board is valid")
			return nil
		},
	}
}
