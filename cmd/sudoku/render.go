package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-solver/internal/domain"
)

var (
	givenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderBoard draws the solved grid with 3x3 band separators, highlighting
// the cells the solver filled in against the original givens.
func renderBoard(solved, original *domain.Board) string {
	hband := frameStyle.Render(strings.Repeat("─", 9) + "┼" + strings.Repeat("─", 9) + "┼" + strings.Repeat("─", 9))
	var sb strings.Builder
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			cell := " . "
			if v := solved.Values[r][c]; v != 0 {
				cell = fmt.Sprintf(" %d ", v)
			}
			style := givenStyle
			if original.Values[r][c] == 0 {
				style = filledStyle
			}
			sb.WriteString(style.Render(cell))
			if c == 2 || c == 5 {
				sb.WriteString(frameStyle.Render("│"))
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(hband)
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
