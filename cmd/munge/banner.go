package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

func renderBanner(mode string, level int, strategy string) string {
	title := lipgloss.NewStyle().Bold(true).Render("munge " + version)
	detail := lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("mode=%s level=%d dedupe=%s", mode, level, strategy))
	return bannerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, detail))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
