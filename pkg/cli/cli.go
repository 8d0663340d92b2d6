// Package cli provides styled terminal output for the hostreport command.
// Styling is disabled automatically when stdout is not a terminal.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64B5F6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44336"))
	pathStyle    = lipgloss.NewStyle().Underline(true)
)

// interactive reports whether the given file is a terminal.
func interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(style lipgloss.Style, s string) string {
	if !interactive(os.Stdout) {
		return s
	}
	return style.Render(s)
}

// Heading prints a bold section heading.
func Heading(s string) {
	fmt.Println(render(headingStyle, s))
}

// Successf prints a success line to stdout.
func Successf(format string, args ...any) {
	fmt.Println(render(successStyle, fmt.Sprintf(format, args...)))
}

// Errorf prints an error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, render(errorStyle, fmt.Sprintf(format, args...)))
}

// Pathf prints a file path line to stdout.
func Pathf(format string, args ...any) {
	fmt.Println(render(pathStyle, fmt.Sprintf(format, args...)))
}

// Confirm asks a y/n question on the terminal. It returns false without
// prompting when stdin is not interactive.
func Confirm(prompt string) bool {
	if !interactive(os.Stdin) {
		return false
	}
	fmt.Printf("%s (y/n): ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
