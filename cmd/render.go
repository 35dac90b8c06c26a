package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"pdfcombiner/pkg/assemble"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5cb85c"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0ad4e"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d9534f"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// renderReport prints one line per skipped input followed by the result.
func renderReport(w io.Writer, r *assemble.Report) {
	for _, warn := range r.Warnings {
		fmt.Fprintln(w, warningStyle.Render("Warning: "+warn.Message()))
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("PDF successfully created at: %s", r.Destination)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d page(s) from %d of %d file(s)", r.PagesWritten, r.Succeeded(), r.Attempted)))
}

// renderError prints a fatal combine error.
func renderError(w io.Writer, err error) {
	var asmErr *assemble.Error
	if errors.As(err, &asmErr) {
		for _, warn := range asmErr.Warnings {
			fmt.Fprintln(w, warningStyle.Render("Warning: "+warn.Message()))
		}
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}
