// Package style renders diagnostics and orderings for the terminal using
// Lipgloss.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/golangsnmp/formulaorder/internal/types"
)

var (
	colorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(colorAccent)
	Dim     = lipgloss.NewStyle().Foreground(colorMuted)
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Severity returns the style for a diagnostic severity.
func Severity(s types.Severity) lipgloss.Style {
	switch s {
	case types.SeverityError:
		return Error
	case types.SeverityWarning:
		return Warning
	default:
		return Info
	}
}

// FormatDiagnostic renders d as "severity: source:line:col: message
// [code]". Location parts that are unknown are left out.
func FormatDiagnostic(d types.Diagnostic) string {
	var b strings.Builder
	b.WriteString(Severity(d.Severity).Render(d.Severity.String()))
	b.WriteString(": ")

	var loc []string
	if d.Source != "" {
		loc = append(loc, d.Source)
	}
	if d.Line > 0 {
		loc = append(loc, strconv.Itoa(d.Line))
		if d.Column > 0 {
			loc = append(loc, strconv.Itoa(d.Column))
		}
	}
	if len(loc) > 0 {
		b.WriteString(Bold.Render(strings.Join(loc, ":")))
		b.WriteString(": ")
	}

	b.WriteString(d.Message)
	if d.Code != "" {
		b.WriteString(" ")
		b.WriteString(Dim.Render("[" + d.Code + "]"))
	}
	return b.String()
}

// FormatRanked renders one ordered formula line prefixed by its rank,
// right-aligned to width digits.
func FormatRanked(rank, width int, label string) string {
	return fmt.Sprintf("%s %s", Dim.Render(fmt.Sprintf("%*d", width, rank)), label)
}

// FormatDependsOn renders the indented dependency list shown under a
// ranked formula.
func FormatDependsOn(width int, deps []string) string {
	if len(deps) == 0 {
		return ""
	}
	return strings.Repeat(" ", width+1) + Dim.Render("after: ") + Info.Render(strings.Join(deps, " | "))
}
