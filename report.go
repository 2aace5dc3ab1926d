package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by -color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type reportStyle struct {
	pass lipgloss.Style
	fail lipgloss.Style
}

// newReportStyle builds the PASS/FAIL styles for output written to w.
// Colors are the basic ANSI green and red so they survive 16-color
// terminals.
func newReportStyle(w io.Writer, mode string) (*reportStyle, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case colorAlways:
		r.SetColorProfile(termenv.ANSI)
	case colorNever:
		r.SetColorProfile(termenv.Ascii)
	case colorAuto, "":
		if isTerminal(w) {
			r.SetColorProfile(termenv.ANSI)
		} else {
			r.SetColorProfile(termenv.Ascii)
		}
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return &reportStyle{
		pass: r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")),
	}, nil
}

// printReport writes one line per outcome followed by the verdict.
func printReport(w io.Writer, rep *Report, style *reportStyle, summary bool) error {
	for _, o := range rep.Outcomes {
		var line string
		if o.Found {
			line = style.pass.Render(fmt.Sprintf("PASS  =   %s", o.Token))
		} else {
			line = style.fail.Render(fmt.Sprintf("FAIL  =   %s", o.Token))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if summary {
		if _, err := fmt.Fprintf(w, "%d/%d answers found\n", rep.Found(), len(rep.Outcomes)); err != nil {
			return err
		}
	}

	verdict := style.pass.Render("ALL TESTS PASSED")
	if !rep.Passed {
		verdict = style.fail.Render("TEST FAILED")
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
