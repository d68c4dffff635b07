// Package report renders a verifier run as a table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/oshokin/plist-version-verifier/internal/domain/verification"
)

// maxMessageWidth keeps long parse errors from stretching the table.
const maxMessageWidth = 60

// Render writes the steps of r as a table followed by a result line.
func Render(w io.Writer, r *verification.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Version substitution %s", r.Version))
	t.AppendHeader(table.Row{"#", "Step", "Subject", "Status", "Details"})

	for i, event := range r.Events {
		t.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			string(event.Step),
			event.Subject,
			formatStatus(event.Status),
			text.WrapSoft(event.Message, maxMessageWidth),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	if r.Succeeded() {
		_, _ = fmt.Fprintln(w, text.FgGreen.Sprint("Result: all checks passed"))
		return
	}

	_, _ = fmt.Fprintln(w, text.FgRed.Sprintf("Result: %v", r.Err))
}

func formatStatus(status verification.Status) string {
	switch status {
	case verification.StatusOK:
		return text.FgGreen.Sprint("OK")
	case verification.StatusFailed:
		return text.FgRed.Sprint("FAILED")
	default:
		return string(status)
	}
}
