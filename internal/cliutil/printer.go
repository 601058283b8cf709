package cliutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/erraggy/flexschema/internal/issues"
	"github.com/erraggy/flexschema/internal/severity"
)

// Printer writes status lines and issues, colored by severity.
type Printer struct {
	w       io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
	info    *color.Color
	muted   *color.Color
}

// NewPrinter returns a Printer writing to w. Color follows the terminal
// detection of fatih/color unless noColor forces it off.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:       w,
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
		muted:   color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.success, p.warning, p.failure, p.info, p.muted} {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	Writef(p.w, "%s %s\n", p.success.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	Writef(p.w, "%s %s\n", p.warning.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	Writef(p.w, "%s %s\n", p.failure.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Mutedf writes a dimmed line.
func (p *Printer) Mutedf(format string, args ...any) {
	Writef(p.w, "%s\n", p.muted.Sprintf(format, args...))
}

// Issue writes one issue, colored by its severity.
func (p *Printer) Issue(issue issues.Issue) {
	c := p.info
	switch issue.Severity {
	case severity.SeverityWarning:
		c = p.warning
	case severity.SeverityError, severity.SeverityCritical:
		c = p.failure
	}
	Writef(p.w, "%s\n", c.Sprint(issue.String()))
}

// Issues writes every issue followed by a one-line tally. Nothing is
// written for an empty list.
func (p *Printer) Issues(list []issues.Issue) {
	if len(list) == 0 {
		return
	}
	for _, issue := range list {
		p.Issue(issue)
	}
	c := issues.Count(list)
	p.Mutedf("%d warning(s), %d critical, %d info", c.Warning, c.Critical+c.Error, c.Info)
}
