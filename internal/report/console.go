package report

import (
	"fmt"
	"io"

	"SwingScreener/internal/model"
)

// Reporter consumes a completed scan report and presents it. The screening
// core produces typed records only; all rendering lives here.
type Reporter interface {
	Report(report *model.ScanReport) error
}

// ConsoleReporter writes the rendered report to a writer, typically stdout.
type ConsoleReporter struct {
	Out         io.Writer
	StrongScore int
}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter(out io.Writer, strongScore int) *ConsoleReporter {
	return &ConsoleReporter{Out: out, StrongScore: strongScore}
}

func (c *ConsoleReporter) Report(report *model.ScanReport) error {
	_, err := fmt.Fprint(c.Out, FormatReport(report, c.StrongScore))
	return err
}
