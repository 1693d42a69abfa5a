package generator

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/jonvuri/jshint-messages/catalog"
	"golang.org/x/term"
	"io"
	"os"
	"sync"
)

// Reporter receives one notification per written document
type Reporter interface {
	Report(category catalog.Category, code string)
	// Close is called once after the last document
	Close() error
}

// NopReporter discards progress
type NopReporter struct{}

func (NopReporter) Report(catalog.Category, string) {}

func (NopReporter) Close() error { return nil }

var categoryColors = map[catalog.Category]color.Attribute{
	catalog.Error:   color.FgRed,
	catalog.Warning: color.FgYellow,
	catalog.Info:    color.FgCyan,
}

// ConsoleReporter writes "<code> " per document and a final newline
type ConsoleReporter struct {
	writer   io.Writer
	mux      sync.Mutex
	printers map[catalog.Category]*color.Color
}

// NewConsoleReporter creates a reporter; colors are used only when enabled and writer is a terminal
func NewConsoleReporter(writer io.Writer, colored bool) *ConsoleReporter {
	colored = colored && IsTerminal(writer)
	ret := &ConsoleReporter{writer: writer, printers: map[catalog.Category]*color.Color{}}
	for category, attribute := range categoryColors {
		printer := color.New(attribute)
		if colored {
			printer.EnableColor()
		} else {
			printer.DisableColor()
		}
		ret.printers[category] = printer
	}
	return ret
}

func (r *ConsoleReporter) Report(category catalog.Category, code string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if printer, ok := r.printers[category]; ok {
		_, _ = printer.Fprint(r.writer, code)
	} else {
		_, _ = fmt.Fprint(r.writer, code)
	}
	_, _ = fmt.Fprint(r.writer, " ")
}

func (r *ConsoleReporter) Close() error {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, err := fmt.Fprintln(r.writer)
	return err
}

// IsTerminal reports whether writer is an interactive terminal
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
