package util

import (
	"fmt"
	"io"
)

// Logger interface for console output
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	VerbosePrintf(format string, v ...interface{})
	VerbosePrintln(v ...interface{})
}

type writerLogger struct {
	writer  io.Writer
	verbose bool
}

// New creates a logger that writes to the given writer. Verbose messages are
// only emitted when verbose is true; pass io.Discard to silence all output.
func New(writer io.Writer, verbose bool) Logger {
	return &writerLogger{writer: writer, verbose: verbose}
}

func (l *writerLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.writer, format, v...)
}

func (l *writerLogger) Println(v ...interface{}) {
	fmt.Fprintln(l.writer, v...)
}

func (l *writerLogger) VerbosePrintf(format string, v ...interface{}) {
	if l.verbose {
		fmt.Fprintf(l.writer, format, v...)
	}
}

func (l *writerLogger) VerbosePrintln(v ...interface{}) {
	if l.verbose {
		fmt.Fprintln(l.writer, v...)
	}
}
