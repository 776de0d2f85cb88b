package main

import (
	"fmt"
	"io"
	"os"
)

var logOutput io.Writer = os.Stderr

func log(args ...any) {
	_, _ = fmt.Fprint(logOutput, args...)
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, format, args...)
}

func logln(args ...any) {
	_, _ = fmt.Fprintln(logOutput, args...)
}
