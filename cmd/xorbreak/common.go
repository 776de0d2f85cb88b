package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func isStdIOFile(name string) bool {
	return name == "-" || name == ""
}

func openFileForRead(name string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if isStdIOFile(name) {
		return stdin, nil, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func openFileForWrite(name string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if isStdIOFile(name) {
		return stdout, nil, nil
	}
	dir := filepath.Dir(name)
	if info, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	} else if !info.IsDir() {
		return nil, nil, fmt.Errorf("expected dir at %q", dir)
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func handleClosing(c io.Closer, name string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logf("warning: cannot close %q: %v\n", name, err)
	}
}

// readCipher reads the whole input. Hex input may be split by whitespace.
func readCipher(r io.Reader, isHex bool) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !isHex {
		return buf, nil
	}
	buf, err = hex.DecodeString(strings.Join(strings.Fields(string(buf)), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return buf, nil
}

func handleCommand(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
