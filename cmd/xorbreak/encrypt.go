package main

import (
	"encoding/hex"
	"errors"
	"io"

	"github.com/egor9814/xorbreak"
	"github.com/spf13/cobra"
)

var errEmptyKey = errors.New("key must not be empty")

type encryptOptions struct {
	file    string
	output  string
	key     string
	zstd    string
	hex     bool
	verbose bool
}

func encrypt(cmd *cobra.Command, opts *encryptOptions) (err error) {
	if len(opts.key) == 0 {
		return errEmptyKey
	}
	var zi *zstdInfo
	if cmd.Flags().Changed("zstd") {
		if zi, err = parseZstd(opts.zstd); err != nil {
			return err
		}
	}

	r, c, err := openFileForRead(opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer handleClosing(c, opts.file)
	plain, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if opts.verbose {
		logf("encrypting %d bytes", len(plain))
		if !isStdIOFile(opts.output) {
			logf(" into %q", opts.output)
		}
		logln("...")
	}
	w, c, err := openFileForWrite(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer handleClosing(c, opts.output)

	w, zc, err := zi.wrapWriter(w, uint64(len(plain)))
	if err != nil {
		return err
	}
	err = writeCipher(w, plain, []byte(opts.key), opts.hex)
	if zc != nil {
		if cerr := zc.Close(); err == nil {
			err = cerr
		}
	}
	if err == nil && opts.verbose {
		logln("done!")
	}
	return err
}

func writeCipher(w io.Writer, plain, key []byte, isHex bool) error {
	out := w
	if isHex {
		out = hex.NewEncoder(w)
	}
	if _, err := xorbreak.NewWriter(out, key).Write(plain); err != nil {
		return err
	}
	if isHex {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
