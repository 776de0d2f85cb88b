package main

import (
	"fmt"

	"github.com/egor9814/xorbreak"
	"github.com/spf13/cobra"
)

type crackOptions struct {
	file        string
	alphabet    string
	placeholder string
	zstd        string
	keyLen      int
	hex         bool
	verbose     bool
}

func crack(cmd *cobra.Command, opts *crackOptions, args []string) error {
	if opts.keyLen <= 0 {
		return fmt.Errorf("%w: %d", xorbreak.ErrInvalidKeyLength, opts.keyLen)
	}
	if len(opts.placeholder) != 1 {
		return fmt.Errorf("placeholder must be a single byte, got %q", opts.placeholder)
	}
	plausible, err := xorbreak.ParsePredicate(opts.alphabet)
	if err != nil {
		return err
	}
	var zi *zstdInfo
	if cmd.Flags().Changed("zstd") {
		if zi, err = parseZstd(opts.zstd); err != nil {
			return err
		}
	}

	if opts.verbose {
		log("reading cipher")
		if !isStdIOFile(opts.file) {
			logf(" %q", opts.file)
		}
		logln("...")
	}
	r, c, err := openFileForRead(opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer handleClosing(c, opts.file)

	r, c, err = zi.wrapReader(r)
	if err != nil {
		return err
	}
	defer handleClosing(c, "ZSTD Decompressor")

	cipher, err := readCipher(r, opts.hex)
	if err != nil {
		return err
	}
	if len(cipher) == 0 {
		return xorbreak.ErrEmptyCipher
	}

	if opts.verbose {
		logf("trying %d key bytes at %d positions...\n", 256, opts.keyLen)
	}
	candidates, err := xorbreak.FindCandidates(cipher, opts.keyLen, plausible)
	if err != nil {
		return err
	}

	rep := report{w: cmd.OutOrStdout()}
	rep.header(len(cipher), opts.keyLen)
	rep.counts(candidates.Counts())
	rep.partial(xorbreak.DecryptPartial(cipher, candidates, opts.placeholder[0]))

	if len(args) == 0 {
		if key, ok := candidates.Key(); ok {
			rep.resolved()
			rep.key(key, xorbreak.Decrypt(cipher, key))
			return nil
		}
		rep.hint(cmd.Root().Name())
		return nil
	}

	key, err := xorbreak.DeriveKey(cipher, []byte(args[0]), opts.keyLen)
	if err != nil {
		return err
	}
	rep.key(key, xorbreak.Decrypt(cipher, key))
	return nil
}
