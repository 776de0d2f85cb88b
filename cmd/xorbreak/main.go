package main

import (
	"fmt"

	"github.com/egor9814/xorbreak"
	"github.com/spf13/cobra"
)

type versionType struct {
	Major, Minor, Patch int
	Prefix, Suffix      string
}

func (v *versionType) String() string {
	if *v == (versionType{}) {
		return "private-dev"
	}
	return fmt.Sprintf("%s%d.%d.%d%s", v.Prefix, v.Major, v.Minor, v.Patch, v.Suffix)
}

var Version versionType

// defaultKeyLength is the key length used when -k is not given.
const defaultKeyLength = 6

func newRootCommand() *cobra.Command {
	opts := &crackOptions{}
	cmd := &cobra.Command{
		Use:   "xorbreak [flags] [plaintext-prefix]",
		Short: "Recover the key of a repeating-key XOR cipher with a known key length",
		Long: `Recover the key of a repeating-key XOR cipher with a known key length.

The cipher is read from stdin (or --file) until EOF. Every key byte is tried at
every key position, and only bytes that decrypt the whole column into the
chosen alphabet are kept. Positions with a single candidate are decrypted,
others are shown as the placeholder.

Give the beginning of the plain text as an argument to derive the whole key:
  echo 1b3a55 | xorbreak -x -k 3 abc
  xorbreak encrypt -k secret -z -o msg.xor < msg.txt && xorbreak -f msg.xor -k 6 "hello "`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOutput = cmd.ErrOrStderr()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return crack(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	f := cmd.Flags()
	f.IntVarP(&opts.keyLen, "key-length", "k", defaultKeyLength, "key length in bytes")
	f.StringVarP(&opts.file, "file", "f", "-", "cipher file, '-' for stdin")
	f.BoolVarP(&opts.hex, "hex", "x", false, "cipher is hex encoded")
	f.StringVarP(&opts.alphabet, "alphabet", "a", "readable", "plain text alphabet: readable, printable or =<chars>")
	f.StringVarP(&opts.placeholder, "placeholder", "p", string(rune(xorbreak.DefaultPlaceholder)), "marks undetermined plain text bytes")
	f.StringVarP(&opts.zstd, "zstd", "z", "", "force zstd decoding: auto, or l=low|mid|high,t=<threads>,m=<n>[%|K|M|G]")
	f.Lookup("zstd").NoOptDefVal = "auto"
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	cmd.AddCommand(newEncryptCommand())
	return cmd
}

func newEncryptCommand() *cobra.Command {
	opts := &encryptOptions{}
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt plain text with a repeating XOR key",
		Long: `Encrypt plain text with a repeating XOR key.

Produces cipher text for the main command:
  xorbreak encrypt -k oR0W2a -x <<< "the quick brown fox"
  xorbreak encrypt -k secret -z=l=high -f msg.txt -o msg.xor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return encrypt(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.key, "key", "k", "", "encryption key")
	f.StringVarP(&opts.file, "file", "f", "-", "plain text file, '-' for stdin")
	f.StringVarP(&opts.output, "output", "o", "-", "output file, '-' for stdout")
	f.BoolVarP(&opts.hex, "hex", "x", false, "write hex encoded cipher")
	f.StringVarP(&opts.zstd, "zstd", "z", "", "compress output: auto, or l=low|mid|high,t=<threads>,m=<n>[%|K|M|G]")
	f.Lookup("zstd").NoOptDefVal = "auto"
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func main() {
	handleCommand(newRootCommand().Execute())
}
