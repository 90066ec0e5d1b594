// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package cli implements the sha512sum command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sha512 "github.com/superwindstorm/sha512x64"
	"github.com/superwindstorm/sha512x64/hasher"
	"github.com/superwindstorm/sha512x64/wordarray"
)

// EnvKey names the environment variable holding a default HMAC key.
const EnvKey = "SHA512SUM_KEY"

const readSize = 32 * 1024

type options struct {
	key     string
	keyHex  string
	strings bool
	zstd    bool
	impl    string
	verbose bool
}

// NewCommand returns the sha512sum command reading "-" from stdin and
// printing sums to stdout.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opt options
	cmd := &cobra.Command{
		Use:   "sha512sum [flags] [FILE|STRING ...]",
		Short: "Print SHA-512 or HMAC-SHA512 checksums.",
		Long: `
Print the SHA-512 checksum of each FILE in the same format as the
standard sha512sum tool. With no FILE, or when FILE is -, read standard
input.

With --key, --key-hex or $` + EnvKey + ` set, print HMAC-SHA512 instead.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opt, args, stdin, stdout, newLogger(stderr, opt.verbose))
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opt.key, "key", "k", "", "HMAC key as UTF-8 text")
	flags.StringVar(&opt.keyHex, "key-hex", "", "HMAC key as hex")
	flags.BoolVarP(&opt.strings, "string", "s", false, "Hash the arguments themselves instead of files")
	flags.BoolVarP(&opt.zstd, "zstd", "z", false, "Decompress zstd input before hashing")
	flags.StringVar(&opt.impl, "impl", sha512.ImplAuto.String(), "Compression engine: auto, native or pairs")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "Log debug information to stderr")
	return cmd
}

// Execute runs the command with argv as os.Args.
func Execute(argv []string) error {
	cmd := NewCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(argv[1:])
	return cmd.Execute()
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

// macKey returns the HMAC key, or nil for a plain hash. Flags win over
// the environment.
func (o *options) macKey() (*wordarray.WordArray, error) {
	switch {
	case o.key != "" && o.keyHex != "":
		return nil, errors.New("--key and --key-hex are mutually exclusive")
	case o.keyHex != "":
		return wordarray.Parse(o.keyHex, wordarray.Hex)
	case o.key != "":
		return wordarray.Parse(o.key, wordarray.Utf8)
	}
	if env := os.Getenv(EnvKey); env != "" {
		return wordarray.Parse(env, wordarray.Utf8)
	}
	return nil, nil
}

func run(opt *options, args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	impl, err := sha512.ParseImpl(opt.impl)
	if err != nil {
		return err
	}
	if impl == sha512.ImplAuto {
		impl = sha512.Implementation()
	}
	key, err := opt.macKey()
	if err != nil {
		return fmt.Errorf("bad key: %w", err)
	}
	newStreamer := func() hasher.Streamer {
		if key != nil {
			return hasher.NewHMAC(sha512.NewAlgorithmImpl(impl), key)
		}
		return hasher.New(sha512.NewAlgorithmImpl(impl))
	}
	log.WithFields(logrus.Fields{"impl": impl, "hmac": key != nil}).Debug("starting")

	if len(args) == 0 {
		if opt.strings {
			return errors.New("need at least one STRING with --string")
		}
		args = []string{"-"}
	}
	for _, arg := range args {
		name := arg
		if opt.strings {
			name = strconv.Quote(arg)
		}
		sum, n, err := sumArg(opt, arg, stdin, newStreamer())
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		log.WithFields(logrus.Fields{"input": name, "bytes": n}).Debug("hashed")
		fmt.Fprintf(stdout, "%s  %s\n", sum.ToString(wordarray.Hex), name)
	}
	return nil
}

// sumArg hashes one command line argument: the argument itself with
// --string, otherwise the file (or stdin) it names.
func sumArg(opt *options, arg string, stdin io.Reader, s hasher.Streamer) (*wordarray.WordArray, int64, error) {
	var r io.Reader
	if opt.strings {
		r = strings.NewReader(arg)
	} else {
		f, err := openInput(arg, stdin)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	}
	if opt.zstd {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		r = zr
	}
	return hashReader(s, r)
}

// hashReader feeds r to s in readSize pieces.
func hashReader(s hasher.Streamer, r io.Reader) (*wordarray.WordArray, int64, error) {
	buf := make([]byte, readSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if uerr := s.Update(wordarray.FromBytes(buf[:n])); uerr != nil {
				return nil, total, uerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, total, err
		}
	}
	sum, err := s.Finalize(nil)
	return sum, total, err
}
