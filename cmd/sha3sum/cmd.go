package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagAlgorithm int
	flagKeccak    bool
	flagCheck     bool
	flagVerbose   bool
)

// Cmd prints the digest of each file, or of stdin when no file (or "-") is given.
var Cmd = &cobra.Command{
	Use:           "sha3sum [flags] [file...]",
	Short:         "print or check SHA3 digests",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	Cmd.Flags().IntVarP(&flagAlgorithm, "algorithm", "a", 256, "digest size in bits: 224, 256, 384, or 512")
	Cmd.Flags().BoolVar(&flagKeccak, "keccak", false, "use raw Keccak without SHA3 domain separation")
	Cmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "read digests from the files and check them")
	Cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each file's size")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	alg, err := newAlgorithm(flagAlgorithm, flagKeccak)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range args {
		if flagCheck {
			n, err := checkFile(alg, name, out)
			if err != nil {
				return err
			}
			failed += n
			continue
		}

		sum, n, err := sumFile(alg, name)
		if err != nil {
			return err
		}
		log.Info().Str("file", name).Str("size", humanize.Bytes(uint64(n))).Msgf("hashed with %s", alg)
		if _, err := fmt.Fprintln(out, formatLine(sum, name)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d computed checksum(s) did not match", failed)
	}
	return nil
}

func sumFile(alg algorithm, name string) ([]byte, int64, error) {
	r, err := open(name)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = r.Close() }()

	sum, n, err := sumReader(alg.New(), r)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot hash %s: %w", name, err)
	}
	return sum, n, nil
}

func checkFile(alg algorithm, name string, out io.Writer) (int, error) {
	r, err := open(name)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Close() }()

	return check(alg, r, func(target string) ([]byte, error) {
		sum, n, err := sumFile(alg, target)
		if err == nil {
			log.Info().Str("file", target).Str("size", humanize.Bytes(uint64(n))).Msg("checked")
		}
		return sum, err
	}, out)
}

func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", name, err)
	}
	return f, nil
}
