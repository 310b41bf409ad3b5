package main

import (
	"fmt"
	"os"

	bitvector "github.com/hupe1980/dynabitvector"
	"github.com/spf13/cobra"
)

var (
	bitsFlag      string
	blockSizeFlag uint32
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "bvctl",
	Short: "Inspect and exercise a dynamic bit vector",
	Long: `bvctl builds a dynabitvector.BitVector from a literal string of
0s and 1s, applies a single operation to it, and prints the result. It
has no persistence of its own; --bits is the entire initial state.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&bitsFlag, "bits", "", "initial bit sequence, e.g. 10110")
	rootCmd.PersistentFlags().Uint32Var(&blockSizeFlag, "block-size", 64, "leaf block capacity")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newBitVector() (*bitvector.BitVector, error) {
	bits := make([]bool, len(bitsFlag))
	for i, c := range bitsFlag {
		switch c {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("invalid character %q in --bits, expected only 0/1", c)
		}
	}
	return bitvector.NewFromBits(bits, bitvector.WithBlockSize(blockSizeFlag)), nil
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf(format, args...)
	}
}

func bitsToString(bits []bool) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
