package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "access <index>",
		Short: "Print the bit at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}

			bv, err := newBitVector()
			if err != nil {
				return err
			}

			if bv.Access(uint32(index)) {
				printInfo("1\n")
			} else {
				printInfo("0\n")
			}
			return nil
		},
	})
}
