package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the bit at index and print the resulting sequence",
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

			if err := bv.Delete(uint32(index)); err != nil {
				return err
			}

			printInfo("%s\n", bitsToString(bv.Extract()))
			return nil
		},
	})
}
