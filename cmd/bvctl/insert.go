package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "insert <index> <0|1>",
		Short: "Insert a bit at index and print the resulting sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			value := args[1] == "1"

			bv, err := newBitVector()
			if err != nil {
				return err
			}

			if err := bv.Insert(uint32(index), value); err != nil {
				return err
			}

			printInfo("%s\n", bitsToString(bv.Extract()))
			return nil
		},
	})
}
