package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var selectValue bool

func init() {
	cmd := &cobra.Command{
		Use:   "select <k>",
		Short: "Find the position of the k-th (1-indexed) occurrence of --value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}

			bv, err := newBitVector()
			if err != nil {
				return err
			}

			pos, err := bv.Select(uint32(k), selectValue)
			if err != nil {
				return err
			}

			printInfo("%d\n", pos)
			return nil
		},
	}
	cmd.Flags().BoolVar(&selectValue, "value", true, "bit value to search for")
	rootCmd.AddCommand(cmd)
}
