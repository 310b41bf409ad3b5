package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var rankValue bool

func init() {
	cmd := &cobra.Command{
		Use:   "rank <index>",
		Short: "Count occurrences of --value in [0, index)",
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

			printInfo("%d\n", bv.Rank(uint32(index), rankValue))
			return nil
		},
	}
	cmd.Flags().BoolVar(&rankValue, "value", true, "bit value to count")
	rootCmd.AddCommand(cmd)
}
