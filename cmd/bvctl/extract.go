package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "extract",
		Short: "Print the full bit sequence built from --bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bv, err := newBitVector()
			if err != nil {
				return err
			}
			printInfo("%s\n", bitsToString(bv.Extract()))
			return nil
		},
	})
}
