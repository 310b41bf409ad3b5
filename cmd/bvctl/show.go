package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the tree shape of the vector built from --bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bv, err := newBitVector()
			if err != nil {
				return err
			}
			printInfo("%s", bv.Dump())
			return nil
		},
	})
}
