package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apcamargo/seqalign/output"
)

var matricesCmd = &cobra.Command{
	Use:   "matrices [name]",
	Short: "List built-in substitution matrices or show one as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			data, err := json.MarshalIndent(output.ListMatrices(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		}

		info, err := output.MatrixInfoByName(args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(matricesCmd)
}
