package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <block-id>",
	Short: "Archive a block",
	Long: `Archive a block. Deletion is logical: the service keeps the record
and flags it archived, and the archived representation is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		block, err := ws.DeleteBlock(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(block)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
