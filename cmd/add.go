package cmd

import (
	"github.com/spf13/cobra"
)

var addParentFlag string

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a paragraph block with the given text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		block, err := ws.AddText(cmd.Context(), args[0], addParentFlag)
		if err != nil {
			return err
		}
		return printJSON(block)
	},
}

func init() {
	addCmd.Flags().StringVar(&addParentFlag, "parent", "",
		"block ID to append under (default: the page itself)")
	rootCmd.AddCommand(addCmd)
}
