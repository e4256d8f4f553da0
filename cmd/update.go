package cmd

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <block-id> <text>",
	Short: "Replace a block's text",
	Long: `Replace a block's text content. Only paragraph blocks support a plain
text rewrite; for other types a warning is logged and the write is still
attempted, leaving the service to accept or reject it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		block, err := ws.UpdateBlock(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(block)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
