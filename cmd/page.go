package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vthunder/notionctl/notion"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Retrieve the configured page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		page, err := ws.GetPage(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var pageExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the page's blocks as markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		blocks, err := ws.PageBlocks(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(notion.RenderMarkdown(blocks))
		return nil
	},
}

func init() {
	pageCmd.AddCommand(pageExportCmd)
	rootCmd.AddCommand(pageCmd)
}
