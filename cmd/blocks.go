package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vthunder/notionctl/notion"
)

var blocksJSONFlag bool

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the page's blocks, nested children flattened",
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
		if blocksJSONFlag {
			return printJSON(blocks)
		}
		fmt.Print(renderBlockList(blocks))
		return nil
	},
}

var (
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	typeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
)

// renderBlockList formats the flattened listing for the terminal,
// indenting children under their parents.
func renderBlockList(blocks []notion.SimplifiedBlock) string {
	depths := make(map[string]int, len(blocks))
	var out strings.Builder
	for _, b := range blocks {
		depth := 0
		if b.ParentID != "" {
			depth = depths[b.ParentID] + 1
		}
		depths[b.ID] = depth

		out.WriteString(strings.Repeat("  ", depth))
		out.WriteString(idStyle.Render(shortID(b.ID)))
		out.WriteString("  ")
		out.WriteString(typeStyle.Render(fmt.Sprintf("%-18s", b.Type)))
		out.WriteString("  ")
		out.WriteString(b.Text)
		out.WriteString("\n")
	}
	return out.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	blocksCmd.Flags().BoolVar(&blocksJSONFlag, "json", false, "print the listing as JSON")
	rootCmd.AddCommand(blocksCmd)
}
