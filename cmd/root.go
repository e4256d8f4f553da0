// Package cmd wires the cobra-based CLI commands for notionctl.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vthunder/notionctl/internal/config"
	"github.com/vthunder/notionctl/notion"
)

var (
	pageFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "notionctl",
	Short: "notionctl — manage a Notion page's blocks from the command line",
	Long: `notionctl is a small client for the Notion API. It retrieves a page,
appends, updates and archives text blocks, and lists a page's blocks with
nested children flattened into simple records.

The API token is read from NOTION_API_KEY (environment or .env file); the
target page from NOTION_PAGE_ID or --page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pageFlag, "page", "",
		"page ID to operate on (overrides NOTION_PAGE_ID)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging")
}

// newWorkspace builds the facade from flags and environment. Configuration
// problems are reported before any remote call is attempted.
func newWorkspace() (*notion.Workspace, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verboseFlag || cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := notion.NewClient(cfg.Token, notion.WithLogger(log))
	if err != nil {
		return nil, err
	}

	pageID := pageFlag
	if pageID == "" {
		pageID = cfg.PageID
	}
	if pageID == "" {
		return nil, fmt.Errorf("no page ID: set NOTION_PAGE_ID or pass --page")
	}

	return notion.NewWorkspace(client, pageID), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("format JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
