package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/vthunder/notionctl/notion"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page/block operations as MCP tools over stdio",
	Long: `Expose the same operations the CLI performs as MCP tools over stdio,
so editors and agents can drive them without shelling out. Each tool
accepts an optional page_id argument that retargets the workspace.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		s := server.NewMCPServer(
			"notionctl",
			"1.0.0",
			server.WithToolCapabilities(true),
		)

		s.AddTool(getPageTool(), handleGetPage(ws))
		s.AddTool(listBlocksTool(), handleListBlocks(ws))
		s.AddTool(addTextTool(), handleAddText(ws))
		s.AddTool(updateBlockTool(), handleUpdateBlock(ws))
		s.AddTool(deleteBlockTool(), handleDeleteBlock(ws))

		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type toolHandler = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

func stringArg(req mcp.CallToolRequest, name string) string {
	args, _ := req.Params.Arguments.(map[string]any)
	v, _ := args[name].(string)
	return v
}

// retarget switches the workspace to the request's page_id, if given.
func retarget(ws *notion.Workspace, req mcp.CallToolRequest) {
	if pageID := stringArg(req, "page_id"); pageID != "" {
		ws.SetPageID(pageID)
	}
}

func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func getPageTool() mcp.Tool {
	return mcp.NewTool("get_page",
		mcp.WithDescription("Retrieve the configured Notion page."),
		mcp.WithString("page_id",
			mcp.Description("Page ID to retrieve (default: the configured page)"),
		),
	)
}

func handleGetPage(ws *notion.Workspace) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		retarget(ws, req)
		page, err := ws.GetPage(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get page: %v", err)), nil
		}
		return toolResultJSON(page)
	}
}

func listBlocksTool() mcp.Tool {
	return mcp.NewTool("list_blocks",
		mcp.WithDescription("List the page's blocks with nested children flattened into simplified records (id, text, type, parent_id)."),
		mcp.WithString("page_id",
			mcp.Description("Page ID to list (default: the configured page)"),
		),
	)
}

func handleListBlocks(ws *notion.Workspace) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		retarget(ws, req)
		blocks, err := ws.PageBlocks(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list blocks: %v", err)), nil
		}
		return toolResultJSON(blocks)
	}
}

func addTextTool() mcp.Tool {
	return mcp.NewTool("add_text",
		mcp.WithDescription("Append a paragraph block with the given text, under the page or under a parent block."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text content of the new paragraph"),
		),
		mcp.WithString("parent_block_id",
			mcp.Description("Block ID to append under (default: the page itself)"),
		),
		mcp.WithString("page_id",
			mcp.Description("Page ID to append to (default: the configured page)"),
		),
	)
}

func handleAddText(ws *notion.Workspace) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := stringArg(req, "text")
		if text == "" {
			return mcp.NewToolResultError("text is required"), nil
		}
		retarget(ws, req)
		block, err := ws.AddText(ctx, text, stringArg(req, "parent_block_id"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to add text: %v", err)), nil
		}
		return toolResultJSON(block)
	}
}

func updateBlockTool() mcp.Tool {
	return mcp.NewTool("update_block",
		mcp.WithDescription("Replace a block's text. Non-paragraph blocks are attempted anyway; the service decides whether the write is accepted."),
		mcp.WithString("block_id",
			mcp.Required(),
			mcp.Description("Block ID to update"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New text content"),
		),
	)
}

func handleUpdateBlock(ws *notion.Workspace) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		blockID := stringArg(req, "block_id")
		if blockID == "" {
			return mcp.NewToolResultError("block_id is required"), nil
		}
		block, err := ws.UpdateBlock(ctx, blockID, stringArg(req, "text"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to update block: %v", err)), nil
		}
		return toolResultJSON(block)
	}
}

func deleteBlockTool() mcp.Tool {
	return mcp.NewTool("delete_block",
		mcp.WithDescription("Archive a block. The record is kept by the service and flagged archived."),
		mcp.WithString("block_id",
			mcp.Required(),
			mcp.Description("Block ID to archive"),
		),
	)
}

func handleDeleteBlock(ws *notion.Workspace) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		blockID := stringArg(req, "block_id")
		if blockID == "" {
			return mcp.NewToolResultError("block_id is required"), nil
		}
		block, err := ws.DeleteBlock(ctx, blockID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to delete block: %v", err)), nil
		}
		return toolResultJSON(block)
	}
}
