// notionctl is a command-line client for the Notion API: retrieve a page,
// append text blocks, update and archive blocks, and list a page's content
// tree as a flat sequence of simplified records.
package main

import "github.com/vthunder/notionctl/cmd"

func main() {
	cmd.Execute()
}
