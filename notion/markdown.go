package notion

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders a flattened block listing as markdown. Nesting is
// rendered as two-space indentation per level, computed from parent links;
// numbered lists restart when a run of numbered items under the same
// parent is interrupted.
func RenderMarkdown(blocks []SimplifiedBlock) string {
	depths := make(map[string]int, len(blocks))
	counters := make(map[string]int)
	lastType := make(map[string]string)

	var out strings.Builder
	for _, b := range blocks {
		depth := 0
		if b.ParentID != "" {
			depth = depths[b.ParentID] + 1
		}
		depths[b.ID] = depth
		indent := strings.Repeat("  ", depth)

		if b.Type != "numbered_list_item" && lastType[b.ParentID] == "numbered_list_item" {
			counters[b.ParentID] = 0
		}

		switch b.Type {
		case "heading_1":
			out.WriteString(indent + "# " + b.Text + "\n\n")
		case "heading_2":
			out.WriteString(indent + "## " + b.Text + "\n\n")
		case "heading_3":
			out.WriteString(indent + "### " + b.Text + "\n\n")
		case "bulleted_list_item":
			out.WriteString(indent + "- " + b.Text + "\n")
		case "numbered_list_item":
			counters[b.ParentID]++
			out.WriteString(fmt.Sprintf("%s%d. %s\n", indent, counters[b.ParentID], b.Text))
		case "to_do":
			out.WriteString(indent + "- [ ] " + b.Text + "\n")
		case "quote", "callout":
			out.WriteString(indent + "> " + b.Text + "\n\n")
		case "code":
			out.WriteString(indent + "```\n" + indent + b.Text + "\n" + indent + "```\n\n")
		case "divider":
			out.WriteString(indent + "---\n\n")
		case "paragraph":
			out.WriteString(indent + b.Text + "\n\n")
		default:
			if b.Text != "" {
				out.WriteString(indent + b.Text + "\n\n")
			}
		}

		lastType[b.ParentID] = b.Type
	}

	return out.String()
}
