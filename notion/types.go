package notion

import (
	"encoding/json"
	"strings"
)

// Block is a node in a page's content tree. The Notion API nests the
// type-specific payload under a key named after the block type; it is
// decoded into Content so callers don't have to know the type up front.
type Block struct {
	ID             string
	Type           string
	HasChildren    bool
	Archived       bool
	CreatedTime    string
	LastEditedTime string
	Content        map[string]any
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var fields struct {
		ID             string `json:"id"`
		Type           string `json:"type"`
		HasChildren    bool   `json:"has_children"`
		Archived       bool   `json:"archived"`
		CreatedTime    string `json:"created_time"`
		LastEditedTime string `json:"last_edited_time"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	b.ID = fields.ID
	b.Type = fields.Type
	b.HasChildren = fields.HasChildren
	b.Archived = fields.Archived
	b.CreatedTime = fields.CreatedTime
	b.LastEditedTime = fields.LastEditedTime

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	if payload, ok := all[b.Type]; ok {
		if err := json.Unmarshal(payload, &b.Content); err != nil {
			return err
		}
	}
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"object":       "block",
		"id":           b.ID,
		"type":         b.Type,
		"has_children": b.HasChildren,
		"archived":     b.Archived,
	}
	if b.CreatedTime != "" {
		out["created_time"] = b.CreatedTime
	}
	if b.LastEditedTime != "" {
		out["last_edited_time"] = b.LastEditedTime
	}
	if b.Type != "" && b.Content != nil {
		out[b.Type] = b.Content
	}
	return json.Marshal(out)
}

// PlainText returns the block's textual projection: the concatenated
// plain_text of its rich text segments, in order. Payloads that carry no
// rich_text list (images, dividers, ...) render as the type tag in
// brackets, e.g. "[image]".
func (b Block) PlainText() string {
	segments, ok := b.Content["rich_text"].([]any)
	if !ok {
		return "[" + b.Type + "]"
	}
	var text strings.Builder
	for _, item := range segments {
		if m, ok := item.(map[string]any); ok {
			if pt, ok := m["plain_text"].(string); ok {
				text.WriteString(pt)
			}
		}
	}
	return text.String()
}

// paragraphSpec builds the payload for a new paragraph block holding text.
func paragraphSpec(text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   "paragraph",
		"paragraph": map[string]any{
			"rich_text": richTextSpec(text),
		},
	}
}

// richTextSpec builds a single-segment rich_text array for text.
func richTextSpec(text string) []map[string]any {
	return []map[string]any{
		{"type": "text", "text": map[string]string{"content": text}},
	}
}

// Page is the top-level container addressed by a page ID. Its content
// lives in the blocks listed as its children, not on the page itself.
type Page struct {
	ID             string                     `json:"id"`
	URL            string                     `json:"url"`
	Archived       bool                       `json:"archived"`
	CreatedTime    string                     `json:"created_time"`
	LastEditedTime string                     `json:"last_edited_time"`
	Properties     map[string]json.RawMessage `json:"properties"`
}

// Title returns the page's title, or "" if no property carries one.
func (p *Page) Title() string {
	for _, raw := range p.Properties {
		var prop struct {
			Title []struct {
				PlainText string `json:"plain_text"`
			} `json:"title"`
		}
		if err := json.Unmarshal(raw, &prop); err != nil {
			continue
		}
		if len(prop.Title) > 0 {
			var title strings.Builder
			for _, t := range prop.Title {
				title.WriteString(t.PlainText)
			}
			return title.String()
		}
	}
	return ""
}
