package notion

import (
	"context"
	"log/slog"
)

// SimplifiedBlock is the flattened projection of a block: identifier,
// plain text, type tag and the identifier of its parent block. Top-level
// blocks have no parent ID; the page itself is not modeled as a block.
type SimplifiedBlock struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	ParentID string `json:"parent_id,omitempty"`
}

// ChildLister fetches the immediate children of the block with the given
// ID. Client.ListChildren satisfies it.
type ChildLister func(ctx context.Context, blockID string) ([]Block, error)

// Flatten walks a block and its descendants and returns one
// SimplifiedBlock per node: depth-first, parent before children, siblings
// in the order the lister returns them. Every record's ParentID matches a
// record emitted earlier, except the root's, which is the caller-supplied
// parentID (empty for top-level blocks).
//
// A failed child listing is logged and treated as "no children" for that
// block: the subtree is skipped and traversal continues with its siblings,
// so one inaccessible subtree cannot blank out the rest of the listing.
//
// The walk uses an explicit work stack, so arbitrarily deep trees cannot
// exhaust the call stack.
func Flatten(ctx context.Context, block Block, listChildren ChildLister, parentID string, log *slog.Logger) []SimplifiedBlock {
	if log == nil {
		log = slog.Default()
	}

	type frame struct {
		block    Block
		parentID string
	}
	stack := []frame{{block, parentID}}
	var out []SimplifiedBlock

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, SimplifiedBlock{
			ID:       cur.block.ID,
			Text:     cur.block.PlainText(),
			Type:     cur.block.Type,
			ParentID: cur.parentID,
		})

		if !cur.block.HasChildren {
			continue
		}
		children, err := listChildren(ctx, cur.block.ID)
		if err != nil {
			log.Warn("skipping children of block", "block_id", cur.block.ID, "error", err)
			continue
		}
		// Push in reverse so the first child is popped next, keeping
		// pre-order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], cur.block.ID})
		}
	}

	return out
}
