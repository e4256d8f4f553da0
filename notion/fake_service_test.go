package notion

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// richTextTypes are the block types the fake service accepts a rich_text
// rewrite for. Anything else gets a validation rejection, mirroring the
// real service's role as final arbiter.
var richTextTypes = map[string]bool{
	"paragraph": true, "heading_1": true, "heading_2": true, "heading_3": true,
	"bulleted_list_item": true, "numbered_list_item": true, "quote": true,
	"to_do": true, "code": true,
}

// fakeService is an in-memory stand-in for the Notion API, serving the
// subset of endpoints the client uses.
type fakeService struct {
	t     *testing.T
	token string

	mu       sync.Mutex
	pages    map[string]*Page
	blocks   map[string]*Block
	children map[string][]string // parent ID -> ordered child block IDs
	failList map[string]bool     // IDs whose child listing returns 500

	appendTargets []string // parents AppendChildren was called with
	lastQuery     string   // raw query of the last children listing
}

func newFakeService(t *testing.T) *fakeService {
	return &fakeService{
		t:        t,
		token:    "secret-token",
		pages:    make(map[string]*Page),
		blocks:   make(map[string]*Block),
		children: make(map[string][]string),
		failList: make(map[string]bool),
	}
}

func (f *fakeService) addPage(id, title string) *Page {
	titleJSON := fmt.Sprintf(`{"id":"title","type":"title","title":[{"plain_text":%q}]}`, title)
	p := &Page{
		ID:         id,
		URL:        "https://www.notion.so/" + id,
		Properties: map[string]json.RawMessage{"Name": json.RawMessage(titleJSON)},
	}
	f.pages[id] = p
	return p
}

func (f *fakeService) addBlock(parentID, blockType, text string) *Block {
	// IDs are stored dash-free, matching what the client puts in paths.
	b := &Block{
		ID:   normalizeID(uuid.NewString()),
		Type: blockType,
	}
	if richTextTypes[blockType] {
		b.Content = map[string]any{
			"rich_text": []any{map[string]any{"plain_text": text, "type": "text"}},
		}
	} else {
		b.Content = map[string]any{}
	}
	f.blocks[b.ID] = b
	key := normalizeID(parentID)
	f.children[key] = append(f.children[key], b.ID)
	if parent, ok := f.blocks[key]; ok {
		parent.HasChildren = true
	}
	return b
}

func (f *fakeService) start() *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	f.t.Cleanup(srv.Close)
	return srv
}

func (f *fakeService) client(t *testing.T, opts ...Option) *Client {
	srv := f.start()
	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	c, err := NewClient(f.token, opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func (f *fakeService) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+f.token {
		writeAPIError(w, http.StatusUnauthorized, "unauthorized", "API token is invalid.")
		return
	}
	if r.Header.Get("Notion-Version") == "" {
		writeAPIError(w, http.StatusBadRequest, "missing_version", "Notion-Version header failed validation.")
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 2 && parts[0] == "pages" && r.Method == http.MethodGet:
		f.handleGetPage(w, parts[1])
	case len(parts) == 3 && parts[0] == "blocks" && parts[2] == "children":
		f.lastQuery = r.URL.RawQuery
		switch r.Method {
		case http.MethodGet:
			f.handleListChildren(w, parts[1])
		case http.MethodPatch:
			f.handleAppendChildren(w, r, parts[1])
		default:
			writeAPIError(w, http.StatusMethodNotAllowed, "invalid_request", "Unsupported method.")
		}
	case len(parts) == 2 && parts[0] == "blocks":
		switch r.Method {
		case http.MethodGet:
			f.handleGetBlock(w, parts[1])
		case http.MethodPatch:
			f.handleUpdateBlock(w, r, parts[1])
		case http.MethodDelete:
			f.handleDeleteBlock(w, parts[1])
		default:
			writeAPIError(w, http.StatusMethodNotAllowed, "invalid_request", "Unsupported method.")
		}
	default:
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Unknown path "+r.URL.Path)
	}
}

func (f *fakeService) handleGetPage(w http.ResponseWriter, id string) {
	page, ok := f.pages[id]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find page with ID: "+id)
		return
	}
	writeJSON(w, page)
}

func (f *fakeService) handleGetBlock(w http.ResponseWriter, id string) {
	block, ok := f.blocks[id]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find block with ID: "+id)
		return
	}
	writeJSON(w, block)
}

func (f *fakeService) handleListChildren(w http.ResponseWriter, id string) {
	if f.failList[id] {
		writeAPIError(w, http.StatusInternalServerError, "internal_server_error", "Something went wrong.")
		return
	}
	if _, isPage := f.pages[id]; !isPage {
		if _, isBlock := f.blocks[id]; !isBlock {
			writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find block with ID: "+id)
			return
		}
	}
	results := make([]*Block, 0, len(f.children[id]))
	for _, childID := range f.children[id] {
		results = append(results, f.blocks[childID])
	}
	writeJSON(w, map[string]any{"results": results, "has_more": false})
}

func (f *fakeService) handleAppendChildren(w http.ResponseWriter, r *http.Request, id string) {
	f.appendTargets = append(f.appendTargets, id)

	var body struct {
		Children []map[string]any `json:"children"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var created []*Block
	for _, spec := range body.Children {
		blockType, _ := spec["type"].(string)
		if blockType == "" {
			writeAPIError(w, http.StatusBadRequest, "validation_error", "children block type missing")
			return
		}
		content, _ := spec[blockType].(map[string]any)
		b := &Block{
			ID:      normalizeID(uuid.NewString()),
			Type:    blockType,
			Content: withPlainText(content),
		}
		f.blocks[b.ID] = b
		f.children[id] = append(f.children[id], b.ID)
		created = append(created, b)
	}
	if parent, ok := f.blocks[id]; ok {
		parent.HasChildren = true
	}
	writeJSON(w, map[string]any{"results": created})
}

func (f *fakeService) handleUpdateBlock(w http.ResponseWriter, r *http.Request, id string) {
	block, ok := f.blocks[id]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find block with ID: "+id)
		return
	}

	var payload map[string]map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	content, ok := payload[block.Type]
	if !ok {
		writeAPIError(w, http.StatusBadRequest, "validation_error",
			"body failed validation: payload does not match block type "+block.Type)
		return
	}
	if _, hasRichText := content["rich_text"]; hasRichText && !richTextTypes[block.Type] {
		writeAPIError(w, http.StatusBadRequest, "validation_error",
			"body failed validation: "+block.Type+" does not support rich_text")
		return
	}
	block.Content = withPlainText(content)
	writeJSON(w, block)
}

func (f *fakeService) handleDeleteBlock(w http.ResponseWriter, id string) {
	block, ok := f.blocks[id]
	if !ok {
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find block with ID: "+id)
		return
	}
	block.Archived = true
	writeJSON(w, block)
}

// withPlainText mirrors the service filling in plain_text projections for
// submitted text segments.
func withPlainText(content map[string]any) map[string]any {
	if content == nil {
		return map[string]any{}
	}
	segments, ok := content["rich_text"].([]any)
	if !ok {
		return content
	}
	for _, item := range segments {
		seg, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, done := seg["plain_text"]; done {
			continue
		}
		if textObj, ok := seg["text"].(map[string]any); ok {
			seg["plain_text"], _ = textObj["content"].(string)
		}
	}
	return content
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"object":  "error",
		"status":  status,
		"code":    code,
		"message": message,
	})
}
