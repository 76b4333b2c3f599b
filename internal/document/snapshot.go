package document

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bytedance/sonic"
)

// Snapshot is the serialized form of a document model. Ids are stored as
// their decimal string form to keep the JSON object shape stable.
type Snapshot struct {
	Filename      string                      `json:"filename"`
	Path          string                      `json:"path"`
	WorkingSheets map[string]map[string][]int `json:"working_sheets"`
}

// Snapshot captures the current model state.
func (d *Document) Snapshot() Snapshot {
	ws := make(map[string]map[string][]int, len(d.sheets))
	for id, names := range d.sheets {
		bucket := make(map[string][]int, len(names))
		for name, pages := range names {
			cp := make([]int, len(pages))
			copy(cp, pages)
			bucket[name] = cp
		}
		ws[strconv.Itoa(id)] = bucket
	}
	return Snapshot{
		Filename:      d.Filename,
		Path:          d.SourcePath,
		WorkingSheets: ws,
	}
}

// Encode serializes the snapshot to JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return sonic.Marshal(s)
}

// rawSnapshot tolerates malformed working_sheets shapes so a bad entry can
// be skipped instead of failing the whole decode.
type rawSnapshot struct {
	Filename      string         `json:"filename"`
	Path          string         `json:"path"`
	WorkingSheets map[string]any `json:"working_sheets"`
}

// DecodeSnapshot rebuilds a document model from serialized JSON. Entries
// that are not objects, or pages that are not numbers, are skipped with a
// warning. Names with no resolved pages are dropped on load.
func DecodeSnapshot(data []byte, log *slog.Logger) (*Document, error) {
	var raw rawSnapshot
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return restore(raw, log), nil
}

func restore(raw rawSnapshot, log *slog.Logger) *Document {
	doc := New(raw.Filename, raw.Path)
	for rawID, val := range raw.WorkingSheets {
		names, ok := val.(map[string]any)
		if !ok {
			log.Warn("snapshot: skipping invalid id entry", "id", rawID, "type", fmt.Sprintf("%T", val))
			continue
		}
		id := CoerceID(rawID)
		for name, rawPages := range names {
			pages, ok := intPages(rawPages)
			if !ok {
				log.Warn("snapshot: skipping invalid page list", "id", rawID, "name", name)
				continue
			}
			if len(pages) == 0 {
				continue
			}
			doc.AddSheet(id, name, pages)
		}
	}
	return doc
}

func intPages(v any) ([]int, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	pages := make([]int, 0, len(list))
	for _, e := range list {
		switch n := e.(type) {
		case float64:
			pages = append(pages, int(n))
		case int64:
			pages = append(pages, int(n))
		case string:
			p, err := strconv.Atoi(n)
			if err != nil {
				continue
			}
			pages = append(pages, p)
		default:
			continue
		}
	}
	return pages, true
}
