package notification

import (
	"sort"
	"strings"
)

// Merger maintains one merged notification list across independent sources.
// Each source delivers its full current result set on every update; the
// merger replaces everything previously held for that source and re-sorts.
// The operation is order-independent across sources and idempotent per
// source, so interleaved snapshot callbacks cannot corrupt the list.
//
// Merger is not safe for concurrent use; the owning center serializes
// access.
type Merger struct {
	merged []Notification
}

func NewMerger() *Merger {
	return &Merger{}
}

// Apply replaces the contribution of one source with items. An empty items
// slice legitimately clears the source: its documents were deleted or
// resolved. Duplicate ids within one snapshot keep the last occurrence.
func (m *Merger) Apply(source string, items []Notification) {
	prefix := source + "_"

	kept := m.merged[:0]
	for _, n := range m.merged {
		if !strings.HasPrefix(n.ID, prefix) {
			kept = append(kept, n)
		}
	}

	seen := make(map[string]int, len(items))
	for _, n := range items {
		if idx, ok := seen[n.ID]; ok {
			kept[idx] = n
			continue
		}
		kept = append(kept, n)
		seen[n.ID] = len(kept) - 1
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if !kept[i].Timestamp.Equal(kept[j].Timestamp) {
			return kept[i].Timestamp.After(kept[j].Timestamp)
		}
		return kept[i].ID < kept[j].ID
	})

	m.merged = kept
}

// List returns a copy of the merged list, sorted by timestamp descending.
func (m *Merger) List() []Notification {
	out := make([]Notification, len(m.merged))
	copy(out, m.merged)
	return out
}

// IDs returns the ids of every merged entry.
func (m *Merger) IDs() []string {
	ids := make([]string, len(m.merged))
	for i, n := range m.merged {
		ids[i] = n.ID
	}
	return ids
}

// Get looks up a merged entry by id.
func (m *Merger) Get(id string) (Notification, bool) {
	for _, n := range m.merged {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

func (m *Merger) Len() int {
	return len(m.merged)
}
