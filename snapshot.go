package pager

// Snapshot is an immutable copy of the list taken at session start.
// The list is treated as frozen for the session's lifetime; pagination
// never observes later mutations of the caller's slice.
type Snapshot struct {
	entries []string
}

// NewSnapshot copies entries into a Snapshot.
func NewSnapshot(entries []string) Snapshot {
	copied := make([]string, len(entries))
	copy(copied, entries)
	return Snapshot{entries: copied}
}

// Len returns the number of entries in the snapshot.
func (s Snapshot) Len() int { return len(s.entries) }

// Window returns a copy of the entries visible on the given page: the
// range [page*pageSize, page*pageSize+pageSize) truncated at the list
// end. Pages past the end yield an empty window.
func (s Snapshot) Window(page, pageSize int) []string {
	if pageSize < 1 {
		return nil
	}
	start := page * pageSize
	if start < 0 || start >= len(s.entries) {
		return nil
	}
	end := min(start+pageSize, len(s.entries))
	return append([]string(nil), s.entries[start:end]...)
}
