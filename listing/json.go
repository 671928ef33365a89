package listing

import (
	"encoding/json"
	"fmt"
	"os"
)

// entryDTO is the object form of one JSON entry.
type entryDTO struct {
	Text string `json:"text"`
}

// JSONFile reads entries from a JSON document: either an array of
// strings or an array of {"text": ...} objects.
func JSONFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var plain []string
	if err := json.Unmarshal(data, &plain); err == nil {
		return plain, nil
	}

	var objects []entryDTO
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("parse %s: expected an array of strings or {\"text\": ...} objects: %w", path, err)
	}
	entries := make([]string, len(objects))
	for i, o := range objects {
		entries[i] = o.Text
	}
	return entries, nil
}
