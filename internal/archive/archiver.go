package archive

import (
	"context"
	"encoding/json"
	"fmt"
)

// Archiver stores one Record and returns its key. A failed Archive leaves
// nothing visible under the returned (or any) key.
type Archiver interface {
	Archive(ctx context.Context, rec Record) (string, error)
}

// Encode renders rec as the indented JSON document that is archived.
func Encode(rec Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses an archived document.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
