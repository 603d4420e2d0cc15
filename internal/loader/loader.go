// Package loader reads a ship dataset export from disk and hands it to the
// domain as an in-memory Fleet. The file format is the single-key JSON
// document described in the domain package documentation; anything beyond
// that shape is left to best-effort decoding, unknown keys are ignored.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/couchcryptid/ship-data-explorer/internal/domain"
)

// export mirrors the on-disk dataset shape: one "data" key holding the
// ordered record sequence.
type export struct {
	Data []domain.RawShipRecord `json:"data"`
}

// Load reads and parses the dataset at path. An export without a "data" key
// or with an empty sequence yields an empty Fleet, not an error; the session
// still runs, the aggregates are just empty.
func Load(path string) (domain.Fleet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var doc export
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return domain.ParseFleet(doc.Data), nil
}
