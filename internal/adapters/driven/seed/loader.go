package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

//go:embed hearings.json
var defaultSeed []byte

// Ensure Loader implements the interface.
var _ driven.SeedLoader = (*Loader)(nil)

// Loader reads seed records from a file, or from the built-in set when no path is given.
type Loader struct {
	path string
}

// NewLoader creates a loader. An empty path selects the built-in records.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the configured seed file, or "" for the built-in set.
func (l *Loader) Path() string {
	return l.path
}

// Load decodes the seed records.
func (l *Loader) Load(ctx context.Context) ([]domain.Hearing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultSeed
	source := "built-in seed"
	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
		data = raw
		source = l.path
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logger.Debug("Read %d hearings from %s", len(records), source)
	return records, nil
}

// Decode parses a JSON array of hearings. Unknown keys are rejected so a
// misspelt field does not silently load as empty.
func Decode(data []byte) ([]domain.Hearing, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []domain.Hearing
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding hearings: %v: %w", err, domain.ErrInvalidInput)
	}
	if records == nil {
		records = []domain.Hearing{}
	}
	return records, nil
}
