// Package pricing maps storefront pricing keys to canonical attribution
// types.
package pricing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase/interfaces"
)

//go:embed pricing_types.json
var defaultTypes []byte

// Table is an immutable, case-insensitive pricing key lookup.
type Table struct {
	types map[string]string
}

var _ interfaces.IPricingTypes = (*Table)(nil)

// Default returns the table shipped with the binary.
func Default() *Table {
	t, err := Parse(defaultTypes)
	if err != nil {
		panic(fmt.Sprintf("embedded pricing_types.json: %v", err))
	}
	return t
}

// Load reads the table at path, or the embedded one when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing types: %w", err)
	}
	return Parse(b)
}

// Parse decodes a JSON object of pricing key to canonical type. Entries
// whose value is not a canonical type are rejected.
func Parse(b []byte) (*Table, error) {
	raw := map[string]string{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode pricing types: %w", err)
	}
	types := make(map[string]string, len(raw))
	for k, v := range raw {
		canonical := entities.NormalizeAttributionType(v)
		if canonical == "" || !canonical.Valid() {
			return nil, fmt.Errorf("pricing key %q maps to unknown type %q", k, v)
		}
		types[normalizeKey(k)] = string(canonical)
	}
	return &Table{types: types}, nil
}

func (t *Table) CanonicalType(pricingKey string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.types[normalizeKey(pricingKey)]
	return v, ok
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
