package entities

import "strings"

// AttributionType is the canonical filing category a payment or order is
// attributed to. The store rejects values outside the canonical set.
type AttributionType string

const (
	AttributionTypePatent    AttributionType = "patent"
	AttributionTypeTrademark AttributionType = "trademark"
	AttributionTypeCopyright AttributionType = "copyright"
	AttributionTypeDesign    AttributionType = "design"
)

var canonicalAttributionTypes = map[AttributionType]struct{}{
	AttributionTypePatent:    {},
	AttributionTypeTrademark: {},
	AttributionTypeCopyright: {},
	AttributionTypeDesign:    {},
}

// Valid reports whether t may be persisted. The empty type (null) is valid.
func (t AttributionType) Valid() bool {
	if t == "" {
		return true
	}
	_, ok := canonicalAttributionTypes[t]
	return ok
}

// NormalizeAttributionType trims and lower-cases a raw tag.
func NormalizeAttributionType(raw string) AttributionType {
	return AttributionType(strings.ToLower(strings.TrimSpace(raw)))
}
