package tally

import (
	"fmt"
	"strings"
)

// Category is an optional tag attached to a Record
type Category uint8

const (
	// NoCategory indicates that a Record has no Category
	NoCategory Category = iota
	// Residential readings
	Residential
	// Commercial readings
	Commercial
	// Industrial readings
	Industrial
	// Agricultural readings
	Agricultural
	// Public readings
	Public
)

// NumCategories is the number of valid (non-absent) Categories
const NumCategories = 5

var categoryNames = [...]string{
	NoCategory:   "",
	Residential:  "residential",
	Commercial:   "commercial",
	Industrial:   "industrial",
	Agricultural: "agricultural",
	Public:       "public",
}

// Categories returns every valid Category, in declaration order
func Categories() []Category {
	return []Category{Residential, Commercial, Industrial, Agricultural, Public}
}

// String returns the textual representation of this Category
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid returns true iff this Category is one of the enumerated tags
func (c Category) Valid() bool {
	return c >= Residential && c <= Public
}

// ParseCategory translates a textual tag into a Category, ignoring case. The empty string is NoCategory.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return NoCategory, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler, so Categories can key JSON objects
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Sector identifies the sub-region a Record belongs to
type Sector uint8

const (
	// NoSector indicates that a Record has no Sector
	NoSector Sector = 0
	// MinSector is the smallest valid Sector
	MinSector Sector = 1
	// MaxSector is the largest valid Sector
	MaxSector Sector = 20
)

// Valid returns true iff this Sector lies within [MinSector, MaxSector]
func (s Sector) Valid() bool {
	return s >= MinSector && s <= MaxSector
}

// A Record is a single numeric reading. Records are immutable once created.
type Record struct {
	Value    int32
	Category Category
	Sector   Sector
}
