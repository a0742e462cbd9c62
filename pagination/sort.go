package pagination

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// Direction is a sort direction
type Direction int

const (
	// Asc sorts ascending
	Asc Direction = 1
	// Desc sorts descending
	Desc Direction = -1
)

// Value returns the bson sort value (1 or -1)
func (d Direction) Value() int {
	return int(d)
}

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc"/"desc" (case-insensitive)
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return 0, errorwrapper.NewValidationError("direction", s, "must be 'asc' or 'desc'")
	}
}

// SortField is a property and direction pair
type SortField struct {
	Property  string
	Direction Direction
}

// SortChain folds alternating (property, direction) string pairs into an
// ordered sort document: SortChain("name", "asc", "age", "desc"). The
// argument count must be even and properties must not be blank.
func SortChain(pairs ...string) (bson.D, error) {
	if len(pairs)%2 != 0 {
		return nil, errorwrapper.NewValidationError("pairs", len(pairs), "must contain an even number of arguments")
	}

	sort := make(bson.D, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		property := strings.TrimSpace(pairs[i])
		if property == "" {
			return nil, errorwrapper.NewValidationError("property", pairs[i], "must not be blank")
		}

		direction, err := ParseDirection(pairs[i+1])
		if err != nil {
			return nil, err
		}

		sort = append(sort, bson.E{Key: property, Value: direction.Value()})
	}

	return sort, nil
}

// SortChainOf builds the sort document from typed sort fields
func SortChainOf(fields ...SortField) (bson.D, error) {
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		property := strings.TrimSpace(f.Property)
		if property == "" {
			return nil, errorwrapper.NewValidationError("property", f.Property, "must not be blank")
		}
		sort = append(sort, bson.E{Key: property, Value: f.Direction.Value()})
	}
	return sort, nil
}
