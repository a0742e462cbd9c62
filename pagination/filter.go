package pagination

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match selects how a filter value is compared
type Match int

const (
	// MatchEqual compares for exact equality
	MatchEqual Match = iota
	// MatchPartial compares by case-insensitive substring containment
	MatchPartial
)

// Filter builds a single-field query predicate. Partial match builds a
// case-insensitive regex with the value quoted, so user input cannot
// inject regex syntax.
func Filter(field, value string, match Match) bson.M {
	if match == MatchPartial {
		return bson.M{field: primitive.Regex{
			Pattern: regexp.QuoteMeta(value),
			Options: "i",
		}}
	}
	return bson.M{field: value}
}

// And combines predicates conjunctively. Zero predicates yield the empty
// filter, one is returned as is.
func And(filters ...bson.M) bson.M {
	switch len(filters) {
	case 0:
		return bson.M{}
	case 1:
		return filters[0]
	default:
		clauses := make([]bson.M, len(filters))
		copy(clauses, filters)
		return bson.M{"$and": clauses}
	}
}

// Or combines predicates disjunctively. Zero predicates yield the empty
// filter, one is returned as is.
func Or(filters ...bson.M) bson.M {
	switch len(filters) {
	case 0:
		return bson.M{}
	case 1:
		return filters[0]
	default:
		clauses := make([]bson.M, len(filters))
		copy(clauses, filters)
		return bson.M{"$or": clauses}
	}
}
