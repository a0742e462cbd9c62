package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aleister1102/toolbox/errorwrapper"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr bool
	}{
		{name: "valid minimal", request: Request{Page: 1, Limit: 20}},
		{name: "valid with sort", request: Request{Page: 2, Limit: 50, SortBy: "name", Order: "desc"}},
		{name: "page zero", request: Request{Page: 0, Limit: 20}, wantErr: true},
		{name: "negative page", request: Request{Page: -1, Limit: 20}, wantErr: true},
		{name: "limit zero", request: Request{Page: 1, Limit: 0}, wantErr: true},
		{name: "limit too large", request: Request{Page: 1, Limit: 5000}, wantErr: true},
		{name: "bad order", request: Request{Page: 1, Limit: 20, Order: "sideways"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequest_Skip(t *testing.T) {
	assert.Equal(t, int64(0), Request{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, int64(20), Request{Page: 2, Limit: 20}.Skip())
	assert.Equal(t, int64(450), Request{Page: 10, Limit: 50}.Skip())
}

func TestRequest_FindOptions(t *testing.T) {
	opts, err := Request{Page: 3, Limit: 25, SortBy: "created_at", Order: "desc"}.FindOptions()
	require.NoError(t, err)

	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(50), *opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(25), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
}

func TestRequest_FindOptions_NoSort(t *testing.T) {
	opts, err := Request{Page: 1, Limit: 10}.FindOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Sort)
}

func TestRequest_FindOptions_Invalid(t *testing.T) {
	_, err := Request{Page: 0, Limit: 10}.FindOptions()
	assert.Error(t, err)
}

func TestDefaultRequest(t *testing.T) {
	request := DefaultRequest()
	assert.NoError(t, request.Validate())
	assert.Equal(t, 1, request.Page)
}

func TestParseDirection(t *testing.T) {
	direction, err := ParseDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, Asc, direction)

	direction, err = ParseDirection(" desc ")
	require.NoError(t, err)
	assert.Equal(t, Desc, direction)

	_, err = ParseDirection("upward")
	assert.Error(t, err)
}

func TestSortChain(t *testing.T) {
	sort, err := SortChain("name", "asc", "age", "desc")
	require.NoError(t, err)
	assert.Equal(t, bson.D{
		{Key: "name", Value: 1},
		{Key: "age", Value: -1},
	}, sort)
}

func TestSortChain_Errors(t *testing.T) {
	_, err := SortChain("name", "asc", "age")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))

	_, err = SortChain("", "asc")
	assert.Error(t, err)

	_, err = SortChain("name", "diagonal")
	assert.Error(t, err)
}

func TestSortChainOf(t *testing.T) {
	sort, err := SortChainOf(
		SortField{Property: "name", Direction: Asc},
		SortField{Property: "age", Direction: Desc},
	)
	require.NoError(t, err)
	assert.Equal(t, bson.D{
		{Key: "name", Value: 1},
		{Key: "age", Value: -1},
	}, sort)

	_, err = SortChainOf(SortField{Property: " ", Direction: Asc})
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	equal := Filter("name", "alice", MatchEqual)
	assert.Equal(t, bson.M{"name": "alice"}, equal)

	partial := Filter("name", "ali", MatchPartial)
	regex, ok := partial["name"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "ali", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestFilter_PartialQuotesRegexMeta(t *testing.T) {
	partial := Filter("name", "a.b*", MatchPartial)
	regex := partial["name"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, regex.Pattern)
}

func TestAndOr(t *testing.T) {
	a := Filter("name", "alice", MatchEqual)
	b := Filter("age", "30", MatchEqual)

	assert.Equal(t, bson.M{}, And())
	assert.Equal(t, a, And(a))
	assert.Equal(t, bson.M{"$and": []bson.M{a, b}}, And(a, b))

	assert.Equal(t, bson.M{}, Or())
	assert.Equal(t, b, Or(b))
	assert.Equal(t, bson.M{"$or": []bson.M{a, b}}, Or(a, b))
}

func TestPage(t *testing.T) {
	request := Request{Page: 2, Limit: 10}
	page, err := NewPage([]string{"a", "b"}, 25, request)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())
	assert.False(t, page.IsEmpty())
}

func TestPage_Boundaries(t *testing.T) {
	first, err := NewPage([]int{1}, 30, Request{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	last, err := NewPage([]int{1}, 30, Request{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	// Exact multiple: no partial final page
	exact, err := NewPage([]int{1}, 20, Request{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, exact.TotalPages())

	empty, err := NewPage[int](nil, 0, Request{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.TotalPages())
	assert.False(t, empty.HasNext())
}

func TestNewPage_Errors(t *testing.T) {
	_, err := NewPage([]int{1}, -1, Request{Page: 1, Limit: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))

	_, err = NewPage([]int{1}, 10, Request{Page: 0, Limit: 10})
	assert.Error(t, err)
}
