package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test the query body rendering.
func TestQueryString(t *testing.T) {
	tests := []struct {
		name     string
		query    *Query
		expected string
	}{
		{
			name:     "fields only",
			query:    NewQuery("id", "name"),
			expected: "fields id, name;",
		},
		{
			name:     "search term",
			query:    NewQuery("name").Search("zelda").Limit(36),
			expected: `fields name; search "zelda"; limit 36;`,
		},
		{
			name:     "search term with quotes",
			query:    NewQuery("name").Search(`the "best" game`),
			expected: `fields name; search "the \"best\" game";`,
		},
		{
			name: "where clauses joined with ampersand",
			query: NewQuery("name").
				Wheref("rating > %d", 60).
				Wheref("rating_count > %d", 10).
				Where("parent_game = null"),
			expected: "fields name; where rating > 60 & rating_count > 10 & parent_game = null;",
		},
		{
			name: "full relaxation round",
			query: NewQuery("name").
				Wheref("genres = [%s]", IntList([]int{4, 12})).
				Wheref("id != (%s)", IntList([]int{100, 200})).
				Wheref("platforms = (%s)", IntList([]int{6})).
				Limit(100),
			expected: "fields name; where genres = [4,12] & id != (100,200) & platforms = (6); limit 100;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.String())
		})
	}
}

// Test the id list rendering.
func TestIntList(t *testing.T) {
	assert.Equal(t, "", IntList(nil))
	assert.Equal(t, "7", IntList([]int{7}))
	assert.Equal(t, "1,2,3", IntList([]int{1, 2, 3}))
}
