package users

import (
	"encoding/json"
	"testing"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich_ResolvesAndStubs(t *testing.T) {
	raw := []domain.DateEntry{
		{Date: "20240101", Movies: []string{"m1", "m9"}},
	}
	catalog := map[string]domain.Movie{
		"m1": {ID: "m1", Title: "X", Director: "Y", Rating: 8.1},
	}

	enriched := Enrich(raw, catalog)

	require.Len(t, enriched, 1)
	require.Len(t, enriched[0].Movies, 2)

	resolved, ok := enriched[0].Movies[0].Resolved()
	assert.True(t, ok)
	assert.Equal(t, "X", resolved.Title)

	_, ok = enriched[0].Movies[1].Resolved()
	assert.False(t, ok)
	assert.Equal(t, "m9", enriched[0].Movies[1].ID())
}

// Every input date and every movie id must survive enrichment, whatever the
// catalog contains.
func TestEnrich_RoundTrip(t *testing.T) {
	raw := []domain.DateEntry{
		{Date: "20240101", Movies: []string{"m1", "m2", "m3"}},
		{Date: "20240105", Movies: []string{"m2"}},
		{Date: "20240110", Movies: []string{"m4", "m5"}},
	}

	catalogs := []map[string]domain.Movie{
		nil,
		{},
		{"m2": {ID: "m2", Title: "B"}},
		{"m1": {ID: "m1"}, "m2": {ID: "m2"}, "m3": {ID: "m3"}, "m4": {ID: "m4"}, "m5": {ID: "m5"}},
	}

	for _, catalog := range catalogs {
		enriched := Enrich(raw, catalog)

		require.Len(t, enriched, len(raw))
		for i, entry := range enriched {
			assert.Equal(t, raw[i].Date, entry.Date)
			require.Len(t, entry.Movies, len(raw[i].Movies))
			for j, ref := range entry.Movies {
				assert.Equal(t, raw[i].Movies[j], ref.ID())
			}
		}
	}
}

func TestEnrich_EmptyInput(t *testing.T) {
	enriched := Enrich(nil, map[string]domain.Movie{"m1": {ID: "m1"}})
	assert.Empty(t, enriched)
}

func TestEnrich_EmptyCatalogMakesStubs(t *testing.T) {
	raw := []domain.DateEntry{{Date: "20240101", Movies: []string{"m1", "m2"}}}

	enriched := Enrich(raw, map[string]domain.Movie{})

	require.Len(t, enriched, 1)
	for _, ref := range enriched[0].Movies {
		_, ok := ref.Resolved()
		assert.False(t, ok)
	}
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	raw := []domain.DateEntry{{Date: "20240101", Movies: []string{"m1"}}}
	catalog := map[string]domain.Movie{"m1": {ID: "m1", Title: "X"}}

	_ = Enrich(raw, catalog)

	assert.Equal(t, []domain.DateEntry{{Date: "20240101", Movies: []string{"m1"}}}, raw)
	assert.Len(t, catalog, 1)
}

func TestEnrich_JSONShape(t *testing.T) {
	raw := []domain.DateEntry{{Date: "20240101", Movies: []string{"m1", "m9"}}}
	catalog := map[string]domain.Movie{"m1": {ID: "m1", Title: "X", Director: "Y", Rating: 7}}

	data, err := json.Marshal(Enrich(raw, catalog))
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"date": "20240101",
		"movies": [
			{"id": "m1", "title": "X", "director": "Y", "rating": 7},
			{"id": "m9"}
		]
	}]`, string(data))
}
