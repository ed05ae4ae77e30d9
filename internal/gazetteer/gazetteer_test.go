package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLocationExactMatch(t *testing.T) {
	g := New()

	res := g.FindLocation("Madurai")
	assert.Equal(t, "Madurai", res.Match)
	assert.Equal(t, TypeCity, res.Type)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Empty(t, res.Suggestions)
}

func TestFindLocationAlias(t *testing.T) {
	g := New()

	res := g.FindLocation("NYC")
	assert.Equal(t, "New York", res.Match)
	assert.Equal(t, TypeCity, res.Type)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Empty(t, res.Suggestions)
}

func TestFindLocationCaseInsensitive(t *testing.T) {
	g := New()

	res := g.FindLocation("kuala lumpur")
	assert.Equal(t, "Kuala Lumpur", res.Match)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Empty(t, res.Suggestions)
}

func TestFindLocationTrimsWhitespace(t *testing.T) {
	g := New()

	res := g.FindLocation("  London  ")
	assert.Equal(t, "London", res.Match)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestFindLocationFuzzyMatch(t *testing.T) {
	g := New()

	res := g.FindLocation("chenai")
	assert.Equal(t, "Chennai", res.Match)
	assert.Equal(t, TypeCity, res.Type)
	assert.Greater(t, res.Confidence, 0.6)
	assert.Less(t, res.Confidence, 1.0)
	assert.Contains(t, res.Suggestions, "Chennai")
}

func TestFindLocationNoMatch(t *testing.T) {
	g := New()

	res := g.FindLocation("xyzzyplugh")
	assert.Empty(t, res.Match)
	assert.Equal(t, TypeUnknown, res.Type)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, res.Suggestions)
}

func TestFindLocationSuggestionsRankedAndUnique(t *testing.T) {
	g := New()

	res := g.FindLocation("austria lia")
	require.NotEmpty(t, res.Suggestions)
	assert.LessOrEqual(t, len(res.Suggestions), 5)

	seen := make(map[string]bool)
	for _, s := range res.Suggestions {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
	}
}

func TestGetLocationInfo(t *testing.T) {
	g := New()

	rec, ok := g.GetLocationInfo("Madurai")
	require.True(t, ok)
	assert.InDelta(t, 9.9252, rec.Lat, 0.0001)
	assert.InDelta(t, 78.1198, rec.Lon, 0.0001)
	assert.Equal(t, "IN", rec.Country)

	// Alias resolves, but there is no fuzzy fallback.
	rec, ok = g.GetLocationInfo("Bombay")
	require.True(t, ok)
	assert.Equal(t, "Mumbai", rec.Name)

	_, ok = g.GetLocationInfo("mumbay")
	assert.False(t, ok)
}

func TestAddLocation(t *testing.T) {
	g := New()

	g.AddLocation("Coimbatore", 11.0168, 76.9558, "IN", "")

	rec, ok := g.GetLocationInfo("Coimbatore")
	require.True(t, ok)
	assert.Equal(t, TypeCity, rec.Type)

	res := g.FindLocation("Coimbatore")
	assert.Equal(t, 1.0, res.Confidence)

	// Overwrite is allowed.
	g.AddLocation("Coimbatore", 11.0, 77.0, "IN", TypeCity)
	rec, _ = g.GetLocationInfo("Coimbatore")
	assert.Equal(t, 11.0, rec.Lat)
}
