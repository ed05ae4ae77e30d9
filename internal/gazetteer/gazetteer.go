package gazetteer

import (
	"strings"
	"sync"

	"github.com/weatherbuddy/weather-assistant/internal/fuzzy"
)

// Type classifies a gazetteer entry.
type Type string

const (
	TypeCity    Type = "city"
	TypeCountry Type = "country"
	TypeState   Type = "state"
	TypeUnknown Type = "unknown"
)

// fuzzyThreshold is the minimum similarity for a candidate to qualify.
// Empirically chosen; kept for compatibility with existing behaviour.
const fuzzyThreshold = 0.6

// maxSuggestions caps the suggestion list returned by FindLocation.
const maxSuggestions = 5

// Record is a single gazetteer entry keyed by its canonical name.
type Record struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country,omitempty"`
	Type    Type    `json:"type"`
}

// Resolution is the outcome of resolving a query against the gazetteer.
// Match is empty when nothing scored above the fuzzy threshold.
type Resolution struct {
	Match       string   `json:"match,omitempty"`
	Type        Type     `json:"type"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Gazetteer maps canonical place names to coordinates, with an alias table
// for abbreviations and common alternate spellings. Reads and writes are
// guarded by a single RWMutex; AddLocation is the only mutation.
type Gazetteer struct {
	mu        sync.RWMutex
	locations map[string]Record
	aliases   map[string]string
}

// New returns a gazetteer seeded with the built-in locations and aliases.
func New() *Gazetteer {
	return &Gazetteer{
		locations: builtinLocations(),
		aliases:   builtinAliases(),
	}
}

// FindLocation resolves a free-text query to a canonical name. Exact, alias
// and case-insensitive matches report confidence 1.0 with no suggestions.
// Anything else is scored against every canonical name and alias key;
// candidates above the threshold become ranked suggestions, and the single
// best becomes the match.
func (g *Gazetteer) FindLocation(query string) Resolution {
	query = strings.TrimSpace(query)

	g.mu.RLock()
	defer g.mu.RUnlock()

	if rec, ok := g.locations[query]; ok {
		return Resolution{Match: query, Type: rec.Type, Confidence: 1.0}
	}

	if canonical, ok := g.aliases[query]; ok {
		return Resolution{Match: canonical, Type: g.typeOf(canonical), Confidence: 1.0}
	}

	for name, rec := range g.locations {
		if strings.EqualFold(name, query) {
			return Resolution{Match: name, Type: rec.Type, Confidence: 1.0}
		}
	}

	var (
		bestMatch string
		bestScore float64
		qualified = make(map[string]bool)
	)

	score := func(key, canonical string) {
		s := fuzzy.Similarity(query, key)
		if s <= fuzzyThreshold {
			return
		}
		if s > bestScore {
			bestScore = s
			bestMatch = canonical
		}
		qualified[canonical] = true
	}

	for name := range g.locations {
		score(name, name)
	}
	for alias, canonical := range g.aliases {
		score(alias, canonical)
	}

	// Suggestions are ranked by similarity of the canonical name itself,
	// so alias-driven candidates do not outrank closer direct matches.
	candidates := make([]fuzzy.Candidate, 0, len(qualified))
	for name := range qualified {
		candidates = append(candidates, fuzzy.Candidate{
			Name:  name,
			Score: fuzzy.Similarity(query, name),
		})
	}
	fuzzy.Rank(query, candidates)

	res := Resolution{
		Match:       bestMatch,
		Type:        TypeUnknown,
		Confidence:  bestScore,
		Suggestions: fuzzy.TopNames(candidates, maxSuggestions),
	}
	if bestMatch != "" {
		res.Type = g.typeOf(bestMatch)
	}
	return res
}

// GetLocationInfo returns the record for a canonical name or resolvable
// alias. There is no fuzzy fallback here.
func (g *Gazetteer) GetLocationInfo(name string) (Record, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if rec, ok := g.locations[name]; ok {
		return rec, true
	}
	if canonical, ok := g.aliases[name]; ok {
		rec, ok := g.locations[canonical]
		return rec, ok
	}
	return Record{}, false
}

// AddLocation inserts or overwrites a canonical record. Coordinate ranges
// are not validated; callers own that.
func (g *Gazetteer) AddLocation(name string, lat, lon float64, country string, typ Type) {
	if typ == "" {
		typ = TypeCity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.locations[name] = Record{
		Name:    name,
		Lat:     lat,
		Lon:     lon,
		Country: country,
		Type:    typ,
	}
}

// typeOf must be called with the lock held.
func (g *Gazetteer) typeOf(name string) Type {
	if rec, ok := g.locations[name]; ok {
		return rec.Type
	}
	return TypeUnknown
}
