// Package resolver extracts a location name from free text such as
// "weather in chenai" or "madurai weather", correcting common misspellings
// on the way out.
package resolver

import (
	"regexp"
	"strings"

	"github.com/weatherbuddy/weather-assistant/internal/gazetteer"
)

// acceptThreshold is the minimum gazetteer confidence for substituting an
// extracted candidate with the canonical name, and for accepting whole-text
// queries as locations.
const acceptThreshold = 0.7

var (
	// "... in <place>" / "... for <place>", up to a question mark or end.
	inForPattern = regexp.MustCompile(`\b(?:in|for)\s+([a-zA-Z][a-zA-Z ]*)`)

	// "weather <place>", including common misspellings of "weather".
	leadingKeywordPattern = regexp.MustCompile(`(?i)^\s*(?:weather|wether|wethe|wheather|temperature|forecast|forcast|climate)\s+([a-zA-Z][a-zA-Z ]*)`)

	// "<place> weather".
	trailingKeywordPattern = regexp.MustCompile(`(?i)^\s*([a-zA-Z][a-zA-Z ]*?)\s+(?:weather|wether|wethe|wheather|temperature|forecast|forcast|climate)\s*\??\s*$`)
)

// genericQueries are weather questions that carry no location at all.
// Kept lowercased with trailing punctuation stripped.
var genericQueries = map[string]bool{
	"what's the weather like":  true,
	"whats the weather like":   true,
	"what is the weather like": true,
	"what's the weather":       true,
	"whats the weather":        true,
	"what is the weather":      true,
	"how's the weather":        true,
	"hows the weather":         true,
	"how is the weather":       true,
	"weather":                  true,
	"forecast":                 true,
	"temperature":              true,
	"climate":                  true,
}

// Resolver turns raw user text into a best-guess location name.
type Resolver struct {
	gaz         *gazetteer.Gazetteer
	corrections map[string]string
}

// New creates a Resolver over the given gazetteer with the curated
// place-name correction table.
func New(gaz *gazetteer.Gazetteer) *Resolver {
	return &Resolver{
		gaz:         gaz,
		corrections: placeCorrections(),
	}
}

// ExtractLocation returns the location mentioned in text, or "" when none
// can be found. Extraction strategies run in order, first hit wins:
// an "in"/"for" phrase, a leading weather keyword, a trailing weather
// keyword, and finally the whole text probed against the gazetteer.
func (r *Resolver) ExtractLocation(text string) string {
	if candidate := r.extractCandidate(text); candidate != "" {
		return r.correct(candidate)
	}

	trimmed := strings.TrimSpace(text)
	normalized := strings.ToLower(strings.TrimRight(trimmed, "?! ."))
	if genericQueries[normalized] || trimmed == "" {
		return ""
	}

	res := r.gaz.FindLocation(trimmed)
	if res.Confidence > acceptThreshold && res.Match != "" {
		return res.Match
	}
	return ""
}

func (r *Resolver) extractCandidate(text string) string {
	if m := inForPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := leadingKeywordPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := trailingKeywordPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// correct maps an extracted candidate through the curated correction table,
// falling back to gazetteer resolution. The literal candidate is returned
// unchanged when neither produces a confident answer.
func (r *Resolver) correct(candidate string) string {
	if fixed, ok := r.corrections[strings.ToLower(candidate)]; ok {
		return fixed
	}

	res := r.gaz.FindLocation(candidate)
	if res.Confidence > acceptThreshold && res.Match != "" {
		return res.Match
	}
	return candidate
}
