// Package speller catches phonetic and typo variants of place names before
// they reach the gazetteer. It keeps a small corrections table that can grow
// at runtime: learned entries are persisted, built-in ones never are.
package speller

import (
	"log"
	"strings"
	"sync"

	"github.com/weatherbuddy/weather-assistant/internal/fuzzy"
)

// similarityThreshold is stricter than the gazetteer's because corrections
// map to free text and a loose hit is worse than no hit.
const similarityThreshold = 0.8

const maxSuggestions = 3

// Store persists the learned subset of corrections.
type Store interface {
	Load() (map[string]string, error)
	Save(map[string]string) error
}

// Checker is a corrections table with fuzzy fallback and a learn operation.
type Checker struct {
	mu          sync.RWMutex
	corrections map[string]string
	builtin     map[string]bool
	store       Store
}

// New builds a Checker with the built-in corrections merged under any
// previously learned entries from the store. A store load failure is logged
// and ignored; spell checking is best-effort.
func New(store Store) *Checker {
	c := &Checker{
		corrections: builtinCorrections(),
		builtin:     make(map[string]bool),
		store:       store,
	}
	for k := range c.corrections {
		c.builtin[k] = true
	}

	if store != nil {
		learned, err := store.Load()
		if err != nil {
			log.Printf("WARN: could not load learned corrections: %v", err)
		}
		for k, v := range learned {
			c.corrections[k] = v
		}
	}
	return c
}

// Check looks up a correction for text. An exact lowercase hit returns the
// correction with confidence 1.0. Otherwise every correction key is scored
// and the best match above the threshold wins, with up to three target names
// offered as suggestions. An empty corrected string means no hit.
func (c *Checker) Check(text string) (corrected string, confidence float64, suggestions []string) {
	key := strings.ToLower(strings.TrimSpace(text))

	c.mu.RLock()
	defer c.mu.RUnlock()

	if hit, ok := c.corrections[key]; ok {
		return hit, 1.0, nil
	}

	var (
		bestScore  float64
		candidates []fuzzy.Candidate
	)
	for wrong, right := range c.corrections {
		s := fuzzy.Similarity(key, wrong)
		if s <= similarityThreshold {
			continue
		}
		if s > bestScore {
			bestScore = s
			corrected = right
		}
		candidates = append(candidates, fuzzy.Candidate{Name: right, Score: s})
	}

	fuzzy.Rank(key, candidates)
	return corrected, bestScore, fuzzy.TopNames(candidates, maxSuggestions)
}

// Learn records a new correction and synchronously flushes the learned
// subset to the store. Persistence failures are swallowed: losing a learned
// correction is acceptable, failing the caller is not.
func (c *Checker) Learn(original, corrected string) {
	key := strings.ToLower(strings.TrimSpace(original))
	if key == "" || corrected == "" {
		return
	}

	c.mu.Lock()
	c.corrections[key] = corrected
	learned := c.learnedLocked()
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.Save(learned); err != nil {
		log.Printf("WARN: could not persist learned corrections: %v", err)
	}
}

// learnedLocked snapshots every correction that is not built in.
// Built-in keys are excluded even when re-learned so a partial write can
// never corrupt them. Must be called with the lock held.
func (c *Checker) learnedLocked() map[string]string {
	learned := make(map[string]string)
	for k, v := range c.corrections {
		if !c.builtin[k] {
			learned[k] = v
		}
	}
	return learned
}
