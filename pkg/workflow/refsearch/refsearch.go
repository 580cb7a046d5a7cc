// Package refsearch resolves reference entries for corrections. Keystrokes
// are debounced so only a settled query hits the backend.
package refsearch

import (
	"strings"
	"sync"
	"time"

	"stockroom/pkg/models"
)

// MinQueryLength is the shortest query worth searching for. Anything shorter
// clears the results instead.
const MinQueryLength = 3

// DefaultDelay is how long the input must stay unchanged before a search
// fires.
const DefaultDelay = 300 * time.Millisecond

// Filter narrows entries to those whose entry number contains the query,
// case-insensitive. Queries below the minimum length match nothing.
func Filter(entryRows []models.StockEntry, query string) []models.StockEntry {
	if len(query) < MinQueryLength {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []models.StockEntry
	for _, entry := range entryRows {
		if strings.Contains(strings.ToLower(entry.EntryNumber), needle) {
			matches = append(matches, entry)
		}
	}

	return matches
}

// Resolver debounces search input. Each keystroke resets the timer; the
// search callback fires only after the input has settled for the configured
// delay, and only for the latest query.
type Resolver struct {
	mu     sync.Mutex
	timer  *time.Timer
	delay  time.Duration
	search func(query string)
}

func NewResolver(delay time.Duration, search func(query string)) *Resolver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Resolver{delay: delay, search: search}
}

// Input registers a keystroke. Short queries cancel any pending search.
func (r *Resolver) Input(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if len(query) < MinQueryLength {
		return
	}

	r.timer = time.AfterFunc(r.delay, func() {
		r.search(query)
	})
}

// Stop cancels any pending search, e.g. when the form closes.
func (r *Resolver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
