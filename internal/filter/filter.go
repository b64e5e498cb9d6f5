// Package filter applies client-side predicates to card listings. The
// server answers column and archive filters; priority, tag, and overdue
// narrowing happens here after the fetch.
package filter

import (
	"time"

	"github.com/orveth/blaze/internal/api"
)

// Spec describes the active filter dimensions. Dimensions compose by
// conjunction; within the priority and tag dimensions any single match
// passes. A zero Spec passes every card.
type Spec struct {
	Priorities []api.Priority
	Tags       []string
	Overdue    bool
}

// Active reports whether any dimension is set.
func (s Spec) Active() bool {
	return len(s.Priorities) > 0 || len(s.Tags) > 0 || s.Overdue
}

// Apply returns the ordered subsequence of cards satisfying every active
// dimension, evaluated at now. The input slice is never mutated.
func Apply(cards []api.Card, spec Spec, now time.Time) []api.Card {
	if !spec.Active() {
		return cards
	}

	out := make([]api.Card, 0, len(cards))
	for _, card := range cards {
		if spec.matches(card, now) {
			out = append(out, card)
		}
	}
	return out
}

func (s Spec) matches(card api.Card, now time.Time) bool {
	if len(s.Priorities) > 0 && !containsPriority(s.Priorities, card.Priority) {
		return false
	}
	if len(s.Tags) > 0 && !anyTagOverlap(s.Tags, card.Tags) {
		return false
	}
	if s.Overdue && !card.Overdue(now) {
		return false
	}
	return true
}

func containsPriority(set []api.Priority, p api.Priority) bool {
	for _, candidate := range set {
		if candidate == p {
			return true
		}
	}
	return false
}

func anyTagOverlap(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
