// Package resolve disambiguates short identifier prefixes into the full
// identifiers they uniquely prefix. The board server issues fixed-length
// hex identifiers; users may type any unique leading fragment.
package resolve

import (
	"fmt"
	"strings"
)

// FullIDLength is the canonical length of server-issued identifiers.
const FullIDLength = 12

// NotFoundError reports a prefix that matched no known identifier.
type NotFoundError struct {
	Prefix string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no card matches id %q", e.Prefix)
}

// AmbiguousError reports a prefix shared by more than one identifier.
type AmbiguousError struct {
	Prefix  string
	Matches int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("id %q is ambiguous (%d matches); use a longer prefix", e.Prefix, e.Matches)
}

// ID resolves input against the candidate identifier list. Inputs at or
// above the canonical full length are returned unchanged without
// consulting candidates. Shorter inputs must prefix exactly one
// candidate; zero matches and multiple matches are distinct errors.
//
// The function is pure: callers are responsible for fetching an
// up-to-date candidate list immediately before resolving. A card deleted
// between resolution and use surfaces as a server-side not-found.
func ID(input string, candidates []string) (string, error) {
	input = strings.TrimSpace(input)
	if len(input) >= FullIDLength {
		return input, nil
	}

	var match string
	matches := 0
	for _, id := range candidates {
		if strings.HasPrefix(id, input) {
			match = id
			matches++
		}
	}

	switch matches {
	case 0:
		return "", &NotFoundError{Prefix: input}
	case 1:
		return match, nil
	default:
		return "", &AmbiguousError{Prefix: input, Matches: matches}
	}
}
