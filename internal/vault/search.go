package vault

import (
	"slices"
	"strings"
)

// SearchOptions configures note search filtering.
type SearchOptions struct {
	// Tag keeps only notes carrying this tag. Empty matches all.
	Tag string
}

// Search finds notes matching the query and filter options. Matching
// is case-insensitive against title and vault-relative path. An empty
// query returns all notes (subject to filters). Results are sorted by
// match quality (exact title > title prefix > title contains > path
// contains), ties by path.
func Search(notes []Note, query string, opts SearchOptions) []Note {
	query = strings.ToLower(query)

	var results []Note
	for _, n := range notes {
		if opts.Tag != "" && !n.HasTag(opts.Tag) {
			continue
		}
		if query == "" || matchesQuery(&n, query) {
			results = append(results, n)
		}
	}

	slices.SortFunc(results, func(a, b Note) int {
		scoreA := scoreMatch(&a, query)
		scoreB := scoreMatch(&b, query)
		if scoreA != scoreB {
			return scoreB - scoreA
		}
		return strings.Compare(a.Rel, b.Rel)
	})

	return results
}

func matchesQuery(n *Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Title()), query) ||
		strings.Contains(strings.ToLower(n.Rel), query) {
		return true
	}
	for _, a := range n.Aliases() {
		if strings.Contains(strings.ToLower(a), query) {
			return true
		}
	}
	return false
}

// scoreMatch returns a score indicating match quality.
//
// Scoring:
//   - 100: exact title match
//   - 90: exact alias match
//   - 75: title starts with query
//   - 50: title or alias contains query
//   - 25: path contains query (but title doesn't)
//   - 0: no match or empty query
func scoreMatch(n *Note, query string) int {
	if query == "" {
		return 0
	}

	title := strings.ToLower(n.Title())

	if title == query {
		return 100
	}
	for _, a := range n.Aliases() {
		if strings.ToLower(a) == query {
			return 90
		}
	}
	if strings.HasPrefix(title, query) {
		return 75
	}
	if strings.Contains(title, query) {
		return 50
	}
	for _, a := range n.Aliases() {
		if strings.Contains(strings.ToLower(a), query) {
			return 50
		}
	}
	if strings.Contains(strings.ToLower(n.Rel), query) {
		return 25
	}

	return 0
}
