// Package campaign implements the profile-discovery and connection-request
// pipeline: the collector walks the group-member listing, the connector
// attempts one connection per candidate, and the orchestrator drives the run
// under a daily cap.
package campaign

import "strings"

// Degree is the relationship-degree hint observed at discovery time.
type Degree int

const (
	DegreeUnknown Degree = iota
	DegreeSelf
	DegreeFirst
	DegreeSecond
	DegreeThird
)

// ParseDegree maps the badge text LinkedIn renders next to a member name
// ("· 2nd", "1st degree connection", "You") to a Degree. Unrecognized or
// empty text maps to DegreeUnknown, which is not disqualifying.
func ParseDegree(text string) Degree {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimLeft(s, "·•")
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return DegreeUnknown
	case strings.HasPrefix(s, "you"):
		return DegreeSelf
	case strings.HasPrefix(s, "1st"):
		return DegreeFirst
	case strings.HasPrefix(s, "2nd"):
		return DegreeSecond
	case strings.HasPrefix(s, "3rd"):
		return DegreeThird
	default:
		return DegreeUnknown
	}
}

// Disqualifying reports whether the degree rules the candidate out: the
// member is already a connection, or is the account owner.
func (d Degree) Disqualifying() bool {
	return d == DegreeSelf || d == DegreeFirst
}

func (d Degree) String() string {
	switch d {
	case DegreeSelf:
		return "self"
	case DegreeFirst:
		return "1st"
	case DegreeSecond:
		return "2nd"
	case DegreeThird:
		return "3rd"
	default:
		return "unknown"
	}
}

// Candidate is a discovered profile eligible for a connection attempt.
// Immutable after discovery.
type Candidate struct {
	ProfileURL string
	Degree     Degree
}

// CandidateSet is an ordered, deduplicated sequence of candidates.
// First-seen wins; disqualifying degrees are never admitted.
type CandidateSet struct {
	seen  map[string]bool
	items []Candidate
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{seen: make(map[string]bool)}
}

// Add admits the candidate unless its URL was already seen or its degree is
// disqualifying. A rejected duplicate still marks the URL as seen.
func (s *CandidateSet) Add(c Candidate) bool {
	if c.ProfileURL == "" || s.seen[c.ProfileURL] {
		return false
	}
	s.seen[c.ProfileURL] = true

	if c.Degree.Disqualifying() {
		return false
	}

	s.items = append(s.items, c)
	return true
}

// Candidates returns the admitted candidates in discovery order.
func (s *CandidateSet) Candidates() []Candidate {
	return s.items
}

// Len returns the number of admitted candidates.
func (s *CandidateSet) Len() int {
	return len(s.items)
}

// CleanProfileURL strips tracking query params LinkedIn appends to profile
// links and trailing slashes, yielding a canonical identifier.
func CleanProfileURL(rawURL string) string {
	if i := strings.Index(rawURL, "?"); i != -1 {
		rawURL = rawURL[:i]
	}
	return strings.TrimRight(rawURL, "/")
}
