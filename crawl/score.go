package crawl

import (
	"regexp"
	"sort"
	"strings"
)

// ImportancePattern is one themed entry of the page-importance catalogue.
// A path earns Weight once when Pattern matches it.
type ImportancePattern struct {
	Theme   string
	Pattern *regexp.Regexp
	Weight  int
}

// Catalogue is the default importance catalogue used by Score.
var Catalogue = []ImportancePattern{
	{"identity", regexp.MustCompile(`(?i)about|company|team|leadership|history|mission|vision`), 1},
	{"offerings", regexp.MustCompile(`(?i)services|solutions|products|offerings|what-we-do`), 1},
	{"contact", regexp.MustCompile(`(?i)contact|get-in-touch|connect|reach-out`), 1},
	{"portfolio", regexp.MustCompile(`(?i)work|portfolio|projects|case-studies|clients`), 1},
	{"methodology", regexp.MustCompile(`(?i)approach|methodology|process|how-we-work`), 1},
	{"careers", regexp.MustCompile(`(?i)careers|jobs|join-us|hiring`), 1},
	{"content", regexp.MustCompile(`(?i)blog|news|insights|articles|resources`), 1},
}

// bonusTerms earn BonusWeight when any appears literally in a path.
var bonusTerms = []string{"about", "services", "contact", "work", "team"}

const (
	// BonusWeight is added once when a path contains a bonus term.
	BonusWeight = 2
	// DepthPenalty is subtracted from paths deeper than MaxDepth segments.
	DepthPenalty = 1
	// MaxDepth is the number of path segments allowed before the penalty applies.
	MaxDepth = 3
)

// DefaultPages are scraped when no discovered path scores above zero.
var DefaultPages = []string{"about", "services", "contact", "work", "team"}

// ScoredPath is a candidate path with its importance score.
type ScoredPath struct {
	Path  string
	Score int
}

// Scorer ranks candidate paths against a pattern catalogue.
type Scorer struct {
	Patterns []ImportancePattern
}

// NewScorer creates a Scorer using the default Catalogue.
func NewScorer() *Scorer {
	return &Scorer{Patterns: Catalogue}
}

// Score computes the importance of a single path (no scheme or host,
// slashes trimmed).
func (s *Scorer) Score(p string) int {
	score := 0
	for _, ip := range s.Patterns {
		if ip.Pattern.MatchString(p) {
			score += ip.Weight
		}
	}
	for _, term := range bonusTerms {
		if strings.Contains(p, term) {
			score += BonusWeight
			break
		}
	}
	if len(strings.Split(p, "/")) > MaxDepth {
		score -= DepthPenalty
	}
	return score
}

// Rank scores paths, drops those scoring zero or less, and returns at most
// max paths by descending score. Equal scores keep their input order.
func (s *Scorer) Rank(paths []string, max int) []ScoredPath {
	if max <= 0 {
		return nil
	}

	scored := make([]ScoredPath, 0, len(paths))
	for _, p := range paths {
		if score := s.Score(p); score > 0 {
			scored = append(scored, ScoredPath{Path: p, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// CandidatesOrDefault returns the ranked paths, or a copy of DefaultPages
// when ranking produced nothing.
func CandidatesOrDefault(ranked []ScoredPath) []string {
	if len(ranked) == 0 {
		return append([]string(nil), DefaultPages...)
	}
	out := make([]string, len(ranked))
	for i, sp := range ranked {
		out[i] = sp.Path
	}
	return out
}
