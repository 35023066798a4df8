package nutrition

import (
	"strings"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/lexicon"
)

// Analyzer matches meal text against a lexicon and aggregates nutrition
// under a policy. It holds no mutable state.
type Analyzer struct {
	lex     *lexicon.Lexicon
	entries []domain.FoodEntry
	policy  Policy
}

func NewAnalyzer(lex *lexicon.Lexicon, policy Policy) *Analyzer {
	return &Analyzer{
		lex:     lex,
		entries: lex.Entries(),
		policy:  policy,
	}
}

func (a *Analyzer) Policy() Policy { return a.policy }

func (a *Analyzer) LexiconVersion() string { return a.lex.Version() }

// Match resolves each token to a lexicon entry. Unmatched tokens are dropped.
func (a *Analyzer) Match(items []string) []domain.FoodMatch {
	matches := make([]domain.FoodMatch, 0, len(items))
	for _, item := range items {
		if e, ok := a.matchOne(item); ok {
			matches = append(matches, domain.FoodMatch{Token: item, Entry: e})
		}
	}
	return matches
}

func (a *Analyzer) matchOne(token string) (domain.FoodEntry, bool) {
	if e, ok := a.lex.Lookup(token); ok {
		return e, true
	}

	name := stripAffixes(token)
	if e, ok := a.lex.Lookup(name); ok {
		return e, true
	}
	if canonical, ok := a.lex.Resolve(name); ok {
		return a.lex.Lookup(canonical)
	}

	for _, e := range a.entries {
		if strings.Contains(e.Name, name) || strings.Contains(name, e.Name) || anyWordIn(name, e.Name) {
			return e, true
		}
	}
	return domain.FoodEntry{}, false
}

// Analyze runs extraction, matching and aggregation for one meal.
func (a *Analyzer) Analyze(text string, size domain.PortionSize) domain.FoodAnalysis {
	items := ExtractItems(text)
	matches := a.Match(items)

	foods := make([]domain.FoodEntry, len(matches))
	names := make([]string, len(matches))
	for i, m := range matches {
		foods[i] = m.Entry
		names[i] = m.Entry.Name
	}

	stats := domain.MatchStats{
		TotalItemsFound:    len(matches),
		TotalItemsSearched: len(items),
	}
	if len(items) > 0 {
		stats.MatchRate = float64(len(matches)) / float64(len(items))
	}

	return domain.FoodAnalysis{
		FoodItems:    items,
		MatchedItems: names,
		Nutrition:    a.policy.Aggregate(foods, size),
		Analysis:     stats,
	}
}
