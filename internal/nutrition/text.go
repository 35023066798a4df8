package nutrition

import (
	"regexp"
	"strings"
)

var (
	itemSeparators   = regexp.MustCompile(`[,;|&+\n]|\band\b`)
	leadingQuantity  = regexp.MustCompile(`^[\d./]+\s*(x\s+)?`)
	trailingQuantity = regexp.MustCompile(`(\s+x)?\s*[\d./]+$`)
	unitWords        = regexp.MustCompile(`\b(pieces?|pcs?|grams?|gms?|g|kg|ml|cups?|bowls?|plates?|servings?|glass(es)?|tbsp|tsp|slices?|of)\b`)
	articlePrefix    = regexp.MustCompile(`^(the|a|an)\s+`)
	cookingSuffix    = regexp.MustCompile(`\s+(curry|masala|fry|fried|boiled|steamed|roasted|grilled)$`)
)

// ExtractItems splits a free-text meal description into food tokens with
// quantities and unit words removed.
func ExtractItems(text string) []string {
	items := make([]string, 0)
	for _, part := range itemSeparators.Split(strings.ToLower(text), -1) {
		item := strings.TrimSpace(part)
		item = leadingQuantity.ReplaceAllString(item, "")
		item = trailingQuantity.ReplaceAllString(item, "")
		item = unitWords.ReplaceAllString(item, " ")
		item = strings.Join(strings.Fields(item), " ")
		if len(item) > 1 {
			items = append(items, item)
		}
	}
	return items
}

// stripAffixes removes a leading article and a trailing cooking-style word.
func stripAffixes(token string) string {
	token = articlePrefix.ReplaceAllString(token, "")
	token = cookingSuffix.ReplaceAllString(token, "")
	return strings.TrimSpace(token)
}

func anyWordIn(token, name string) bool {
	for _, w := range strings.Fields(token) {
		if len(w) > 2 && strings.Contains(name, w) {
			return true
		}
	}
	return false
}
