// Package suggest ranks catalog entries and static category/platform tags
// against a free-text autocomplete query. Matching is contains-only over
// lowercased, diacritic-stripped text; there is no fuzzy matching and no
// index, just a linear scan over catalogs of at most a few hundred entries.
package suggest

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/x07b/Houssem/internal/models"
)

const (
	maxProducts = 5
	maxTags     = 5
	maxTotal    = 8
)

type Item struct {
	Type     string  `json:"type"` // "product", "category" or "platform"
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Icon     string  `json:"icon"`
}

type Tag struct {
	Type  string
	ID    string
	Title string
	Icon  string
}

var Categories = []Tag{
	{Type: "category", ID: "gift-cards", Title: "Gift Cards", Icon: "gift"},
	{Type: "category", ID: "games", Title: "Games", Icon: "gamepad-2"},
	{Type: "category", ID: "software", Title: "Software", Icon: "box"},
	{Type: "category", ID: "subscriptions", Title: "Subscriptions", Icon: "badge-percent"},
}

var Platforms = []Tag{
	{Type: "platform", ID: "steam", Title: "Steam", Icon: "gamepad-2"},
	{Type: "platform", ID: "psn", Title: "PSN", Icon: "gamepad-2"},
	{Type: "platform", ID: "xbox", Title: "Xbox", Icon: "gamepad-2"},
	{Type: "platform", ID: "riot", Title: "Riot", Icon: "gift"},
}

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(folder, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Score rates how well text matches query: -1 when the folded text does not
// contain the folded query at all, otherwise higher for earlier matches and
// for text whose length is close to the query's.
func Score(text, query string) int {
	q := fold(query)
	if q == "" {
		return 0
	}

	t := fold(text)
	idx := strings.Index(t, q)
	if idx == -1 {
		return -1
	}

	diff := len(t) - len(q)
	if diff < 0 {
		diff = -diff
	}
	if diff > 30 {
		diff = 30
	}
	return 100 - idx - diff
}

// Rank composes the suggestion list: up to 5 product matches first, then up
// to 5 category/platform tags, capped at 8 entries total. An empty query
// keeps every candidate with a uniform score (the "popular" default list).
func Rank(products []models.Product, query string) []Item {
	query = strings.TrimSpace(query)

	type scored struct {
		item  Item
		score int
	}

	var prods []scored
	for _, p := range products {
		s := Score(p.Title, query)
		if query != "" && s < 0 {
			continue
		}
		prods = append(prods, scored{
			item: Item{
				Type:     "product",
				ID:       p.ID,
				Title:    p.Title,
				Price:    p.Price.USD,
				Currency: "USD",
				Icon:     "gift",
			},
			score: s,
		})
	}
	sort.SliceStable(prods, func(i, j int) bool { return prods[i].score > prods[j].score })
	if len(prods) > maxProducts {
		prods = prods[:maxProducts]
	}

	var tags []scored
	for _, tag := range append(append([]Tag{}, Categories...), Platforms...) {
		s := 1
		if query != "" {
			s = Score(tag.Title, query)
			if s < 0 {
				continue
			}
		}
		tags = append(tags, scored{
			item:  Item{Type: tag.Type, ID: tag.ID, Title: tag.Title, Icon: tag.Icon},
			score: s,
		})
	}
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].score > tags[j].score })
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	mixed := make([]Item, 0, maxTotal)
	for _, s := range prods {
		mixed = append(mixed, s.item)
	}
	for _, s := range tags {
		if len(mixed) >= maxTotal {
			break
		}
		mixed = append(mixed, s.item)
	}
	return mixed
}
