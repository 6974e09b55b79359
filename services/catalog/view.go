package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"omm/models"
)

// StockFilter selects parts by availability, matched against the free-text
// stock summary.
type StockFilter string

const (
	StockAll StockFilter = "all"
	StockIn  StockFilter = "in-stock"
	StockOut StockFilter = "out-of-stock"
)

// SortKey selects the field the view is ordered by.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortBySKU      SortKey = "sku"
	SortByPrice    SortKey = "price"
	SortByTier     SortKey = "tier"
	SortByCategory SortKey = "category"
	SortByStock    SortKey = "stock"
)

// SortDir is the sort direction.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// ViewConfig describes one filtered, sorted, optionally grouped reading of
// the part catalogue. Empty or "all" values disable the corresponding
// filter; filters compose with AND.
type ViewConfig struct {
	Search   string      `json:"search"`
	Tier     string      `json:"tier"`
	Category string      `json:"category"`
	Group    string      `json:"group"`
	Stock    StockFilter `json:"stock"`
	SortBy   SortKey     `json:"sortBy"`
	Dir      SortDir     `json:"dir"`
	Grouped  bool        `json:"grouped"`
}

// CategoryGroup is one bucket of the grouped view. Groups are returned
// sorted alphabetically by category; parts within a group follow the
// configured sort.
type CategoryGroup struct {
	Category      string               `json:"category"`
	CategoryImage string               `json:"categoryImage,omitempty"`
	Parts         []models.CatalogPart `json:"parts"`
}

// Build derives the configured view over the catalogue. The input slice is
// never mutated; the result is always a fresh ordering.
func Build(parts []models.CatalogPart, cfg ViewConfig) []models.CatalogPart {
	out := make([]models.CatalogPart, 0, len(parts))
	for _, p := range parts {
		if matches(p, cfg) {
			out = append(out, p)
		}
	}
	sortParts(out, cfg)
	return out
}

// BuildGrouped derives the grouped view: one bucket per category, buckets
// sorted alphabetically.
func BuildGrouped(parts []models.CatalogPart, cfg ViewConfig) []CategoryGroup {
	flat := Build(parts, cfg)
	buckets := map[string]*CategoryGroup{}
	for _, p := range flat {
		g, ok := buckets[p.Category]
		if !ok {
			g = &CategoryGroup{Category: p.Category, CategoryImage: p.CategoryImage}
			buckets[p.Category] = g
		}
		if g.CategoryImage == "" {
			g.CategoryImage = p.CategoryImage
		}
		g.Parts = append(g.Parts, p)
	}

	out := make([]CategoryGroup, 0, len(buckets))
	for _, g := range buckets {
		out = append(out, *g)
	}
	cl := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return cl.CompareString(out[i].Category, out[j].Category) < 0
	})
	return out
}

// MarkAdded flags catalogue parts already present on the booking. Flagged
// parts stay in the view; the caller decides how to render them.
func MarkAdded(parts []models.CatalogPart, b models.Booking) []models.CatalogPart {
	out := make([]models.CatalogPart, len(parts))
	copy(out, parts)
	for i := range out {
		out[i].AlreadyAdded = b.HasPart(out[i].ID)
	}
	return out
}

func matches(p models.CatalogPart, cfg ViewConfig) bool {
	if s := strings.ToLower(strings.TrimSpace(cfg.Search)); s != "" {
		hay := strings.ToLower(strings.Join(append([]string{p.Title, p.SKU, p.Category, p.Group}, p.Groups...), " "))
		if !strings.Contains(hay, s) {
			return false
		}
	}
	if cfg.Tier != "" && cfg.Tier != "all" && !strings.EqualFold(p.Tier, cfg.Tier) {
		return false
	}
	if cfg.Category != "" && cfg.Category != "all" && !strings.EqualFold(p.Category, cfg.Category) {
		return false
	}
	if cfg.Group != "" && cfg.Group != "all" && !inGroup(p, cfg.Group) {
		return false
	}
	switch cfg.Stock {
	case StockIn:
		return p.InStock()
	case StockOut:
		return !p.InStock()
	}
	return true
}

func inGroup(p models.CatalogPart, group string) bool {
	if strings.EqualFold(p.Group, group) {
		return true
	}
	for _, g := range p.Groups {
		if strings.EqualFold(g, group) {
			return true
		}
	}
	return false
}

func sortParts(parts []models.CatalogPart, cfg ViewConfig) {
	if cfg.SortBy == "" {
		return
	}
	cl := collate.New(language.English, collate.IgnoreCase)
	cmp := func(a, b models.CatalogPart) int {
		switch cfg.SortBy {
		case SortBySKU:
			return cl.CompareString(a.SKU, b.SKU)
		case SortByPrice:
			switch {
			case a.PriceForConsumer < b.PriceForConsumer:
				return -1
			case a.PriceForConsumer > b.PriceForConsumer:
				return 1
			}
			return 0
		case SortByTier:
			return cl.CompareString(a.Tier, b.Tier)
		case SortByCategory:
			return cl.CompareString(a.Category, b.Category)
		case SortByStock:
			return cl.CompareString(a.StockSummary, b.StockSummary)
		default:
			return cl.CompareString(a.Title, b.Title)
		}
	}
	sort.SliceStable(parts, func(i, j int) bool {
		if cfg.Dir == Desc {
			return cmp(parts[i], parts[j]) > 0
		}
		return cmp(parts[i], parts[j]) < 0
	})
}
