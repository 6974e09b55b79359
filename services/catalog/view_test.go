package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omm/models"
)

func samplePart(id, title, sku, tier, category, stock string, price float64) models.CatalogPart {
	return models.CatalogPart{
		Part: models.Part{
			ID:               id,
			Title:            title,
			SKU:              sku,
			Tier:             tier,
			Category:         category,
			StockSummary:     stock,
			PriceForConsumer: models.Money(price),
		},
	}
}

func sampleCatalog() []models.CatalogPart {
	return []models.CatalogPart{
		samplePart("p1", "Brake Pad", "BP-100", "gold", "Brakes", "In stock.", 35),
		samplePart("p2", "Oil Filter", "OF-220", "silver", "Engine", "Out of stock.", 12),
		samplePart("p3", "Air Filter", "AF-310", "gold", "Engine", "In stock.", 18),
	}
}

func TestStockFilter(t *testing.T) {
	parts := []models.CatalogPart{
		samplePart("p1", "Brake Pad", "", "gold", "", "In stock.", 0),
		samplePart("p2", "Oil Filter", "", "silver", "", "Out of stock.", 0),
	}

	out := Build(parts, ViewConfig{Stock: StockIn})
	require.Len(t, out, 1)
	assert.Equal(t, "Brake Pad", out[0].Title)

	out = Build(parts, ViewConfig{Stock: StockOut})
	require.Len(t, out, 1)
	assert.Equal(t, "Oil Filter", out[0].Title)
}

func TestSortByNameAsc(t *testing.T) {
	parts := []models.CatalogPart{
		samplePart("p1", "B", "", "", "", "", 10),
		samplePart("p2", "A", "", "", "", "", 20),
	}
	out := Build(parts, ViewConfig{SortBy: SortByName, Dir: Asc})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
}

func TestSortByPriceDesc(t *testing.T) {
	parts := []models.CatalogPart{
		samplePart("p1", "B", "", "", "", "", 10),
		samplePart("p2", "A", "", "", "", "", 20),
	}
	out := Build(parts, ViewConfig{SortBy: SortByPrice, Dir: Desc})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title) // 20 before 10
	assert.Equal(t, "B", out[1].Title)
}

func TestFiltersComposeWithAND(t *testing.T) {
	out := Build(sampleCatalog(), ViewConfig{Tier: "gold", Stock: StockIn, Category: "Engine"})
	require.Len(t, out, 1)
	assert.Equal(t, "Air Filter", out[0].Title)
}

func TestSearchMatchesTitleSkuCategoryAndGroup(t *testing.T) {
	parts := sampleCatalog()
	parts[0].Groups = []string{"Front Axle"}

	assert.Len(t, Build(parts, ViewConfig{Search: "brake"}), 1)
	assert.Len(t, Build(parts, ViewConfig{Search: "of-220"}), 1)
	assert.Len(t, Build(parts, ViewConfig{Search: "engine"}), 2)
	assert.Len(t, Build(parts, ViewConfig{Search: "front axle"}), 1)
	assert.Empty(t, Build(parts, ViewConfig{Search: "gearbox"}))
}

func TestAllValueDisablesFilter(t *testing.T) {
	assert.Len(t, Build(sampleCatalog(), ViewConfig{Tier: "all", Stock: StockAll, Category: ""}), 3)
}

func TestGroupedViewSortsCategoriesAlphabetically(t *testing.T) {
	groups := BuildGrouped(sampleCatalog(), ViewConfig{SortBy: SortByName, Dir: Asc})
	require.Len(t, groups, 2)
	assert.Equal(t, "Brakes", groups[0].Category)
	assert.Equal(t, "Engine", groups[1].Category)
	// Parts within a group follow the configured sort.
	require.Len(t, groups[1].Parts, 2)
	assert.Equal(t, "Air Filter", groups[1].Parts[0].Title)
	assert.Equal(t, "Oil Filter", groups[1].Parts[1].Title)
}

func TestBuildNeverMutatesInput(t *testing.T) {
	parts := sampleCatalog()
	original := make([]models.CatalogPart, len(parts))
	copy(original, parts)

	_ = Build(parts, ViewConfig{SortBy: SortByPrice, Dir: Desc, Stock: StockIn})
	_ = BuildGrouped(parts, ViewConfig{SortBy: SortByName})

	assert.Equal(t, original, parts)
}

func TestMarkAddedFlagsWithoutExcluding(t *testing.T) {
	parts := sampleCatalog()
	b := models.Booking{
		PartItems: models.PartList{{ID: "p2", Title: "Oil Filter"}},
	}

	marked := MarkAdded(parts, b)
	require.Len(t, marked, len(parts))
	assert.False(t, marked[0].AlreadyAdded)
	assert.True(t, marked[1].AlreadyAdded)
	// Source slice stays untouched.
	assert.False(t, parts[1].AlreadyAdded)
}
