package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedData(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	assert.Len(t, store.Categories(), 4)
	assert.Len(t, store.Devices(), 8)

	// 每個分類都有裝置
	for _, category := range Categories {
		assert.NotEmpty(t, store.ByCategory(category), "category %s", category)
	}
}

func TestByCategoryFiltersAndKeepsOrder(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	laptops := store.ByCategory(CategoryLaptop)
	require.Len(t, laptops, 2)
	assert.Equal(t, "laptop-1", laptops[0].ID)
	assert.Equal(t, "laptop-2", laptops[1].ID)
	for _, d := range laptops {
		assert.Equal(t, CategoryLaptop, d.Category)
	}
}

func TestNewStoreWithRejectsDuplicateIDs(t *testing.T) {
	devices := []Device{
		{ID: "dup", Category: CategoryLaptop, Subcategory: "gaming", Price: 100, Rating: 4},
		{ID: "dup", Category: CategoryLaptop, Subcategory: "gaming", Price: 200, Rating: 4},
	}

	_, err := NewStoreWith(seedCategories, devices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate device id")
}

func TestNewStoreWithRejectsUnknownSubcategory(t *testing.T) {
	devices := []Device{
		{ID: "bad", Category: CategoryLaptop, Subcategory: "gamming", Price: 100, Rating: 4},
	}

	_, err := NewStoreWith(seedCategories, devices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcategory")
}

func TestNewStoreWithRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		device Device
	}{
		{"empty id", Device{Category: CategoryLaptop, Subcategory: "gaming", Price: 100, Rating: 4}},
		{"unknown category", Device{ID: "x", Category: "tablet", Subcategory: "gaming", Price: 100, Rating: 4}},
		{"zero price", Device{ID: "x", Category: CategoryLaptop, Subcategory: "gaming", Price: 0, Rating: 4}},
		{"rating out of range", Device{ID: "x", Category: CategoryLaptop, Subcategory: "gaming", Price: 100, Rating: 5.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStoreWith(seedCategories, []Device{tc.device})
			assert.Error(t, err)
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryLaptop.IsValid())
	assert.True(t, Category("mobile").IsValid())
	assert.False(t, Category("tablet").IsValid())
	assert.False(t, Category("").IsValid())
}
