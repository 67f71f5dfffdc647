package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFilter_Normalize(t *testing.T) {
	t.Run("empty input uses defaults", func(t *testing.T) {
		f := RawFilter{}.Normalize()
		assert.Equal(t, DefaultPage, f.Page)
		assert.Equal(t, DefaultLimit, f.Limit)
		assert.Nil(t, f.MinPrice)
		assert.Nil(t, f.MaxPrice)
		assert.Nil(t, f.BargainAllowed)
	})

	t.Run("valid values pass through", func(t *testing.T) {
		f := RawFilter{
			RegionID: "kanchipuram",
			Type:     "Silk",
			Fabric:   "Mulberry",
			Search:   "zari",
			MinPrice: "2000",
			MaxPrice: "15000",
			Page:     "3",
			Limit:    "12",
		}.Normalize()

		assert.Equal(t, "kanchipuram", f.RegionID)
		assert.Equal(t, 3, f.Page)
		assert.Equal(t, 12, f.Limit)
		require.NotNil(t, f.MinPrice)
		assert.Equal(t, int64(2000), *f.MinPrice)
		require.NotNil(t, f.MaxPrice)
		assert.Equal(t, int64(15000), *f.MaxPrice)
	})

	t.Run("non-numeric page and limit fall back to defaults", func(t *testing.T) {
		f := RawFilter{Page: "abc", Limit: "xyz"}.Normalize()
		assert.Equal(t, DefaultPage, f.Page)
		assert.Equal(t, DefaultLimit, f.Limit)
	})

	t.Run("non-positive page and limit fall back to defaults", func(t *testing.T) {
		f := RawFilter{Page: "0", Limit: "-5"}.Normalize()
		assert.Equal(t, DefaultPage, f.Page)
		assert.Equal(t, DefaultLimit, f.Limit)
	})

	t.Run("malformed price bounds are dropped", func(t *testing.T) {
		f := RawFilter{MinPrice: "cheap", MaxPrice: "12.50"}.Normalize()
		assert.Nil(t, f.MinPrice)
		assert.Nil(t, f.MaxPrice)
	})

	t.Run("bargain flag only set for literal true and false", func(t *testing.T) {
		f := RawFilter{BargainAllowed: "true"}.Normalize()
		require.NotNil(t, f.BargainAllowed)
		assert.True(t, *f.BargainAllowed)

		f = RawFilter{BargainAllowed: "false"}.Normalize()
		require.NotNil(t, f.BargainAllowed)
		assert.False(t, *f.BargainAllowed)

		f = RawFilter{BargainAllowed: "yes"}.Normalize()
		assert.Nil(t, f.BargainAllowed)
	})
}

func TestSareeFilter_Matches(t *testing.T) {
	saree := &Saree{
		ID:               "kanchipuram-sample",
		Title:            "Kanchipuram Pattu Saree",
		RegionID:         "kanchipuram",
		Type:             "Kanchipuram Silk",
		Fabric:           "Pure Mulberry Silk",
		Characteristics:  "Heavy zari borders with temple motifs",
		Price:            12000,
		IsBargainAllowed: true,
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.True(t, SareeFilter{}.Matches(saree))
	})

	t.Run("region must match exactly", func(t *testing.T) {
		assert.True(t, SareeFilter{RegionID: "kanchipuram"}.Matches(saree))
		assert.False(t, SareeFilter{RegionID: "varanasi"}.Matches(saree))
	})

	t.Run("type and fabric match case-insensitive substrings", func(t *testing.T) {
		assert.True(t, SareeFilter{Type: "silk"}.Matches(saree))
		assert.True(t, SareeFilter{Fabric: "MULBERRY"}.Matches(saree))
		assert.False(t, SareeFilter{Fabric: "cotton"}.Matches(saree))
	})

	t.Run("search spans title type and characteristics", func(t *testing.T) {
		assert.True(t, SareeFilter{Search: "pattu"}.Matches(saree))
		assert.True(t, SareeFilter{Search: "temple"}.Matches(saree))
		assert.False(t, SareeFilter{Search: "banarasi"}.Matches(saree))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min := int64(12000)
		max := int64(12000)
		assert.True(t, SareeFilter{MinPrice: &min, MaxPrice: &max}.Matches(saree))

		higher := int64(12001)
		assert.False(t, SareeFilter{MinPrice: &higher}.Matches(saree))

		lower := int64(11999)
		assert.False(t, SareeFilter{MaxPrice: &lower}.Matches(saree))
	})

	t.Run("bargain flag filters both ways", func(t *testing.T) {
		yes, no := true, false
		assert.True(t, SareeFilter{BargainAllowed: &yes}.Matches(saree))
		assert.False(t, SareeFilter{BargainAllowed: &no}.Matches(saree))
	})
}

func TestSareeFilter_Skip(t *testing.T) {
	assert.Equal(t, 0, SareeFilter{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, 40, SareeFilter{Page: 3, Limit: 20}.Skip())
}

func TestNewPagination(t *testing.T) {
	t.Run("exact multiple", func(t *testing.T) {
		p := NewPagination(1, 10, 30)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("rounds up partial page", func(t *testing.T) {
		p := NewPagination(2, 10, 31)
		assert.Equal(t, 4, p.TotalPages)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, int64(31), p.Total)
	})

	t.Run("zero total yields zero pages", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
	})
}
