package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/sample"
)

type fakeSareeRepo struct {
	sarees []domain.Saree
	total  int64
	err    error
}

func (f *fakeSareeRepo) Create(*domain.Saree) error { return nil }
func (f *fakeSareeRepo) Upsert(*domain.Saree) error { return nil }
func (f *fakeSareeRepo) Update(*domain.Saree) error { return nil }
func (f *fakeSareeRepo) Delete(string) error { return nil }
func (f *fakeSareeRepo) UpdateStock(string, int) error { return nil }
func (f *fakeSareeRepo) DecrementStock(string, int) error { return nil }
func (f *fakeSareeRepo) Count() (int64, error) { return f.total, f.err }

func (f *fakeSareeRepo) FindByID(_ context.Context, id string) (*domain.Saree, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.sarees {
		if f.sarees[i].ID == id {
			return &f.sarees[i], nil
		}
	}
	return nil, domain.ErrSareeNotFound
}

func (f *fakeSareeRepo) FindFiltered(_ context.Context, _ domain.SareeFilter) ([]domain.Saree, int64, error) {
	return f.sarees, f.total, f.err
}

func (f *fakeSareeRepo) FindRelated(_ context.Context, regionID, excludeID string, limit int) ([]domain.Saree, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Saree
	for _, s := range f.sarees {
		if s.RegionID == regionID && s.ID != excludeID && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeRegionRepo struct {
	regions []domain.Region
	err     error
}

func (f *fakeRegionRepo) Create(*domain.Region) error { return nil }
func (f *fakeRegionRepo) Upsert(*domain.Region) error { return nil }
func (f *fakeRegionRepo) Count() (int64, error) { return int64(len(f.regions)), f.err }

func (f *fakeRegionRepo) FindByID(_ context.Context, id string) (*domain.Region, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.regions {
		if f.regions[i].ID == id {
			return &f.regions[i], nil
		}
	}
	return nil, domain.ErrRegionNotFound
}

func (f *fakeRegionRepo) FindAll(_ context.Context, featuredOnly bool) ([]domain.Region, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Region
	for _, r := range f.regions {
		if featuredOnly && !r.Featured {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func storeSarees() []domain.Saree {
	return []domain.Saree{
		{ID: "s1", Title: "Store Saree One", RegionID: "kanchipuram", Price: 9000, Stock: 5},
		{ID: "s2", Title: "Store Saree Two", RegionID: "kanchipuram", Price: 7000, Stock: 2},
	}
}

func TestResolver_ListSarees(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit is returned untouched", func(t *testing.T) {
		r := New(&fakeSareeRepo{sarees: storeSarees(), total: 42}, &fakeRegionRepo{}, time.Second)

		page := r.ListSarees(ctx, domain.SareeFilter{Page: 1, Limit: 20})

		assert.Equal(t, SourceStore, page.Source)
		assert.Len(t, page.Sarees, 2)
		assert.Equal(t, int64(42), page.Pagination.Total)
	})

	t.Run("empty store falls back to sample data", func(t *testing.T) {
		r := New(&fakeSareeRepo{}, &fakeRegionRepo{}, time.Second)

		page := r.ListSarees(ctx, domain.SareeFilter{Page: 1, Limit: 20})

		assert.Equal(t, SourceSample, page.Source)
		assert.Equal(t, len(sample.Sarees()), len(page.Sarees))
	})

	t.Run("erroring store falls back to sample data", func(t *testing.T) {
		r := New(&fakeSareeRepo{err: errors.New("connection refused")}, &fakeRegionRepo{}, time.Second)

		page := r.ListSarees(ctx, domain.SareeFilter{Page: 1, Limit: 20})

		assert.Equal(t, SourceSample, page.Source)
		assert.NotEmpty(t, page.Sarees)
	})

	t.Run("sample fallback applies the filter", func(t *testing.T) {
		r := New(&fakeSareeRepo{err: errors.New("down")}, &fakeRegionRepo{}, time.Second)

		page := r.ListSarees(ctx, domain.SareeFilter{RegionID: "dharmavaram", Page: 1, Limit: 20})

		assert.Equal(t, SourceSample, page.Source)
		require.NotEmpty(t, page.Sarees)
		for _, s := range page.Sarees {
			assert.Equal(t, "dharmavaram", s.RegionID)
		}
	})

	t.Run("sample fallback paginates identically", func(t *testing.T) {
		r := New(&fakeSareeRepo{}, &fakeRegionRepo{}, time.Second)

		page := r.ListSarees(ctx, domain.SareeFilter{Page: 1, Limit: 2})
		assert.Len(t, page.Sarees, 2)
		assert.Equal(t, int64(len(sample.Sarees())), page.Pagination.Total)

		// A window past the end is empty, not an error
		page = r.ListSarees(ctx, domain.SareeFilter{Page: 99, Limit: 20})
		assert.Empty(t, page.Sarees)
		assert.Equal(t, SourceSample, page.Source)
	})
}

func TestResolver_GetSaree(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit includes related from store", func(t *testing.T) {
		r := New(&fakeSareeRepo{sarees: storeSarees()}, &fakeRegionRepo{}, time.Second)

		detail, err := r.GetSaree(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, SourceStore, detail.Source)
		assert.Equal(t, "s1", detail.Saree.ID)
		require.Len(t, detail.Related, 1)
		assert.Equal(t, "s2", detail.Related[0].ID)
	})

	t.Run("store miss falls back to sample", func(t *testing.T) {
		r := New(&fakeSareeRepo{err: errors.New("down")}, &fakeRegionRepo{}, time.Second)

		detail, err := r.GetSaree(ctx, "dharmavaram-1")
		require.NoError(t, err)
		assert.Equal(t, SourceSample, detail.Source)
		assert.Equal(t, "dharmavaram-1", detail.Saree.ID)
		// Related come from the same sample region, excluding the saree itself
		for _, rel := range detail.Related {
			assert.Equal(t, "dharmavaram", rel.RegionID)
			assert.NotEqual(t, "dharmavaram-1", rel.ID)
		}
	})

	t.Run("absent from both tiers is not found", func(t *testing.T) {
		r := New(&fakeSareeRepo{}, &fakeRegionRepo{}, time.Second)

		_, err := r.GetSaree(ctx, "no-such-saree")
		assert.ErrorIs(t, err, domain.ErrSareeNotFound)
	})
}

func TestResolver_ListRegions(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit wins", func(t *testing.T) {
		repo := &fakeRegionRepo{regions: []domain.Region{
			{ID: "kanchipuram", Name: "Kanchipuram", Featured: true},
			{ID: "varanasi", Name: "Varanasi"},
		}}
		r := New(&fakeSareeRepo{}, repo, time.Second)

		regions, source := r.ListRegions(ctx, false)
		assert.Equal(t, SourceStore, source)
		assert.Len(t, regions, 2)
	})

	t.Run("featured only filters sample fallback", func(t *testing.T) {
		r := New(&fakeSareeRepo{}, &fakeRegionRepo{err: errors.New("down")}, time.Second)

		regions, source := r.ListRegions(ctx, true)
		assert.Equal(t, SourceSample, source)
		require.NotEmpty(t, regions)
		for _, region := range regions {
			assert.True(t, region.Featured)
		}
	})
}

func TestResolver_GetRegion(t *testing.T) {
	ctx := context.Background()

	t.Run("store region with store sarees", func(t *testing.T) {
		repo := &fakeRegionRepo{regions: []domain.Region{{ID: "kanchipuram", Name: "Kanchipuram"}}}
		r := New(&fakeSareeRepo{sarees: storeSarees(), total: 2}, repo, time.Second)

		detail, err := r.GetRegion(ctx, "kanchipuram")
		require.NoError(t, err)
		assert.Equal(t, SourceStore, detail.Source)
		assert.Len(t, detail.Sarees, 2)
	})

	t.Run("sample fallback serves region sarees", func(t *testing.T) {
		r := New(&fakeSareeRepo{err: errors.New("down")}, &fakeRegionRepo{err: errors.New("down")}, time.Second)

		detail, err := r.GetRegion(ctx, "dharmavaram")
		require.NoError(t, err)
		assert.Equal(t, SourceSample, detail.Source)
		assert.Equal(t, "dharmavaram", detail.Region.ID)
		assert.NotEmpty(t, detail.Sarees)
	})

	t.Run("unknown region in both tiers is not found", func(t *testing.T) {
		r := New(&fakeSareeRepo{}, &fakeRegionRepo{}, time.Second)

		_, err := r.GetRegion(ctx, "atlantis")
		assert.ErrorIs(t, err, domain.ErrRegionNotFound)
	})
}

func TestWindow(t *testing.T) {
	items := make([]domain.Saree, 5)
	for i := range items {
		items[i].ID = string(rune('a' + i))
	}

	assert.Len(t, window(items, 0, 2), 2)
	assert.Len(t, window(items, 4, 2), 1)
	assert.Empty(t, window(items, 5, 2))
	assert.Empty(t, window(items, 99, 2))
}
