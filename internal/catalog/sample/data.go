// Package sample holds the built-in catalog dataset served whenever the
// persistent store is empty or unreachable. The tables are process-wide
// constants: they are populated once at startup and never mutated, so they
// are safe to share across concurrent request handlers without locking.
package sample

import (
	"time"

	"github.com/lib/pq"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// anchor gives the dataset deterministic creation times so the
// newest-first ordering of fallback responses is stable across requests.
var anchor = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var regions = []domain.Region{
	{
		ID:          "dharmavaram",
		Name:        "Dharmavaram, Andhra Pradesh",
		State:       "Andhra Pradesh",
		Description: "Home of the exquisite Dharmavaram Silk. Broad solid borders, heavy brocaded zari on borders & pallu, muted/dual-shade colors, temple-inspired motifs, wedding-grade durability.",
		Featured:    true,
		SareeCount:  25,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "kanchipuram",
		Name:        "Kanchipuram, Tamil Nadu",
		State:       "Tamil Nadu",
		Description: "Home of the exquisite Kanjivaram / Kanchipuram Silk. Pure mulberry silk, rich texture, vibrant colors, wide contrasting borders with traditional temple motifs and heavy zari.",
		Featured:    true,
		SareeCount:  18,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "varanasi",
		Name:        "Varanasi, Uttar Pradesh",
		State:       "Uttar Pradesh",
		Description: "Home of the exquisite Banarasi Saree. Fine silk, intricate gold/silver brocade or zari work, opulent, often used for bridal wear.",
		Featured:    false,
		SareeCount:  32,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "mysore",
		Name:        "Mysore, Karnataka",
		State:       "Karnataka",
		Description: "Home of the exquisite Mysore Silk. Soft texture, rich luster, minimalistic design with gold zari border.",
		Featured:    false,
		SareeCount:  15,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "gujarat",
		Name:        "Gujarat & Rajasthan",
		State:       "Gujarat",
		Description: "Home of the exquisite Bandhani / Bandhej. Vibrant dotted patterns created by tie-and-dye technique.",
		Featured:    false,
		SareeCount:  22,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "odisha",
		Name:        "Odisha",
		State:       "Odisha",
		Description: "Home of the exquisite Sambalpuri Ikat. Intricate Ikat patterns on warp and weft before weaving.",
		Featured:    false,
		SareeCount:  12,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "west-bengal",
		Name:        "West Bengal",
		State:       "West Bengal",
		Description: "Home of the exquisite Tant / Taant. Lightweight crisp cotton with decorative borders.",
		Featured:    false,
		SareeCount:  8,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
	{
		ID:          "chanderi",
		Name:        "Chanderi, Madhya Pradesh",
		State:       "Madhya Pradesh",
		Description: "Home of the exquisite Chanderi. Sheer texture, lightweight, blend of silk and cotton/zari.",
		Featured:    false,
		SareeCount:  14,
		CreatedAt:   anchor,
		UpdatedAt:   anchor,
	},
}

// sarees is kept sorted by CreatedAt descending to match the store ordering.
var sarees = []domain.Saree{
	{
		ID:                "dharmavaram-1",
		Title:             "Dharmavaram Silk - Traditional Red",
		RegionID:          "dharmavaram",
		Type:              "Dharmavaram Silk",
		Fabric:            "Pure Silk",
		Characteristics:   "Broad solid borders, heavy brocaded zari on borders & pallu, muted/dual-shade colors, temple-inspired motifs, wedding-grade durability.",
		Price:             25000,
		MRP:               35000,
		Stock:             15,
		Images:            pq.StringArray{"/images/sarees/dharmavaram-1.jpg"},
		IsBargainAllowed:  true,
		PolishPrice:       800,
		IsCustomAvailable: true,
		CreatedAt:         anchor,
		UpdatedAt:         anchor,
	},
	{
		ID:                "dharmavaram-2",
		Title:             "Dharmavaram Silk - Royal Blue",
		RegionID:          "dharmavaram",
		Type:              "Dharmavaram Silk",
		Fabric:            "Pure Silk",
		Characteristics:   "Traditional Dharmavaram silk with intricate zari work and temple motifs.",
		Price:             22000,
		MRP:               30000,
		Stock:             10,
		Images:            pq.StringArray{"/images/sarees/dharmavaram-2.jpg"},
		IsBargainAllowed:  false,
		PolishPrice:       600,
		IsCustomAvailable: true,
		CreatedAt:         anchor.Add(-1 * time.Hour),
		UpdatedAt:         anchor.Add(-1 * time.Hour),
	},
	{
		ID:                "kanchipuram-1",
		Title:             "Kanjivaram Silk - Temple Border",
		RegionID:          "kanchipuram",
		Type:              "Kanjivaram Silk",
		Fabric:            "Pure Mulberry Silk",
		Characteristics:   "Pure mulberry silk, rich texture, vibrant colors, wide contrasting borders with traditional temple motifs and heavy zari.",
		Price:             35000,
		MRP:               45000,
		Stock:             8,
		Images:            pq.StringArray{"/images/sarees/kanchipuram-1.jpg"},
		IsBargainAllowed:  true,
		PolishPrice:       1000,
		IsCustomAvailable: true,
		CreatedAt:         anchor.Add(-2 * time.Hour),
		UpdatedAt:         anchor.Add(-2 * time.Hour),
	},
	{
		ID:                "varanasi-1",
		Title:             "Banarasi Silk - Gold Brocade",
		RegionID:          "varanasi",
		Type:              "Banarasi Silk",
		Fabric:            "Fine Silk",
		Characteristics:   "Fine silk, intricate gold/silver brocade or zari work, opulent, often used for bridal wear.",
		Price:             28000,
		MRP:               38000,
		Stock:             12,
		Images:            pq.StringArray{"/images/sarees/varanasi-1.jpg"},
		IsBargainAllowed:  true,
		PolishPrice:       900,
		IsCustomAvailable: false,
		CreatedAt:         anchor.Add(-3 * time.Hour),
		UpdatedAt:         anchor.Add(-3 * time.Hour),
	},
	{
		ID:                "mysore-1",
		Title:             "Mysore Silk - Classic Gold",
		RegionID:          "mysore",
		Type:              "Mysore Silk",
		Fabric:            "Pure Silk",
		Characteristics:   "Soft texture, rich luster, minimalistic design with gold zari border.",
		Price:             18000,
		MRP:               25000,
		Stock:             20,
		Images:            pq.StringArray{"/images/sarees/mysore-1.jpg"},
		IsBargainAllowed:  false,
		PolishPrice:       500,
		IsCustomAvailable: true,
		CreatedAt:         anchor.Add(-4 * time.Hour),
		UpdatedAt:         anchor.Add(-4 * time.Hour),
	},
}

func init() {
	// Attach region summaries the same way the store includes them.
	for i := range sarees {
		if r := RegionByID(sarees[i].RegionID); r != nil {
			sarees[i].Region = &domain.Region{ID: r.ID, Name: r.Name, State: r.State}
		}
	}
}

// Regions returns the sample region table, featured entries first
func Regions() []domain.Region {
	return regions
}

// Sarees returns the sample saree table, newest first
func Sarees() []domain.Saree {
	return sarees
}

// RegionByID looks up a sample region
func RegionByID(id string) *domain.Region {
	for i := range regions {
		if regions[i].ID == id {
			return &regions[i]
		}
	}
	return nil
}

// SareeByID looks up a sample saree
func SareeByID(id string) *domain.Saree {
	for i := range sarees {
		if sarees[i].ID == id {
			return &sarees[i]
		}
	}
	return nil
}

// SareesByRegion returns the sample sarees belonging to a region
func SareesByRegion(regionID string) []domain.Saree {
	var out []domain.Saree
	for _, s := range sarees {
		if s.RegionID == regionID {
			out = append(out, s)
		}
	}
	return out
}
