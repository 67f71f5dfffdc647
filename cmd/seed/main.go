package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vastrika/storefront/internal/catalog/domain"
	catalogRepository "github.com/vastrika/storefront/internal/catalog/repository"
	userDomain "github.com/vastrika/storefront/internal/user/domain"
	userRepository "github.com/vastrika/storefront/internal/user/repository"
	"github.com/vastrika/storefront/pkg/auth"
	"github.com/vastrika/storefront/pkg/database"
	"github.com/vastrika/storefront/pkg/logger"
)

type regionSeed struct {
	Name            string
	SareeType       string
	Characteristics string
	Featured        bool
}

var regionsData = []regionSeed{
	{
		Name:            "Varanasi, Uttar Pradesh",
		SareeType:       "Banarasi Saree",
		Characteristics: "Fine silk, intricate gold/silver brocade or zari work, opulent, often used for bridal wear.",
	},
	{
		Name:            "Kanchipuram, Tamil Nadu",
		SareeType:       "Kanjivaram / Kanchipuram Silk",
		Characteristics: "Pure mulberry silk, rich texture, vibrant colors, wide contrasting borders with traditional temple motifs and heavy zari.",
	},
	{
		Name:            "Maharashtra",
		SareeType:       "Paithani",
		Characteristics: "Pure silk, opulent pallu with peacock and nature-inspired motifs.",
	},
	{
		Name:            "Gujarat & Rajasthan",
		SareeType:       "Bandhani / Bandhej",
		Characteristics: "Vibrant dotted patterns created by tie-and-dye technique.",
	},
	{
		Name:            "Odisha",
		SareeType:       "Sambalpuri Ikat",
		Characteristics: "Intricate Ikat patterns on warp and weft before weaving.",
	},
	{
		Name:            "West Bengal",
		SareeType:       "Tant / Taant",
		Characteristics: "Lightweight crisp cotton with decorative borders.",
	},
	{
		Name:            "Madhya Pradesh",
		SareeType:       "Chanderi",
		Characteristics: "Sheer texture, lightweight, blend of silk and cotton/zari.",
	},
	{
		Name:            "Karnataka",
		SareeType:       "Mysore Silk",
		Characteristics: "Soft texture, rich luster, minimalistic design with gold zari border.",
	},
	{
		Name:            "Kerala",
		SareeType:       "Kasavu / Set Mundu",
		Characteristics: "Off-white or cream cotton/silk with golden border.",
	},
	{
		Name:            "Gujarat",
		SareeType:       "Patola",
		Characteristics: "Complex double-Ikat weave with vibrant geometric designs.",
	},
	{
		Name:            "Assam",
		SareeType:       "Muga Silk",
		Characteristics: "Natural golden sheen, high durability, heirloom quality.",
	},
	{
		Name:            "Telangana",
		SareeType:       "Pochampally Ikat",
		Characteristics: "Silk/cotton sarees with geometric Ikat patterns.",
	},
	{
		Name:            "Lucknow, Uttar Pradesh",
		SareeType:       "Chikankari",
		Characteristics: "Delicate white thread hand embroidery on fine cotton or georgette.",
	},
	{
		Name:            "Dharmavaram, Andhra Pradesh",
		SareeType:       "Dharmavaram Silk",
		Characteristics: "Broad solid borders, heavy brocaded zari on borders & pallu, muted/dual-shade colors, temple-inspired motifs, wedding-grade durability.",
		Featured:        true,
	},
}

func main() {
	logger.Init("storefront-seed", true)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefront"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sareeRepo := catalogRepository.NewGormCatalogRepository(db)
	regionRepo := catalogRepository.NewGormRegionRepository(db)
	userRepo := userRepository.NewGormUserRepository(db)

	if err := sareeRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run catalog migrations")
	}
	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}

	for i, seed := range regionsData {
		id := slugify(seed.Name)
		state := ""
		if _, after, found := strings.Cut(seed.Name, ","); found {
			state = strings.TrimSpace(after)
		}

		region := &domain.Region{
			ID:          id,
			Name:        seed.Name,
			State:       state,
			Description: fmt.Sprintf("Home of the exquisite %s. %s", seed.SareeType, seed.Characteristics),
			Featured:    seed.Featured,
		}
		if err := regionRepo.Upsert(region); err != nil {
			logger.Logger.Fatal().Err(err).Str("region", id).Msg("Failed to seed region")
		}

		// One showcase saree per region. Prices are deterministic so
		// repeated runs converge.
		saree := &domain.Saree{
			ID:                fmt.Sprintf("%s-sample", id),
			Title:             fmt.Sprintf("%s - Classic", seed.SareeType),
			RegionID:          id,
			Type:              seed.SareeType,
			Fabric:            "Silk",
			Characteristics:   seed.Characteristics,
			Price:             int64(5000 + (i*2750)%15000),
			MRP:               int64(10000 + (i*3900)%20000),
			Stock:             10 + (i*7)%50,
			IsBargainAllowed:  i%3 == 0,
			IsCustomAvailable: i%5 != 1,
		}
		if i%2 == 0 {
			saree.PolishPrice = 500
		}
		if err := sareeRepo.Upsert(saree); err != nil {
			logger.Logger.Fatal().Err(err).Str("saree", saree.ID).Msg("Failed to seed saree")
		}

		logger.Logger.Info().Str("region", seed.Name).Msg("Seeded region")
	}

	seedUser(userRepo, "admin", "admin@vastrika.example", "Admin User", userDomain.RoleAdmin)
	seedUser(userRepo, "customer", "customer@example.com", "Sample Customer", userDomain.RoleUser)

	logger.Logger.Info().Msg("Seed completed")
}

func seedUser(repo *userRepository.GormUserRepository, username, email, fullName, role string) {
	ctx := context.Background()
	if existing, _ := repo.FindByEmail(ctx, email); existing != nil {
		return
	}

	password := getEnv("SEED_PASSWORD", "changeme123")
	hashed, err := auth.HashPassword(password)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	user := &userDomain.User{
		Username: username,
		Email:    email,
		Password: hashed,
		FullName: fullName,
		Role:     role,
		IsActive: true,
	}
	if err := repo.Create(ctx, user); err != nil {
		logger.Logger.Fatal().Err(err).Str("email", email).Msg("Failed to seed user")
	}
	logger.Logger.Info().Str("email", email).Msg("Seeded user")
}

// slugify turns a region name into a stable id, keeping only the town part
// before any comma.
func slugify(name string) string {
	town, _, _ := strings.Cut(name, ",")
	town = strings.ToLower(strings.TrimSpace(town))
	town = strings.ReplaceAll(town, " & ", " ")
	return strings.ReplaceAll(town, " ", "-")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
