package main

import (
	"fmt"
	"time"

	"github.com/pixelmart/internal/config"
	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/logger"
	"github.com/pixelmart/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加演示用户
	users := []struct {
		Email      string
		Password   string
		FirstName  string
		LastName   string
		Newsletter bool
	}{
		{Email: "alice@example.com", Password: "alice-demo-pass", FirstName: "Alice", LastName: "Nguyen", Newsletter: true},
		{Email: "bob@example.com", Password: "bob-demo-pass", FirstName: "Bob", LastName: "Keller"},
	}

	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			stdLog.Printf("User already exists: %s", u.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", u.Email, err)
			continue
		}
		user := models.User{
			Email:        u.Email,
			PasswordHash: string(hash),
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Newsletter:   u.Newsletter,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", u.Email, err)
		} else {
			stdLog.Printf("Created user: %s", u.Email)
		}
	}

	// 添加游戏商品
	releaseELD := time.Date(2022, 2, 25, 0, 0, 0, 0, time.UTC)
	releaseHZD := time.Date(2017, 2, 28, 0, 0, 0, 0, time.UTC)
	games := []models.Product{
		{
			Name:              "Elden Ring",
			Description:       "Open-world action RPG set in the Lands Between.",
			Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(59.99)),
			InventoryQuantity: 120,
			AverageRating:     4.8,
			Category:          constants.CategoryGame,
			ImageURLs: models.StringArray([]string{
				"https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800",
			}),
			Game: &models.GameExtension{
				Platform:    "PC",
				ReleaseDate: &releaseELD,
			},
		},
		{
			Name:              "Horizon Zero Dawn",
			Description:       "Hunt machine creatures across a lush post-apocalyptic world.",
			Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
			InventoryQuantity: 60,
			AverageRating:     4.6,
			Category:          constants.CategoryGame,
			ImageURLs: models.StringArray([]string{
				"https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800",
			}),
			Game: &models.GameExtension{
				Platform:    "PlayStation",
				ReleaseDate: &releaseHZD,
			},
		},
	}

	gameIDs := map[string]uint{}
	for i := range games {
		prod := &games[i]
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", prod.Name)
			gameIDs[prod.Name] = existing.ID
			continue
		}
		if err := models.DB.Create(prod).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", prod.Name)
		gameIDs[prod.Name] = prod.ID
	}

	// 添加周边商品并关联对应游戏
	merch := []struct {
		Product models.Product
		GameFor string
	}{
		{
			Product: models.Product{
				Name:              "Elden Ring Hoodie",
				Description:       "Heavyweight cotton hoodie with embossed sigil.",
				Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(49.90)),
				InventoryQuantity: 40,
				AverageRating:     4.2,
				Category:          constants.CategoryMerchandise,
				ImageURLs: models.StringArray([]string{
					"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800",
				}),
				Merchandise: &models.MerchandiseExtension{
					Size:  "L",
					Color: "Black",
				},
			},
			GameFor: "Elden Ring",
		},
		{
			Product: models.Product{
				Name:              "Horizon Watcher Figurine",
				Description:       "Hand-painted collectible figurine, 18 cm.",
				Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(29.90)),
				InventoryQuantity: 25,
				AverageRating:     4.5,
				Category:          constants.CategoryMerchandise,
				ImageURLs: models.StringArray([]string{
					"https://images.unsplash.com/photo-1601814933824-fd0b574dd592?w=800",
				}),
				Merchandise: &models.MerchandiseExtension{
					Size:  "One Size",
					Color: "Blue",
				},
			},
			GameFor: "Horizon Zero Dawn",
		},
	}

	for i := range merch {
		prod := &merch[i].Product
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", prod.Name)
			continue
		}
		if err := models.DB.Create(prod).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", prod.Name)

		gameID, ok := gameIDs[merch[i].GameFor]
		if !ok || gameID == 0 {
			stdLog.Printf("Skip affinity link for %s: game %s not found", prod.Name, merch[i].GameFor)
			continue
		}
		link := models.GameMerchandise{
			MerchandiseID: prod.Merchandise.ID,
			GameProductID: gameID,
		}
		if err := models.DB.Create(&link).Error; err != nil {
			stdLog.Printf("Failed to link %s to %s: %v", prod.Name, merch[i].GameFor, err)
		} else {
			stdLog.Printf("Linked merchandise %s to game %s", prod.Name, merch[i].GameFor)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 2 Demo users (bcrypt hashed passwords)")
	fmt.Println("- 2 Game products with platform and release date")
	fmt.Println("- 2 Merchandise products linked to their games")
}
