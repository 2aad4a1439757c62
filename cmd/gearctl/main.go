package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Mnemoth42/RPG/internal/catalog"
	"github.com/Mnemoth42/RPG/internal/config"
	"github.com/Mnemoth42/RPG/internal/domain/equipment"
	"github.com/Mnemoth42/RPG/internal/domain/stats"
	itemsrepo "github.com/Mnemoth42/RPG/internal/repositories/items"
	"github.com/Mnemoth42/RPG/internal/services/loadout"
	"github.com/Mnemoth42/RPG/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	var repo itemsrepo.Repository
	if redisURL := cfg.Redis.URL; redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory catalog")
		} else {
			redisClient = redis.NewClient(opts)

			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory catalog")
				redisClient = nil
			} else {
				repo = itemsrepo.NewRedisRepository(&itemsrepo.RedisRepoConfig{
					Client: redisClient,
				})
			}
		}
	}
	if repo == nil {
		repo = itemsrepo.NewInMemoryRepository()
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis connection: %v", closeErr)
			}
		}()
	}

	// Seed the catalog: configured YAML file, or the built-in defaults
	loader := catalog.NewLoader(uuid.NewGoogleUUIDGenerator())
	if cfg.Catalog.Path != "" {
		log.Printf("Loading catalog from: %s", cfg.Catalog.Path)
		if seedErr := loader.SeedFile(ctx, repo, cfg.Catalog.Path); seedErr != nil {
			log.Fatalf("Failed to seed catalog: %v", seedErr)
		}
	} else {
		if seedErr := catalog.SeedDefault(ctx, repo); seedErr != nil {
			log.Fatalf("Failed to seed default catalog: %v", seedErr)
		}
	}

	cache := itemsrepo.NewCache(repo)

	switch command(os.Args) {
	case "list":
		if err := listItems(ctx, repo); err != nil {
			log.Fatalf("Failed to list items: %v", err)
		}
	case "stats":
		if err := showStats(ctx, cache, os.Args[2:]); err != nil {
			log.Fatalf("Failed to compute stats: %v", err)
		}
	default:
		fmt.Println("Usage: gearctl <list | stats [item-key ...]>")
		os.Exit(1)
	}
}

func command(args []string) string {
	if len(args) < 2 {
		return ""
	}
	return args[1]
}

func listItems(ctx context.Context, repo itemsrepo.Repository) error {
	all, err := repo.List(ctx)
	if err != nil {
		return err
	}

	for _, item := range all {
		fmt.Printf("%-16s %-10s %-10s %s\n",
			item.GetKey(), item.GetEquipmentType(), item.GetLocation(), item.GetName())
		if w, ok := item.(*equipment.Weapon); ok {
			fmt.Printf("%16s damage=%.1f bonus=%.0f%% range=%.1f projectile=%v\n",
				"", w.Damage, w.PercentageBonus, w.Range, w.HasProjectile())
		}
	}

	return nil
}

func showStats(ctx context.Context, cache *itemsrepo.Cache, keys []string) error {
	svc := loadout.NewService(&loadout.ServiceConfig{Items: cache})

	out, err := svc.EffectiveStats(ctx, &loadout.EffectiveStatsInput{
		ItemKeys: keys,
		Base: map[stats.Stat]float64{
			stats.StatHealth:  100,
			stats.StatDamage:  10,
			stats.StatDefence: 5,
		},
	})
	if err != nil {
		return err
	}

	for _, stat := range stats.All() {
		fmt.Printf("%-24s %.2f\n", stat, out.Stats[stat])
	}

	return nil
}
