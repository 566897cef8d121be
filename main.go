package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	requestControllers "github.com/ozguragaoglu95/pastayapp-api/controllers/request"
	"github.com/ozguragaoglu95/pastayapp-api/localstore"
	"github.com/ozguragaoglu95/pastayapp-api/routes"
	"github.com/ozguragaoglu95/pastayapp-api/store"
)

// draftRetention is how long an untouched wizard draft survives before the
// nightly purge removes it.
const draftRetention = 30 * 24 * time.Hour

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Local-storage analogue (wizard drafts, recently viewed)
	storePath := os.Getenv("LOCALSTORE_PATH")
	if storePath == "" {
		storePath = "pastayapp.db"
	}
	kv, err := localstore.Open(storePath)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	drafts := localstore.NewDrafts(kv)

	// In-memory lifecycle stores
	vendors, templates := store.SeedCatalog()
	catalog := store.NewCatalog(vendors, templates)
	requests := store.NewRequestStore()
	market := store.NewMarketplace(catalog, store.NewUserStore(), store.NewCartStore(), requests, store.NewOrderStore(), commissionRate())

	// Chat feed over websocket
	feed := requestControllers.NewChatFeed()
	requests.OnMessage(feed.Broadcast)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{Market: market, Drafts: drafts, Feed: feed})

	// Purge stale wizard drafts nightly at 4 AM
	go startDailyDraftPurgeAtFixedTime(drafts, draftRetention, 4, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// commissionRate reads the platform cut from the environment, falling back
// to the default.
func commissionRate() float64 {
	raw := os.Getenv("COMMISSION_RATE")
	if raw == "" {
		return store.DefaultCommissionRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 || rate >= 1 {
		log.Printf("⚠️ Ignoring invalid COMMISSION_RATE %q", raw)
		return store.DefaultCommissionRate
	}
	return rate
}

// startDailyDraftPurgeAtFixedTime removes expired wizard drafts daily at a
// fixed hour.
func startDailyDraftPurgeAtFixedTime(drafts *localstore.Drafts, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next draft purge scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		removed, err := drafts.PurgeExpired(time.Now().Add(-retention))
		if err != nil {
			log.Printf("❌ Failed to purge drafts: %v", err)
		} else if removed > 0 {
			log.Printf("🗑️ Removed %d expired drafts", removed)
		}
	}
}
