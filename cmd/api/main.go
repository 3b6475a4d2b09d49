package main

import (
	"context"
	"log"
	"os"
	"time"

	"flavorflow/internal/cart"
	"flavorflow/internal/catalog"
	"flavorflow/internal/draft"
	"flavorflow/internal/llm"
	"flavorflow/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx := context.Background()

	// ───────────────────────── STORAGE ─────────────────────────
	var store storage.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := storage.NewPostgresStore(ctx, dsn)
		if err != nil {
			log.Fatal("❌ Postgres init failed:", err)
		}
		defer pg.Close()
		store = pg
	} else {
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		store = storage.NewFileStore(dir)
		log.Printf("Using file store at %s", dir)
	}

	// ───────────────────────── CAPABILITIES ─────────────────────────
	extractor := llm.NewGeminiExtractor()
	if !extractor.Configured() {
		log.Println("⚠️ GEMINI_API_KEY not set; AI drafting disabled until configured")
	}
	generator := llm.NewGeminiImageClient()

	var uploader draft.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2
	}

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(ctx, store)
	cartService := cart.NewService()
	workflow := draft.NewWorkflow(extractor, generator, uploader, catalogService)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService, catalogService)
	draftHandler := draft.NewHandler(workflow)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	menu := r.Group("/menu")
	{
		menu.GET("", catalogHandler.List)
		menu.GET("/:id/share", catalogHandler.Share)
		menu.DELETE("/:id", catalogHandler.Delete)
	}

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartHandler.Get)
		cartGroup.POST("/items", cartHandler.Add)
		cartGroup.PATCH("/items/:id", cartHandler.UpdateQuantity)
	}

	// ───────────────────────── MERCHANT STUDIO ─────────────────────────
	draftGroup := r.Group("/draft")
	{
		draftGroup.POST("", draftHandler.Submit)
		draftGroup.GET("", draftHandler.Get)
		draftGroup.DELETE("", draftHandler.Discard)
		draftGroup.POST("/image/ai", draftHandler.AIImage)
		draftGroup.POST("/image/fallback", draftHandler.FallbackImage)
		draftGroup.POST("/image/upload", draftHandler.UploadImage)
		draftGroup.POST("/publish", draftHandler.Publish)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
