package routes

import (
	"net/http"
	"time"

	"lexifeed/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the feed-session endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.POST("/sessions", hb.CreateFeedSessionHandler)
		api.GET("/sessions/:id", hb.GetFeedSessionHandler)
		api.POST("/sessions/:id/category", hb.SelectCategoryHandler)
		api.POST("/sessions/:id/search", hb.SearchFeedHandler)
		api.POST("/sessions/:id/upgrade", hb.UpgradeFeedHandler)
		api.POST("/sessions/:id/more", hb.LoadMoreHandler)
	}
}

// RegisterReadingRoutes registers article and quote endpoints.
func RegisterReadingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/articles", hb.GetArticleHandler)
	r.GET("/api/quote", hb.GetDailyQuoteHandler)
}

// RegisterVocabRoutes registers word lookup, ledger and audio endpoints.
func RegisterVocabRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vocab")
	{
		api.POST("/lookup", hb.LookupWordHandler)
		api.GET("", hb.GetLedgerHandler)
	}
	r.POST("/api/audio", hb.GetWordAudioHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lexifeed"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFeedRoutes(r, hb)
	RegisterReadingRoutes(r, hb)
	RegisterVocabRoutes(r, hb)
	RegisterHealthRoute(r)
}
