package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler the router needs.
type HandlerBundle struct {
	// Feed session endpoints.
	CreateFeedSessionHandler gin.HandlerFunc
	GetFeedSessionHandler    gin.HandlerFunc
	SelectCategoryHandler    gin.HandlerFunc
	SearchFeedHandler        gin.HandlerFunc
	UpgradeFeedHandler       gin.HandlerFunc
	LoadMoreHandler          gin.HandlerFunc

	// Reading endpoints.
	GetArticleHandler    gin.HandlerFunc
	GetDailyQuoteHandler gin.HandlerFunc

	// Vocabulary endpoints.
	LookupWordHandler   gin.HandlerFunc
	GetLedgerHandler    gin.HandlerFunc
	GetWordAudioHandler gin.HandlerFunc
}
