package handlers

import (
	"net/http"

	"lexifeed/services/reading"
	"lexifeed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReadingHandler serves full articles and the daily quote.
type ReadingHandler struct {
	Service reading.ReadingService
}

func NewReadingHandler(svc reading.ReadingService) *ReadingHandler {
	return &ReadingHandler{Service: svc}
}

// ArticleRequest identifies the preview the client wants rendered in full.
type ArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	Source   string `json:"source"`
}

// GetArticleHandler generates the bilingual rendition. A provider failure
// is terminal for this request: the client shows a retry-eligible failure
// state and may POST again.
func (h *ReadingHandler) GetArticleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid article request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	content, err := h.Service.GetArticle(c.Request.Context(), req.Title, req.Category, req.Source)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Article failed to load", "Please retry.")
		return
	}
	c.JSON(http.StatusOK, content)
}

// GetDailyQuoteHandler returns the quote of the day, or absence; the feed
// header simply omits the quote card when none is available.
func (h *ReadingHandler) GetDailyQuoteHandler(c *gin.Context) {
	quote, err := h.Service.GetDailyQuote(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No quote available today", "")
		return
	}
	c.JSON(http.StatusOK, quote)
}
