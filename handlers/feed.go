package handlers

import (
	"errors"
	"net/http"

	"lexifeed/services/feed"
	"lexifeed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler exposes the feed-session state machine over HTTP.
type FeedHandler struct {
	Service feed.FeedService
}

func NewFeedHandler(svc feed.FeedService) *FeedHandler {
	return &FeedHandler{Service: svc}
}

// CreateSessionHandler starts a session and performs the initial compact load.
func (h *FeedHandler) CreateSessionHandler(c *gin.Context) {
	state := h.Service.CreateSession(c.Request.Context())
	c.JSON(http.StatusCreated, state)
}

// GetSessionHandler returns the current items without re-fetching; this is
// the "navigate back to the feed" path.
func (h *FeedHandler) GetSessionHandler(c *gin.Context) {
	state, err := h.Service.GetSession(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CategoryRequest selects a topic filter.
type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

func (h *FeedHandler) SelectCategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid category request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	state, err := h.Service.SelectCategory(c.Request.Context(), c.Param("id"), req.Category)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SearchRequest sets a free-text query; it overrides category filtering.
type SearchRequest struct {
	Query string `json:"query"`
}

func (h *FeedHandler) SearchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	state, err := h.Service.Search(c.Request.Context(), c.Param("id"), req.Query)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpgradeHandler is the "load more articles" action: full density, fresh
// re-fetch at the batch size.
func (h *FeedHandler) UpgradeHandler(c *gin.Context) {
	state, err := h.Service.Upgrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// LoadMoreHandler is the proximity-triggered append. A gated-out trigger
// still answers 200 with the unchanged state, so rapid repeat crossings
// are harmless.
func (h *FeedHandler) LoadMoreHandler(c *gin.Context) {
	state, err := h.Service.LoadMore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *FeedHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, feed.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Feed session not found", c.Param("id"))
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "Invalid feed request", err.Error())
}
