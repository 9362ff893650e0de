package handlers

import (
	"errors"
	"net/http"

	"lexifeed/services/vocab"
	"lexifeed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VocabHandler serves contextual word lookups, the durable ledger and
// pronunciation audio.
type VocabHandler struct {
	Service vocab.VocabService
}

func NewVocabHandler(svc vocab.VocabService) *VocabHandler {
	return &VocabHandler{Service: svc}
}

// LookupRequest is a tapped word together with its containing sentence.
type LookupRequest struct {
	Word     string `json:"word" binding:"required"`
	Sentence string `json:"sentence" binding:"required"`
}

func (h *VocabHandler) LookupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid lookup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, err := h.Service.Lookup(c.Request.Context(), req.Word, req.Sentence)
	if err != nil {
		if errors.Is(err, vocab.ErrWordTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Word too short to look up"})
			return
		}
		// No blocking error for the reader; the tooltip is simply absent.
		utils.JSONError(c, http.StatusNotFound, "No explanation available", req.Word)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *VocabHandler) LedgerHandler(c *gin.Context) {
	items, err := h.Service.Ledger()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load vocabulary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": items})
}

// AudioRequest asks for pronunciation audio for a word or phrase.
type AudioRequest struct {
	Text string `json:"text" binding:"required"`
}

// AudioResponse carries the base64 payload plus the format the client's
// decoder expects.
type AudioResponse struct {
	Audio      string `json:"audio"`
	SampleRate int    `json:"sampleRate"`
	Channels   int    `json:"channels"`
	Encoding   string `json:"encoding"`
}

func (h *VocabHandler) AudioHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req AudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid audio request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	audio, err := h.Service.GetAudio(c.Request.Context(), req.Text)
	if err != nil {
		// Absence, not an error dialog: the client resets its playing state.
		utils.JSONError(c, http.StatusNotFound, "No audio available", req.Text)
		return
	}
	c.JSON(http.StatusOK, AudioResponse{
		Audio:      audio,
		SampleRate: 24000,
		Channels:   1,
		Encoding:   "pcm16",
	})
}
