package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cruise_insights/backend/internal/ai"
	"github.com/cruise_insights/backend/internal/assistant"
	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/models"
	"github.com/cruise_insights/backend/internal/query"
	"github.com/cruise_insights/backend/internal/recommend"
)

type Handler struct {
	Data   *dataset.Dataset
	Engine *query.Engine
	Router *assistant.Router
	// Enhancer is optional; nil means canned responses go out as-is.
	Enhancer  *ai.Enhancer
	Validator *validator.Validate
	Logger    zerolog.Logger
}

type ChatRequest struct {
	Message string              `json:"message" validate:"required"`
	Context models.QueryContext `json:"context"`
}

type ChatResponse struct {
	Message  models.ChatMessage  `json:"message"`
	Context  models.QueryContext `json:"context"`
	Enhanced bool                `json:"enhanced"`
}

type AudiencePreviewRequest struct {
	Criteria     models.AudienceCriteria `json:"criteria"`
	CampaignType models.CampaignType     `json:"campaign_type"`
}

// @Summary Service health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"customers": len(h.Data.Customers),
		"bookings":  len(h.Data.Bookings),
		"campaigns": len(h.Data.Campaigns),
	})
}

// @Summary Chat with the analytics assistant
// @Description Routes a natural language question to the query engine and returns a narrated answer with optional visualization and actions
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "user message plus prior context"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]any
// @Router /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := h.Validator.Struct(req); err != nil || req.Message == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "message is required", nil)
		return
	}

	msg, next := h.Router.Process(req.Message, req.Context)

	enhanced := false
	if h.Enhancer != nil {
		if text, err := h.Enhancer.Enhance(c.Request.Context(), req.Message, msg, req.Context); err == nil {
			msg.Content = text
			enhanced = true
		} else {
			h.Logger.Warn().Err(err).Msg("enhancement failed, keeping canned text")
		}
	}

	c.JSON(http.StatusOK, ChatResponse{Message: msg, Context: next, Enhanced: enhanced})
}

// @Summary Recent proactive insights
// @Tags insights
// @Produce json
// @Param limit query int false "max entries, newest first (default 4, 0 = all)"
// @Success 200 {object} map[string]any
// @Router /api/insights [get]
func (h *Handler) InsightsList(c *gin.Context) {
	limit := 4
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"insights": h.Data.RecentInsights(limit)})
}

// @Summary Detailed walkthrough for one insight
// @Tags insights
// @Produce json
// @Param id path string true "insight id"
// @Success 200 {object} models.ChatMessage
// @Failure 404 {object} map[string]any
// @Router /api/insights/{id}/response [post]
func (h *Handler) InsightResponse(c *gin.Context) {
	id := c.Param("id")
	insight, ok := h.Data.InsightByID(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Insight not found", nil)
		return
	}
	c.JSON(http.StatusOK, h.Router.InsightResponse(insight))
}

// @Summary Preview an audience with ROI projection and campaign recommendation
// @Tags audience
// @Accept json
// @Produce json
// @Param request body AudiencePreviewRequest true "filter criteria"
// @Success 200 {object} models.AudiencePreview
// @Failure 400 {object} map[string]any
// @Router /api/audience/preview [post]
func (h *Handler) AudiencePreview(c *gin.Context) {
	var req AudiencePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	preview := h.Engine.BuildAudience(req.Criteria)
	audience := h.Engine.FilterCustomers(req.Criteria)
	rec := recommend.Recommend(audience)

	ct := req.CampaignType
	if ct == "" {
		ct = rec.CampaignType
	}
	roi := query.ProjectROI(audience, ct)

	preview.ROIProjection = &roi
	preview.Recommendation = &rec
	c.JSON(http.StatusOK, preview)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
