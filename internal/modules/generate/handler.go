package generate

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/quota", h.quota)
}

// POST /api/generate
func (h *Handler) generate(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	identity := clientIdentity(c)
	result, remaining, err := h.svc.Generate(c.Request.Context(), dto.toRequest(), identity)
	switch {
	case err == nil:
		response.OK(c, generateResponse{Result: result, Remaining: remaining})
	case errors.Is(err, ErrLimitExceeded):
		response.TooManyRequests(c, "Daily limit exceeded. Please try again tomorrow.")
	case errors.Is(err, ErrEmptyContent):
		response.BadRequest(c, "No text content found to process.")
	default:
		h.log.Error("generation failed",
			zap.String("identity", identity),
			zap.String("mode", dto.Type),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}

// GET /api/quota
func (h *Handler) quota(c *gin.Context) {
	remaining, err := h.svc.Remaining(c.Request.Context(), clientIdentity(c))
	if err != nil {
		h.log.Error("quota lookup failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"remaining": remaining})
}

// clientIdentity buckets quota by network address. Unidentifiable clients
// share one bucket.
func clientIdentity(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
