package history

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.list)
	rg.DELETE("/history/:id", h.delete)
}

// GET /api/history
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

// DELETE /api/history/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
