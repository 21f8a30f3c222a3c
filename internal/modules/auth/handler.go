package auth

import (
	"errors"
	"net/http"

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
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

type credentialsDTO struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email"`
}

// POST /api/auth/register
func (h *Handler) register(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Register(dto.Username, dto.Password, dto.Email)
	if err != nil {
		h.log.Error("register failed", zap.String("username", dto.Username), zap.Error(err))
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

// POST /api/auth/login
func (h *Handler) login(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		h.log.Error("login failed", zap.String("username", dto.Username), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"token": token})
}
