package handler

import (
	"errors"
	"net/http"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves /api/admin/users. User mutation endpoints are
// shared with UserHandler; this adds the admin-side create.
type AdminHandler struct {
	svc *service.UserService
}

type AdminCreateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func NewAdminHandler(svc *service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req AdminCreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password required"})
		return
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	user, err := h.svc.CreateUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user})
}
