package handler

import (
	"errors"
	"fmt"
	"net/http"

	"AIGov_Community/internal/middleware"
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves both the self-service profile routes and the
// admin-gated user management routes mounted under /api/users.
type UserHandler struct {
	svc         *service.UserService
	questionSvc *service.QuestionService
}

type ProfileReq struct {
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	LinkedinURL  *string `json:"linkedin_url"`
	TwitterURL   *string `json:"twitter_url"`
	WebsiteURL   *string `json:"website_url"`
	ProfileImage *string `json:"profile_image"`
}

func NewUserHandler(svc *service.UserService, questionSvc *service.QuestionService) *UserHandler {
	return &UserHandler{svc: svc, questionSvc: questionSvc}
}

func (h *UserHandler) MyQuestions(c *gin.Context) {
	rows, err := h.questionSvc.ListByUser(middleware.UserID(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) MyAnswers(c *gin.Context) {
	rows, err := h.questionSvc.AnswersByUser(middleware.UserID(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) MyProfile(c *gin.Context) {
	user, err := h.svc.Get(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	var req ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.svc.UpdateProfile(middleware.UserID(c), service.ProfileUpdate{
		Name:         req.Name,
		Bio:          req.Bio,
		LinkedinURL:  req.LinkedinURL,
		TwitterURL:   req.TwitterURL,
		WebsiteURL:   req.WebsiteURL,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if err := h.svc.ChangeRole(middleware.UserID(c), id, req.Role); err != nil {
		h.writeUserMutationError(c, err, "Cannot change your own role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Role updated to %s", req.Role)})
}

func (h *UserHandler) SetApprovalStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidApprovalStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval status"})
		return
	}

	if err := h.svc.SetApprovalStatus(id, req.Status); err != nil {
		h.writeUserMutationError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Approval status updated to %s", req.Status)})
}

func (h *UserHandler) SetBan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		IsBanned bool `json:"is_banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.svc.SetBan(middleware.UserID(c), id, req.IsBanned); err != nil {
		h.writeUserMutationError(c, err, "Cannot ban yourself")
		return
	}
	verb := "unbanned"
	if req.IsBanned {
		verb = "banned"
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s", verb)})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.UserID(c), id); err != nil {
		h.writeUserMutationError(c, err, "Cannot delete yourself")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *UserHandler) writeUserMutationError(c *gin.Context, err error, selfMsg string) {
	switch {
	case errors.Is(err, service.ErrSelfAction):
		if selfMsg == "" {
			selfMsg = "Cannot perform this action on your own account"
		}
		c.JSON(http.StatusForbidden, gin.H{"error": selfMsg})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		serverError(c, err)
	}
}
