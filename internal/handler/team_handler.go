package handler

import (
	"errors"
	"net/http"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	svc *service.TeamService
}

type TeamCreateReq struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LinkedinURL string `json:"linkedin_url"`
	Category    string `json:"category"`
}

type TeamUpdateReq struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	LinkedinURL *string `json:"linkedin_url"`
	Category    *string `json:"category"`
}

func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

func (h *TeamHandler) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !model.ValidTeamCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team category"})
		return
	}
	list, err := h.svc.List(category)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req TeamCreateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and role required"})
		return
	}
	if req.Category != "" && !model.ValidTeamCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team category"})
		return
	}

	tm := &model.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkedinURL: req.LinkedinURL,
		Category:    req.Category,
	}
	if err := h.svc.Create(tm); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tm)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req TeamUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Category != nil && !model.ValidTeamCategory(*req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team category"})
		return
	}

	tm, err := h.svc.Update(id, service.TeamUpdate{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkedinURL: req.LinkedinURL,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tm)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted"})
}
