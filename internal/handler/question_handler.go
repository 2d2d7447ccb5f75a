package handler

import (
	"errors"
	"net/http"
	"strings"

	"AIGov_Community/internal/middleware"
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	svc *service.QuestionService
}

type AskReq struct {
	Title    string `json:"title"`
	Details  string `json:"details"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type AnswerReq struct {
	Content string `json:"content"`
}

func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

func (h *QuestionHandler) List(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *QuestionHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query too short"})
		return
	}
	rows, err := h.svc.Search(term)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, answers, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          row.ID,
		"title":       row.Title,
		"details":     row.Details,
		"status":      row.Status,
		"user_id":     row.UserID,
		"category_id": row.CategoryID,
		"created_at":  row.CreatedAt,
		"author_name": row.AuthorName,
		"author_role": row.AuthorRole,
		"answers":     answers,
	})
}

// Ask accepts both authenticated and guest submissions; guests identify
// themselves by email.
func (h *QuestionHandler) Ask(c *gin.Context) {
	var req AskReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	q, err := h.svc.Ask(middleware.UserID(c), service.AskInput{
		Title:    req.Title,
		Details:  req.Details,
		Email:    req.Email,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email required for guests"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": q.ID, "message": "Question posted"})
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(middleware.UserID(c), middleware.Role(c), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case err != nil:
		serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
	}
}

func (h *QuestionHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidQuestionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := h.svc.SetStatus(id, req.Status); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *QuestionHandler) Answers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	answers, err := h.svc.Answers(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	answer, err := h.svc.AddAnswer(id, middleware.UserID(c), middleware.Role(c), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, answer)
}
