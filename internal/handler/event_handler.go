package handler

import (
	"errors"
	"net/http"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

type EventCreateReq struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Link         string `json:"link"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	IsFeatured   bool   `json:"is_featured"`
	TeamsLink    string `json:"teams_link"`
	RecordingURL string `json:"recording_url"`
}

type EventUpdateReq struct {
	Title        *string `json:"title"`
	Date         *string `json:"date"`
	Location     *string `json:"location"`
	Link         *string `json:"link"`
	Type         *string `json:"type"`
	Category     *string `json:"category"`
	IsFeatured   *bool   `json:"is_featured"`
	TeamsLink    *string `json:"teams_link"`
	RecordingURL *string `json:"recording_url"`
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Date == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, date, and location are required"})
		return
	}

	ev := &model.Event{
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Link:         req.Link,
		Type:         req.Type,
		Category:     req.Category,
		IsFeatured:   req.IsFeatured,
		TeamsLink:    req.TeamsLink,
		RecordingURL: req.RecordingURL,
	}
	if err := h.svc.Create(ev); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req EventUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ev, err := h.svc.Update(id, service.EventUpdate{
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Link:         req.Link,
		Type:         req.Type,
		Category:     req.Category,
		IsFeatured:   req.IsFeatured,
		TeamsLink:    req.TeamsLink,
		RecordingURL: req.RecordingURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
