package handler

import (
	"errors"
	"net/http"

	"AIGov_Community/internal/middleware"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.ProductService
}

type ProductCreateReq struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	DownloadLink string `json:"download_link"`
}

type ReviewReq struct {
	Stars      int    `json:"stars"`
	ReviewText string `json:"review_text"`
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, reviews, avg, count, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            product.ID,
		"name":          product.Name,
		"company":       product.Company,
		"description":   product.Description,
		"download_link": product.DownloadLink,
		"created_at":    product.CreatedAt,
		"avg_rating":    avg,
		"review_count":  count,
		"reviews":       reviews,
	})
}

func (h *ProductHandler) Reviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reviews, err := h.svc.Reviews(id)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductCreateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	product, err := h.svc.Create(req.Name, req.Company, req.Description, req.DownloadLink)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// SubmitReview upserts the caller's review; repeat submissions replace
// the earlier one instead of adding a row.
func (h *ProductHandler) SubmitReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Stars < 1 || req.Stars > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stars must be between 1 and 5"})
		return
	}

	updated, err := h.svc.SubmitReview(id, middleware.UserID(c), middleware.Role(c), req.Stars, req.ReviewText)
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only paid members, executives, and product companies can submit reviews"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case err != nil:
		serverError(c, err)
	case updated:
		c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Review submitted"})
	}
}
