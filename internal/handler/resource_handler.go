package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"AIGov_Community/internal/middleware"
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	svc       *service.ResourceService
	uploadDir string
}

func NewResourceHandler(svc *service.ResourceService, uploadDir string) *ResourceHandler {
	return &ResourceHandler{svc: svc, uploadDir: uploadDir}
}

func (h *ResourceHandler) List(c *gin.Context) {
	list, err := h.svc.List(middleware.Role(c), c.Query("type"), c.Query("category"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.svc.Get(middleware.Role(c), id)
	if err != nil {
		h.writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ResourceHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Download(middleware.Role(c), id); err != nil {
		h.writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// saveUpload validates and stores one multipart file, returning the
// relative path recorded on the row.
func (h *ResourceHandler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, bool) {
	if !pkg.AllowedExt(file.Filename, pkg.ResourceExts) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF, DOCX, XLSX allowed"})
		return "", false
	}
	if file.Size > pkg.ResourceMaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB limit"})
		return "", false
	}

	name := pkg.UploadFilename(file.Filename)
	if err := pkg.EnsureDir(h.uploadDir); err != nil {
		serverError(c, err)
		return "", false
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		serverError(c, err)
		return "", false
	}
	return "/uploads/" + name, true
}

// Create accepts a multipart submission. The caller's role decides the
// resolved type and initial status.
func (h *ResourceHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description required"})
		return
	}

	resType := c.PostForm("type")
	if resType != "" && !model.ValidResourceType(resType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type"})
		return
	}
	access := c.PostForm("access")
	if access != "" && access != model.AccessPublic && access != model.AccessMembersOnly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid access tier"})
		return
	}

	filePath := ""
	if file, err := c.FormFile("file"); err == nil {
		var ok bool
		if filePath, ok = h.saveUpload(c, file); !ok {
			return
		}
	}

	res, err := h.svc.Submit(middleware.UserID(c), middleware.Role(c), service.ResourceInput{
		Title:        title,
		Description:  description,
		Type:         resType,
		Access:       access,
		ExternalLink: c.PostForm("external_link"),
		CategoryKey:  c.PostForm("category"),
		FilePath:     filePath,
	})
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your role cannot submit resources"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resType := c.PostForm("type")
	if resType != "" && !model.ValidResourceType(resType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type"})
		return
	}

	filePath := ""
	if file, err := c.FormFile("file"); err == nil {
		var saved bool
		if filePath, saved = h.saveUpload(c, file); !saved {
			return
		}
	}

	res, err := h.svc.Update(id, service.ResourceInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Type:         resType,
		Access:       c.PostForm("access"),
		ExternalLink: c.PostForm("external_link"),
		CategoryKey:  c.PostForm("category"),
		FilePath:     filePath,
	})
	if err != nil {
		h.writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ResourceHandler) Approve(c *gin.Context) {
	h.setStatus(c, model.ResourceStatusApproved)
}

func (h *ResourceHandler) Reject(c *gin.Context) {
	h.setStatus(c, model.ResourceStatusRejected)
}

func (h *ResourceHandler) setStatus(c *gin.Context, status string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.SetStatus(id, status); err != nil {
		h.writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource " + status})
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		h.writeResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (h *ResourceHandler) writeResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Member access required"})
	default:
		serverError(c, err)
	}
}
