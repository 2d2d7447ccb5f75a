package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type PlaybookHandler struct {
	svc       *service.PlaybookService
	uploadDir string
}

func NewPlaybookHandler(svc *service.PlaybookService, uploadDir string) *PlaybookHandler {
	return &PlaybookHandler{svc: svc, uploadDir: uploadDir}
}

func (h *PlaybookHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Download serves the stored file as an attachment and bumps the count.
func (h *PlaybookHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pb, diskPath, err := h.svc.Download(id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Playbook not found"})
	case errors.Is(err, service.ErrFileMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found on server"})
	case err != nil:
		serverError(c, err)
	default:
		name := pb.FileName
		if name == "" {
			name = filepath.Base(diskPath)
		}
		c.FileAttachment(diskPath, name)
	}
}

// Create stores the uploaded file under uploads/playbooks.
func (h *PlaybookHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	framework := c.PostForm("framework")
	file, ferr := c.FormFile("file")
	if title == "" || framework == "" || ferr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, framework, and file are required"})
		return
	}
	if !pkg.AllowedExt(file.Filename, pkg.PlaybookExts) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}
	if file.Size > pkg.PlaybookMaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 50MB limit"})
		return
	}

	dir := filepath.Join(h.uploadDir, "playbooks")
	if err := pkg.EnsureDir(dir); err != nil {
		serverError(c, err)
		return
	}
	name := pkg.UploadFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		serverError(c, err)
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "Guide"
	}
	pb := &model.Playbook{
		Title:     title,
		Brief:     c.PostForm("brief"),
		Framework: framework,
		Category:  category,
		FilePath:  "/uploads/playbooks/" + name,
		FileName:  file.Filename,
		FileType:  strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."),
	}
	if err := h.svc.Create(pb); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pb)
}

func (h *PlaybookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playbook not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playbook deleted"})
}
