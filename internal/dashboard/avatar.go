package dashboard

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Uploader is satisfied by the object-storage client. Kept as an
// interface so handler tests do not need live credentials.
type Uploader interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

var allowedAvatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type AvatarHandler struct {
	service  *Service
	uploader Uploader
}

func NewAvatarHandler(service *Service, uploader Uploader) *AvatarHandler {
	return &AvatarHandler{service: service, uploader: uploader}
}

// POST /api/profile/avatar
func (h *AvatarHandler) Upload(c *gin.Context) {
	account := middleware.AccountFromContext(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar file is required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAvatarExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported image type"})
		return
	}

	key := fmt.Sprintf("avatars/%s%s", account.ID, ext)
	url, err := h.uploader.Upload(c.Request.Context(), key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "upload failed"})
		return
	}

	if err := h.service.SetAvatar(account.ID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
