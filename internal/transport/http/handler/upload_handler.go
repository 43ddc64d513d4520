package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/transport/http/response"
)

type UploadHandler struct {
	dir string
	log *zap.Logger
}

func NewUploadHandler(dir string, log *zap.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, log: log}
}

// Upload POST /uploads，multipart 字段 files；文件名加 uuid 前缀防覆盖
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Err(c, h.log, apperr.InvalidInput("multipart form required"))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.Err(c, h.log, apperr.InvalidInput("no files provided"))
		return
	}
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		response.Err(c, h.log, apperr.Internal("create upload dir", err))
		return
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		name := uuid.NewString() + "_" + sanitizeFilename(f.Filename)
		dst := filepath.Join(h.dir, name)
		if err := c.SaveUploadedFile(f, dst); err != nil {
			response.Err(c, h.log, apperr.Internal("save upload", err))
			return
		}
		paths = append(paths, "/static/"+name)
	}
	c.JSON(http.StatusCreated, gin.H{"paths": paths})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
