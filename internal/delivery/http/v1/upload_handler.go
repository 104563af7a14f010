package v1

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
	maxSize   int64
}

func NewUploadHandler(protected *gin.RouterGroup, cfg *config.Config) {
	handler := &UploadHandler{
		uploadDir: cfg.UploadDir,
		maxSize:   cfg.MaxUploadSize,
	}

	protected.POST("/upload-resume", handler.UploadResume)
}

// UploadResume godoc
// @Summary      Upload Resume
// @Description  Accepts a PDF up to the configured size limit and returns its public URL
// @Tags         admin-content
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Resume PDF"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /admin/upload-resume [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Resume upload")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		c.Error(apperror.Internal(err))
		return
	}

	result := upload.ValidateResume(fileHeader.Filename, fileHeader.Size, h.maxSize, head[:n])
	if !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Server-generated name; the original filename never touches the disk.
	name := fmt.Sprintf("resume_%s%s", uuid.NewString(), result.Extension)
	dstPath := filepath.Join(h.uploadDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{
		"url": "/static/uploads/" + name,
	})
}
