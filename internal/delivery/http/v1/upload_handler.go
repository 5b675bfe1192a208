package v1

import (
	"errors"
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left above the file limit for the
// multipart framing.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadUC domain.UploadUsecase
	maxBytes int64
}

func NewUploadHandler(protected *gin.RouterGroup, uc domain.UploadUsecase, maxBytes int64) {
	handler := &UploadHandler{uploadUC: uc, maxBytes: maxBytes}
	protected.POST("/upload", handler.Upload)
}

// Upload godoc
// @Summary      Upload a file
// @Description  Store an image, SVG icon or PDF and return its URL
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File"
// @Success      200   {object}  domain.UploadResponse
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      415   {object}  response.Response
// @Router       /upload [post]
// @Security     BearerAuth
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Error(apperror.PayloadTooLarge("File too large"))
			return
		}
		c.Error(apperror.BadRequest("No file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	res, err := h.uploadUC.Upload(c.Request.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}
