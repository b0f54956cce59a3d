package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/modacart/internal/pkg/cloudinary"
	"github.com/xyz-asif/modacart/internal/pkg/response"
)

type Handler struct {
	uploads *cloudinary.Service
}

func NewHandler(uploads *cloudinary.Service) *Handler {
	return &Handler{uploads: uploads}
}

// Upload godoc
// @Summary Upload an image
// @Description Upload a product photo or profile picture and get back its hosted URL
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (max 10MB)"
// @Success 201 {object} response.APIResponse{data=cloudinary.UploadResult}
// @Failure 400 {object} response.APIResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.uploads == nil {
		response.InternalServerError(c, "Image uploads are not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Please provide a file to upload", "FILE_REQUIRED")
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file", "INVALID_FILE")
		return
	}
	defer file.Close()

	result, err := h.uploads.UploadImage(c.Request.Context(), file)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image")
		return
	}

	response.Created(c, result, "Image uploaded")
}
