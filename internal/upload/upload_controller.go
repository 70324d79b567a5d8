package upload

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/gin-gonic/gin"
)

// multipart framing allowance on top of the file size limit
const formOverhead = 1 << 20

type UploadController struct {
	store   *LocalStore
	maxSize int64
	config  *config.Config
	log     *logger.Logger
}

func NewUploadController(store *LocalStore, cfg *config.Config, log *logger.Logger) *UploadController {
	return &UploadController{
		store:   store,
		maxSize: int64(cfg.App.MaxUploadSizeMB) << 20,
		config:  cfg,
		log:     log,
	}
}

// UploadFile godoc
// @Summary Upload a file
// @Description Stores the file under a random name and returns its public URL.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} responses.SuccessResponse{data=UploadResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 413 {object} responses.ErrorResponse
// @Router /upload [post]
// @Security BearerAuth
func (uc *UploadController) UploadFile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uc.maxSize+formOverhead)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uc.tooLarge(c)
			return
		}
		responses.BadRequest(c, "A file is required in the 'file' field")
		return
	}
	if fh.Size > uc.maxSize {
		uc.tooLarge(c)
		return
	}

	name, err := uc.store.Save(fh)
	if err != nil {
		uc.log.Error("save upload", "user_id", userID, "filename", fh.Filename, "error", err)
		responses.InternalServerError(c, "Could not upload file")
		return
	}
	uc.log.Info("file uploaded", "user_id", userID, "name", name, "size", fh.Size)
	responses.SendSuccess(c, http.StatusCreated, "File uploaded", UploadResponse{URL: uc.store.URL(name)})
}

func (uc *UploadController) tooLarge(c *gin.Context) {
	responses.SendError(c, http.StatusRequestEntityTooLarge, "File too large",
		gin.H{"max_size_mb": uc.config.App.MaxUploadSizeMB})
}
