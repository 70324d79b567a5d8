package review

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	repo   ReviewRepository
	config *config.Config
	log    *logger.Logger
}

func NewReviewController(repo ReviewRepository, cfg *config.Config, log *logger.Logger) *ReviewController {
	return &ReviewController{repo: repo, config: cfg, log: log}
}

// CreateReview godoc
// @Summary Review a user
// @Tags Reviews
// @Accept json
// @Produce json
// @Param user_id path int true "User being reviewed"
// @Param review body CreateReviewRequest true "Review"
// @Success 201 {object} responses.SuccessResponse{data=models.Review}
// @Failure 400 {object} responses.ErrorResponse "Validation error, self review or duplicate"
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{user_id}/reviews [post]
// @Security BearerAuth
func (rc *ReviewController) CreateReview(c *gin.Context) {
	authorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	subjectID, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if subjectID == authorID {
		responses.BadRequest(c, "Cannot review yourself")
		return
	}

	active, err := rc.repo.ActiveUserExists(subjectID)
	if err != nil {
		rc.log.Error("check review subject", "user_id", subjectID, "error", err)
		responses.InternalServerError(c, "Failed to create review")
		return
	}
	if !active {
		responses.NotFound(c, "User")
		return
	}
	dup, err := rc.repo.Exists(authorID, subjectID)
	if err != nil {
		rc.log.Error("check duplicate review", "author_id", authorID, "error", err)
		responses.InternalServerError(c, "Failed to create review")
		return
	}
	if dup {
		responses.BadRequest(c, "You have already reviewed this user")
		return
	}

	review := &models.Review{AuthorID: authorID, SubjectID: subjectID, Rating: req.Rating, Comment: req.Comment}
	if err := rc.repo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.BadRequest(c, "You have already reviewed this user")
			return
		}
		rc.log.Error("create review", "author_id", authorID, "subject_id", subjectID, "error", err)
		responses.InternalServerError(c, "Failed to create review")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Review created", review)
}

// ListReviews godoc
// @Summary Reviews of a user
// @Tags Reviews
// @Produce json
// @Param user_id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Review}
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{user_id}/reviews [get]
func (rc *ReviewController) ListReviews(c *gin.Context) {
	subjectID, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	active, err := rc.repo.ActiveUserExists(subjectID)
	if err != nil {
		rc.log.Error("check review subject", "user_id", subjectID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve reviews")
		return
	}
	if !active {
		responses.NotFound(c, "User")
		return
	}

	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)
	reviews, total, err := rc.repo.ListForSubject(subjectID, page, pageSize)
	if err != nil {
		rc.log.Error("list reviews", "user_id", subjectID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve reviews")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Reviews retrieved", reviews, total, page, pageSize)
}
