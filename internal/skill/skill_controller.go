package skill

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
)

const (
	defaultSkillPageSize   = 50
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

var errSkillExists = errors.New("skill already exists")

type SkillController struct {
	repo   SkillRepository
	config *config.Config
	log    *logger.Logger
}

func NewSkillController(repo SkillRepository, cfg *config.Config, log *logger.Logger) *SkillController {
	return &SkillController{repo: repo, config: cfg, log: log}
}

// CreateSkill godoc
// @Summary Create a skill
// @Description Superuser only. The name is trimmed and lowercased. Creating a name that was
// @Description soft-deleted brings the old row back.
// @Tags Skills
// @Accept json
// @Produce json
// @Param skill body CreateSkillRequest true "Skill"
// @Success 201 {object} responses.SuccessResponse{data=models.Skill}
// @Failure 400 {object} responses.ErrorResponse "Validation error or skill already exists"
// @Failure 403 {object} responses.ErrorResponse
// @Router /skills [post]
// @Security BearerAuth
func (sc *SkillController) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	name := utils.NormalizeName(req.Name)
	if name == "" {
		responses.BadRequest(c, "Skill name cannot be blank")
		return
	}

	var skill *models.Skill
	reactivated := false
	err := sc.repo.WithTransaction(func(tx SkillRepository) error {
		existing, err := tx.FindByNameUnscoped(name)
		if err != nil {
			return err
		}
		if existing != nil {
			if !existing.DeletedAt.Valid {
				return errSkillExists
			}
			existing.Category = req.Category
			existing.Description = req.Description
			reactivated = true
			skill = existing
			return tx.Reactivate(existing)
		}
		skill = &models.Skill{Name: name, Category: req.Category, Description: req.Description}
		return tx.Create(skill)
	})
	if errors.Is(err, errSkillExists) {
		responses.BadRequest(c, "Skill already exists")
		return
	}
	if err != nil {
		sc.log.Error("create skill", "name", name, "error", err)
		responses.InternalServerError(c, "Failed to create skill")
		return
	}

	msg := "Skill created successfully"
	if reactivated {
		msg = "Skill reactivated"
	}
	responses.SendSuccess(c, http.StatusCreated, msg, skill)
}

// ListSkills godoc
// @Summary List skills
// @Tags Skills
// @Produce json
// @Param skill query string false "Name contains"
// @Param category query string false "Category contains"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Skill}
// @Router /skills [get]
func (sc *SkillController) ListSkills(c *gin.Context) {
	page, pageSize := common.ParsePagination(c, defaultSkillPageSize)
	skills, total, err := sc.repo.List(c.Query("skill"), c.Query("category"), page, pageSize)
	if err != nil {
		sc.log.Error("list skills", "error", err)
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Skills retrieved", skills, total, page, pageSize)
}

// GetSkill godoc
// @Summary Get a skill
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Skill}
// @Failure 404 {object} responses.ErrorResponse
// @Router /skills/{skill_id} [get]
func (sc *SkillController) GetSkill(c *gin.Context) {
	id, err := common.ParseIDParam(c, "skill_id")
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID")
		return
	}
	skill, err := sc.repo.GetByID(id)
	if err != nil {
		sc.log.Error("get skill", "skill_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Skill retrieved", skill)
}

// GetCategories godoc
// @Summary Distinct skill categories
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Router /skills/categories [get]
func (sc *SkillController) GetCategories(c *gin.Context) {
	categories, err := sc.repo.Categories()
	if err != nil {
		sc.log.Error("skill categories", "error", err)
		responses.InternalServerError(c, "Failed to retrieve categories")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", categories)
}

// GetSuggestions godoc
// @Summary Skill name suggestions
// @Tags Skills
// @Produce json
// @Param query query string true "Partial name"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} responses.SuccessResponse{data=[]models.Skill}
// @Router /skills/suggestions [get]
func (sc *SkillController) GetSuggestions(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		responses.SendSuccess(c, http.StatusOK, "", []models.Skill{})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSuggestionLimit)))
	if err != nil || limit < 1 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	skills, err := sc.repo.Suggestions(query, limit)
	if err != nil {
		sc.log.Error("skill suggestions", "error", err)
		responses.InternalServerError(c, "Failed to retrieve suggestions")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", skills)
}

// DeleteSkill godoc
// @Summary Soft delete a skill
// @Tags Skills
// @Param skill_id path int true "Skill ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /skills/{skill_id} [delete]
// @Security BearerAuth
func (sc *SkillController) DeleteSkill(c *gin.Context) {
	id, err := common.ParseIDParam(c, "skill_id")
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID")
		return
	}
	deleted, err := sc.repo.SoftDelete(id)
	if err != nil {
		sc.log.Error("delete skill", "skill_id", id, "error", err)
		responses.InternalServerError(c, "Failed to delete skill")
		return
	}
	if !deleted {
		responses.NotFound(c, "Skill")
		return
	}
	responses.NoContent(c)
}

// ToggleFollow godoc
// @Summary Follow or unfollow a skill
// @Tags Skills
// @Produce json
// @Param skill_id path int true "Skill ID"
// @Success 200 {object} responses.SuccessResponse{data=FollowToggleResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Router /skills/{skill_id}/follow [post]
// @Security BearerAuth
func (sc *SkillController) ToggleFollow(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	skillID, err := common.ParseIDParam(c, "skill_id")
	if err != nil {
		responses.BadRequest(c, "Invalid skill ID")
		return
	}

	skill, err := sc.repo.GetByID(skillID)
	if err != nil {
		sc.log.Error("get skill", "skill_id", skillID, "error", err)
		responses.InternalServerError(c, "Failed to follow skill")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	follow, err := sc.repo.FindFollow(userID, skillID)
	if err == nil {
		if follow != nil {
			err = sc.repo.DeleteFollow(follow)
		} else {
			err = sc.repo.CreateFollow(&models.SkillFollow{UserID: userID, SkillID: skillID})
		}
	}
	if err != nil {
		sc.log.Error("toggle skill follow", "skill_id", skillID, "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to follow skill")
		return
	}

	if follow != nil {
		responses.SendSuccess(c, http.StatusOK, "Skill unfollowed", FollowToggleResponse{Following: false})
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Skill followed", FollowToggleResponse{Following: true})
}

// ListFollowed godoc
// @Summary Skills I follow
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Skill}
// @Router /skills/followed [get]
// @Security BearerAuth
func (sc *SkillController) ListFollowed(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	skills, err := sc.repo.ListFollowed(userID)
	if err != nil {
		sc.log.Error("list followed skills", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve followed skills")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", skills)
}
