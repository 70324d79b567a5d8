package userskill

import (
	"net/http"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UserSkillController struct {
	repo   UserSkillRepository
	config *config.Config
	log    *logger.Logger
}

func NewUserSkillController(repo UserSkillRepository, cfg *config.Config, log *logger.Logger) *UserSkillController {
	return &UserSkillController{repo: repo, config: cfg, log: log}
}

// CreateUserSkill godoc
// @Summary Declare a skill to teach or learn
// @Tags User Skills
// @Accept json
// @Produce json
// @Param userSkill body CreateUserSkillRequest true "User skill"
// @Success 201 {object} responses.SuccessResponse{data=models.UserSkill}
// @Failure 400 {object} responses.ErrorResponse "Validation error or duplicate"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Skill not found"
// @Router /user-skills [post]
// @Router /users/me/skills [post]
// @Security BearerAuth
func (uc *UserSkillController) CreateUserSkill(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.UserID != nil && *req.UserID != userID {
		responses.Forbidden(c, "Cannot add skills for another user")
		return
	}

	found, err := uc.repo.SkillExists(req.SkillID)
	if err != nil {
		uc.log.Error("check skill", "skill_id", req.SkillID, "error", err)
		responses.InternalServerError(c, "Failed to add skill")
		return
	}
	if !found {
		responses.NotFound(c, "Skill")
		return
	}

	dup, err := uc.repo.Exists(userID, req.SkillID, req.Role, 0)
	if err != nil {
		uc.log.Error("check user skill", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to add skill")
		return
	}
	if dup {
		responses.BadRequest(c, "Skill already added with this role")
		return
	}

	us := &models.UserSkill{
		UserID:         userID,
		SkillID:        req.SkillID,
		Role:           req.Role,
		TeachingStyle:  req.TeachingStyle,
		ExperienceNote: req.ExperienceNote,
	}
	if err := uc.repo.Create(us); err != nil {
		uc.log.Error("create user skill", "user_id", userID, "skill_id", req.SkillID, "error", err)
		responses.InternalServerError(c, "Failed to add skill")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Skill added", us)
}

// ListMySkills godoc
// @Summary My declared skills
// @Tags User Skills
// @Produce json
// @Param role query string false "teach or learn"
// @Success 200 {object} responses.SuccessResponse{data=[]models.UserSkill}
// @Router /user-skills/me [get]
// @Security BearerAuth
func (uc *UserSkillController) ListMySkills(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	role := c.Query("role")
	if role != "" && role != models.RoleTeach && role != models.RoleLearn {
		responses.BadRequest(c, "role must be teach or learn")
		return
	}
	skills, err := uc.repo.ListForUser(userID, role)
	if err != nil {
		uc.log.Error("list user skills", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", skills)
}

// ListUserTeachSkills godoc
// @Summary Skills a user teaches
// @Tags User Skills
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.UserSkill}
// @Failure 404 {object} responses.ErrorResponse
// @Router /user-skills/user/{user_id} [get]
func (uc *UserSkillController) ListUserTeachSkills(c *gin.Context) {
	id, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	active, err := uc.repo.ActiveUserExists(id)
	if err != nil {
		uc.log.Error("check user", "user_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}
	if !active {
		responses.NotFound(c, "User")
		return
	}
	skills, err := uc.repo.ListForUser(id, models.RoleTeach)
	if err != nil {
		uc.log.Error("list teach skills", "user_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve skills")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", skills)
}

// ListMentors godoc
// @Summary Find mentors
// @Tags User Skills
// @Produce json
// @Param skill_id query int false "Skill ID"
// @Param city query string false "City contains"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.UserSkill}
// @Router /user-skills/mentors [get]
func (uc *UserSkillController) ListMentors(c *gin.Context) {
	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)
	skillID := common.ParseOptionalUintQuery(c, "skill_id")
	rows, total, err := uc.repo.Mentors(skillID, c.Query("city"), page, pageSize)
	if err != nil {
		uc.log.Error("list mentors", "error", err)
		responses.InternalServerError(c, "Failed to retrieve mentors")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Mentors retrieved", rows, total, page, pageSize)
}

// UpdateUserSkill godoc
// @Summary Update one of my skills
// @Tags User Skills
// @Accept json
// @Produce json
// @Param user_skill_id path int true "User skill ID"
// @Param userSkill body UpdateUserSkillRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.UserSkill}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /user-skills/{user_skill_id} [put]
// @Security BearerAuth
func (uc *UserSkillController) UpdateUserSkill(c *gin.Context) {
	us, ok := uc.loadOwned(c)
	if !ok {
		return
	}

	var req UpdateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Role != nil && *req.Role != us.Role {
		dup, err := uc.repo.Exists(us.UserID, us.SkillID, *req.Role, us.ID)
		if err != nil {
			uc.log.Error("check user skill", "user_skill_id", us.ID, "error", err)
			responses.InternalServerError(c, "Failed to update skill")
			return
		}
		if dup {
			responses.BadRequest(c, "Skill already added with this role")
			return
		}
		us.Role = *req.Role
	}
	if req.TeachingStyle != nil {
		us.TeachingStyle = *req.TeachingStyle
	}
	if req.ExperienceNote != nil {
		us.ExperienceNote = *req.ExperienceNote
	}

	if err := uc.repo.Update(us); err != nil {
		uc.log.Error("update user skill", "user_skill_id", us.ID, "error", err)
		responses.InternalServerError(c, "Failed to update skill")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Skill updated", us)
}

// DeleteUserSkill godoc
// @Summary Remove one of my skills
// @Tags User Skills
// @Param user_skill_id path int true "User skill ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /user-skills/{user_skill_id} [delete]
// @Security BearerAuth
func (uc *UserSkillController) DeleteUserSkill(c *gin.Context) {
	us, ok := uc.loadOwned(c)
	if !ok {
		return
	}
	if err := uc.repo.Delete(us); err != nil {
		uc.log.Error("delete user skill", "user_skill_id", us.ID, "error", err)
		responses.InternalServerError(c, "Failed to delete skill")
		return
	}
	responses.NoContent(c)
}

// loadOwned writes the error response itself and reports whether the caller may continue.
func (uc *UserSkillController) loadOwned(c *gin.Context) (*models.UserSkill, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil, false
	}
	id, err := common.ParseIDParam(c, "user_skill_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user skill ID")
		return nil, false
	}
	us, err := uc.repo.GetByID(id)
	if err != nil {
		uc.log.Error("get user skill", "user_skill_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve skill")
		return nil, false
	}
	if us == nil {
		responses.NotFound(c, "User skill")
		return nil, false
	}
	if us.UserID != userID {
		responses.Forbidden(c, "Not your skill")
		return nil, false
	}
	return us, true
}
