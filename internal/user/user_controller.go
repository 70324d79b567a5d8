package user

import (
	"net/http"
	"time"

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
	suggestedMentorLimit = 10
	profileViewLimit     = 20
)

type UserController struct {
	repo   UserRepository
	config *config.Config
	log    *logger.Logger
}

func NewUserController(repo UserRepository, cfg *config.Config, log *logger.Logger) *UserController {
	return &UserController{repo: repo, config: cfg, log: log}
}

func (uc *UserController) fail(c *gin.Context, msg string, err error, kv ...interface{}) {
	uc.log.Error(msg, append(kv, "path", c.Request.URL.Path, "error", err)...)
	responses.InternalServerError(c, "")
}

// GetMe godoc
// @Summary Get the current user
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 401 {object} responses.ErrorResponse
// @Router /users/me [get]
// @Security BearerAuth
func (uc *UserController) GetMe(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved", user)
}

// UpdateMe godoc
// @Summary Update the current user
// @Description Partial update. A new password is re-hashed before it is stored.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 400 {object} responses.ErrorResponse
// @Router /users/me [put]
// @Security BearerAuth
func (uc *UserController) UpdateMe(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IntroLine != nil {
		user.IntroLine = *req.IntroLine
	}
	if req.ProfilePhotoURL != nil {
		user.ProfilePhotoURL = *req.ProfilePhotoURL
	}
	if req.LocationCity != nil {
		user.LocationCity = *req.LocationCity
	}
	if req.LocationCountry != nil {
		user.LocationCountry = *req.LocationCountry
	}
	if req.WhatsappNumber != nil {
		user.WhatsappNumber = *req.WhatsappNumber
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, uc.config.Auth.BcryptCost)
		if err != nil {
			uc.fail(c, "hash password", err, "user_id", user.ID)
			return
		}
		user.Password = hashed
	}

	if err := uc.repo.Update(user); err != nil {
		uc.fail(c, "update user", err, "user_id", user.ID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated", user)
}

// UpdateAvailability godoc
// @Summary Replace my weekly availability
// @Tags Users
// @Accept json
// @Produce json
// @Param body body AvailabilityRequest true "weekday -> [\"HH:MM-HH:MM\"]"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 400 {object} responses.ErrorResponse
// @Router /users/me/availability [put]
// @Security BearerAuth
func (uc *UserController) UpdateAvailability(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	availability, err := req.Availability.Normalize()
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := uc.repo.UpdateAvailability(user.ID, availability); err != nil {
		uc.fail(c, "update availability", err, "user_id", user.ID)
		return
	}
	updated, err := uc.repo.GetByID(user.ID)
	if err != nil || updated == nil {
		uc.fail(c, "reload user", err, "user_id", user.ID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Availability updated", updated)
}

// DeactivateMe godoc
// @Summary Deactivate my account
// @Description Marks the account inactive and revokes all refresh tokens. Rows are kept.
// @Tags Users
// @Success 204
// @Router /users/me [delete]
// @Security BearerAuth
func (uc *UserController) DeactivateMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	if err := uc.repo.Deactivate(userID); err != nil {
		uc.fail(c, "deactivate user", err, "user_id", userID)
		return
	}
	uc.log.Info("user deactivated", "user_id", userID)
	responses.NoContent(c)
}

// GetCompletion godoc
// @Summary Profile completion
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=CompletionResponse}
// @Router /users/me/completion [get]
// @Security BearerAuth
func (uc *UserController) GetCompletion(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	count, err := uc.repo.CountUserSkills(user.ID)
	if err != nil {
		uc.fail(c, "count user skills", err, "user_id", user.ID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", profileCompletion(user, count))
}

// GetSuggestedMentors godoc
// @Summary Suggested mentors
// @Description Active users who teach a skill the caller wants to learn, at most 10.
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.User}
// @Router /users/me/suggested-mentors [get]
// @Security BearerAuth
func (uc *UserController) GetSuggestedMentors(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	mentors, err := uc.repo.SuggestedMentors(userID, suggestedMentorLimit)
	if err != nil {
		uc.fail(c, "suggested mentors", err, "user_id", userID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", mentors)
}

// GetDashboard godoc
// @Summary Dashboard counters
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=DashboardResponse}
// @Router /users/me/dashboard [get]
// @Security BearerAuth
func (uc *UserController) GetDashboard(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var resp DashboardResponse
	counters := []struct {
		name string
		dst  *int64
		fn   func(uint) (int64, error)
	}{
		{"pending requests", &resp.PendingRequests, uc.repo.CountPendingReceived},
		{"connections", &resp.Connections, uc.repo.CountAcceptedConnections},
		{"profile views", &resp.ProfileViews, uc.repo.CountProfileViews},
		{"unread notifications", &resp.UnreadNotifications, uc.repo.CountUnreadNotifications},
	}
	for _, counter := range counters {
		n, err := counter.fn(userID)
		if err != nil {
			uc.fail(c, "dashboard "+counter.name, err, "user_id", userID)
			return
		}
		*counter.dst = n
	}

	if resp.UpcomingSessions, err = uc.repo.CountUpcomingSessions(userID, time.Now().UTC()); err != nil {
		uc.fail(c, "dashboard upcoming sessions", err, "user_id", userID)
		return
	}
	if resp.SuggestedMentors, err = uc.repo.SuggestedMentors(userID, suggestedMentorLimit); err != nil {
		uc.fail(c, "dashboard suggested mentors", err, "user_id", userID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", resp)
}

// GetProfileViews godoc
// @Summary Who viewed my profile
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.ProfileView}
// @Router /users/me/profile-views [get]
// @Security BearerAuth
func (uc *UserController) GetProfileViews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	views, err := uc.repo.RecentProfileViews(userID, profileViewLimit)
	if err != nil {
		uc.fail(c, "recent profile views", err, "user_id", userID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", views)
}

// ListUsers godoc
// @Summary List active users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.User}
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)
	users, total, err := uc.repo.List(page, pageSize)
	if err != nil {
		uc.fail(c, "list users", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Users retrieved", users, total, page, pageSize)
}

// SearchUsers godoc
// @Summary Search active users
// @Tags Users
// @Produce json
// @Param name query string false "Name contains (case-insensitive)"
// @Param city query string false "City contains (case-insensitive)"
// @Param skill_id query int false "Has this skill"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.User}
// @Router /users/search [get]
func (uc *UserController) SearchUsers(c *gin.Context) {
	page, pageSize := common.ParsePagination(c, common.DefaultPageSize)
	skillID := common.ParseOptionalUintQuery(c, "skill_id")

	users, total, err := uc.repo.Search(c.Query("name"), c.Query("city"), skillID, page, pageSize)
	if err != nil {
		uc.fail(c, "search users", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Users retrieved", users, total, page, pageSize)
}

// GetUser godoc
// @Summary Get an active user
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{user_id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	user, err := uc.repo.GetActiveByID(id)
	if err != nil {
		uc.fail(c, "get user", err, "user_id", id)
		return
	}
	if user == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved", user)
}

// GetProfile godoc
// @Summary Public profile
// @Description Profile with skills, portfolio and stats. When the caller is authenticated and is
// @Description not the owner, the view is recorded and connection_status reflects the pair.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=ProfileResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{user_id}/profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	id, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	user, err := uc.repo.GetActiveByID(id)
	if err != nil {
		uc.fail(c, "get profile user", err, "user_id", id)
		return
	}
	if user == nil {
		responses.NotFound(c, "User")
		return
	}

	resp := ProfileResponse{
		User:             *user,
		TeachSkills:      []models.UserSkill{},
		LearnSkills:      []models.UserSkill{},
		ConnectionStatus: StatusNone,
	}

	viewerID, authErr := middleware.GetUserIDFromContext(c)
	switch {
	case authErr != nil:
	case viewerID == user.ID:
		resp.ConnectionStatus = StatusSelf
	default:
		if err := uc.repo.RecordProfileView(viewerID, user.ID); err != nil {
			uc.fail(c, "record profile view", err, "user_id", id)
			return
		}
		conn, err := uc.repo.ConnectionBetween(viewerID, user.ID)
		if err != nil {
			uc.fail(c, "connection status", err, "user_id", id)
			return
		}
		resp.ConnectionStatus = connectionStatus(viewerID, conn)
		if conn != nil {
			resp.ConnectionID = &conn.ID
		}
	}

	skills, err := uc.repo.UserSkills(user.ID)
	if err != nil {
		uc.fail(c, "profile skills", err, "user_id", id)
		return
	}
	for _, s := range skills {
		if s.Role == models.RoleTeach {
			resp.TeachSkills = append(resp.TeachSkills, s)
		} else {
			resp.LearnSkills = append(resp.LearnSkills, s)
		}
	}

	if resp.Portfolio, err = uc.repo.Portfolio(user.ID); err != nil {
		uc.fail(c, "profile portfolio", err, "user_id", id)
		return
	}
	if resp.Stats.Views, err = uc.repo.CountProfileViews(user.ID); err != nil {
		uc.fail(c, "profile views", err, "user_id", id)
		return
	}
	if resp.Stats.Connections, err = uc.repo.CountAcceptedConnections(user.ID); err != nil {
		uc.fail(c, "profile connections", err, "user_id", id)
		return
	}
	if resp.Stats.Reviews, resp.Stats.AverageRating, err = uc.repo.ReviewStats(user.ID); err != nil {
		uc.fail(c, "profile reviews", err, "user_id", id)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", resp)
}

// ToggleSave godoc
// @Summary Save or unsave a user
// @Description Toggles the bookmark; calling twice restores the original state.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=SaveToggleResponse}
// @Failure 400 {object} responses.ErrorResponse "Cannot save yourself"
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{user_id}/save [post]
// @Security BearerAuth
func (uc *UserController) ToggleSave(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	targetID, err := common.ParseIDParam(c, "user_id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	if targetID == userID {
		responses.BadRequest(c, "Cannot save yourself")
		return
	}

	target, err := uc.repo.GetActiveByID(targetID)
	if err != nil {
		uc.fail(c, "get save target", err, "user_id", targetID)
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}

	existing, err := uc.repo.FindSaved(userID, targetID)
	if err != nil {
		uc.fail(c, "find saved user", err, "user_id", targetID)
		return
	}
	if existing != nil {
		if err := uc.repo.DeleteSaved(existing); err != nil {
			uc.fail(c, "unsave user", err, "user_id", targetID)
			return
		}
		responses.SendSuccess(c, http.StatusOK, "User removed from saved", SaveToggleResponse{Saved: false})
		return
	}

	if err := uc.repo.CreateSaved(&models.SavedUser{UserID: userID, SavedUserID: targetID}); err != nil {
		uc.fail(c, "save user", err, "user_id", targetID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User saved", SaveToggleResponse{Saved: true})
}

// ListSaved godoc
// @Summary List saved users
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.SavedUser}
// @Router /users/me/saved [get]
// @Security BearerAuth
func (uc *UserController) ListSaved(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	saved, err := uc.repo.ListSaved(userID)
	if err != nil {
		uc.fail(c, "list saved users", err, "user_id", userID)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", saved)
}
