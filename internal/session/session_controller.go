package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/common"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/DhavalSuthar-24/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
)

var errSlotTaken = errors.New("time slot already booked")

var sessionStatuses = map[models.SessionStatus]bool{
	models.SessionPending:   true,
	models.SessionAccepted:  true,
	models.SessionRejected:  true,
	models.SessionCancelled: true,
	models.SessionCompleted: true,
}

type SessionController struct {
	repo   SessionRepository
	config *config.Config
	log    *logger.Logger
}

func NewSessionController(repo SessionRepository, cfg *config.Config, log *logger.Logger) *SessionController {
	return &SessionController{repo: repo, config: cfg, log: log}
}

// BookSession godoc
// @Summary Request a session with a provider
// @Description The slot must not overlap any non-cancelled session of either participant.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Booking"
// @Success 201 {object} responses.SuccessResponse{data=models.Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error or time slot already booked"
// @Failure 404 {object} responses.ErrorResponse "Provider or skill not found"
// @Router /sessions [post]
// @Security BearerAuth
func (sc *SessionController) BookSession(c *gin.Context) {
	me, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.ProviderID == me.ID {
		responses.BadRequest(c, "Cannot book a session with yourself")
		return
	}
	start := req.StartTime.UTC().Truncate(time.Second)
	end := req.EndTime.UTC().Truncate(time.Second)
	if !start.Before(end) {
		responses.BadRequest(c, "start_time must be before end_time")
		return
	}

	provider, err := sc.repo.GetActiveUser(req.ProviderID)
	if err != nil {
		sc.log.Error("get provider", "provider_id", req.ProviderID, "error", err)
		responses.InternalServerError(c, "Failed to book session")
		return
	}
	if provider == nil {
		responses.NotFound(c, "Provider")
		return
	}
	skill, err := sc.repo.GetSkill(req.SkillID)
	if err != nil {
		sc.log.Error("get skill", "skill_id", req.SkillID, "error", err)
		responses.InternalServerError(c, "Failed to book session")
		return
	}
	if skill == nil {
		responses.NotFound(c, "Skill")
		return
	}

	session := &models.Session{
		RequesterID: me.ID,
		ProviderID:  provider.ID,
		SkillID:     skill.ID,
		StartTime:   start,
		EndTime:     end,
		Status:      models.SessionPending,
		Notes:       req.Notes,
	}
	err = sc.repo.WithTransaction(func(tx SessionRepository) error {
		taken, err := tx.HasOverlap([]uint{provider.ID, me.ID}, start, end)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}
		if err := tx.Create(session); err != nil {
			return err
		}
		return tx.Notify(provider.ID, models.NotificationSessionRequest,
			fmt.Sprintf("%s requested a %s session", me.Name, skill.Name), session.ID)
	})
	if errors.Is(err, errSlotTaken) {
		responses.BadRequest(c, "Time slot already booked")
		return
	}
	if err != nil {
		sc.log.Error("book session", "requester_id", me.ID, "provider_id", provider.ID, "error", err)
		responses.InternalServerError(c, "Failed to book session")
		return
	}

	sc.log.Info("session booked", "session_id", session.ID, "requester_id", me.ID, "provider_id", provider.ID)
	responses.SendSuccess(c, http.StatusCreated, "Session requested", sc.reload(session))
}

// ListSessions godoc
// @Summary List my sessions
// @Tags Sessions
// @Produce json
// @Param status query string false "pending, accepted, rejected, cancelled or completed"
// @Param role query string false "provider or requester"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Session}
// @Failure 400 {object} responses.ErrorResponse
// @Router /sessions [get]
// @Security BearerAuth
func (sc *SessionController) ListSessions(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	status := models.SessionStatus(c.Query("status"))
	if status != "" && !sessionStatuses[status] {
		responses.BadRequest(c, "Invalid status filter")
		return
	}
	role := c.Query("role")
	if role != "" && role != RoleProvider && role != RoleRequester {
		responses.BadRequest(c, "role must be provider or requester")
		return
	}

	sessions, err := sc.repo.ListForUser(userID, status, role)
	if err != nil {
		sc.log.Error("list sessions", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve sessions")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", sessions)
}

// GetSession godoc
// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Session}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /sessions/{session_id} [get]
// @Security BearerAuth
func (sc *SessionController) GetSession(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	session, ok := sc.load(c)
	if !ok {
		return
	}
	if !session.Involves(userID) {
		responses.Forbidden(c, "Not a participant of this session")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", session)
}

// UpdateStatus godoc
// @Summary Accept, reject, complete or cancel a session
// @Description Only the provider may accept, reject or complete. Either participant may cancel a
// @Description pending or accepted session.
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Param action path string true "accept, reject, complete or cancel"
// @Success 200 {object} responses.SuccessResponse{data=models.Session}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /sessions/{session_id}/{action} [put]
// @Security BearerAuth
func (sc *SessionController) UpdateStatus(c *gin.Context) {
	me, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	session, ok := sc.load(c)
	if !ok {
		return
	}
	action := c.Param("action")

	err := sc.repo.WithTransaction(func(tx SessionRepository) error {
		next, err := NextStatus(session, me.ID, action)
		if err != nil {
			return err
		}
		if err := tx.UpdateStatus(session, next); err != nil {
			return err
		}
		return tx.Notify(session.Counterpart(me.ID), "session_"+string(next),
			fmt.Sprintf("%s marked your session as %s", me.Name, next), session.ID)
	})
	switch {
	case errors.Is(err, ErrUnknownAction), errors.Is(err, ErrInvalidTransition):
		responses.BadRequest(c, err.Error())
		return
	case errors.Is(err, ErrNotParticipant), errors.Is(err, ErrProviderOnly):
		responses.Forbidden(c, err.Error())
		return
	case err != nil:
		sc.log.Error("update session status", "session_id", session.ID, "action", action, "error", err)
		responses.InternalServerError(c, "Failed to update session")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session "+string(session.Status), session)
}

func (sc *SessionController) load(c *gin.Context) (*models.Session, bool) {
	id, err := common.ParseIDParam(c, "session_id")
	if err != nil {
		responses.BadRequest(c, "Invalid session ID")
		return nil, false
	}
	session, err := sc.repo.GetByID(id)
	if err != nil {
		sc.log.Error("get session", "session_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve session")
		return nil, false
	}
	if session == nil {
		responses.NotFound(c, "Session")
		return nil, false
	}
	return session, true
}

func (sc *SessionController) reload(s *models.Session) *models.Session {
	full, err := sc.repo.GetByID(s.ID)
	if err != nil || full == nil {
		if err != nil {
			sc.log.Warn("reload session", "session_id", s.ID, "error", err)
		}
		return s
	}
	return full
}
