package connection

import (
	"errors"
	"fmt"
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

var (
	ErrAlreadyPending   = errors.New("connection request already pending")
	ErrAlreadyConnected = errors.New("already connected")
	ErrNotPending       = errors.New("connection is not pending")
)

type ConnectionController struct {
	repo   ConnectionRepository
	config *config.Config
	log    *logger.Logger
}

func NewConnectionController(repo ConnectionRepository, cfg *config.Config, log *logger.Logger) *ConnectionController {
	return &ConnectionController{repo: repo, config: cfg, log: log}
}

// SendRequest godoc
// @Summary Send a connection request
// @Description A previously rejected pair is reopened as a new pending request from the caller.
// @Tags Connections
// @Accept json
// @Produce json
// @Param request body CreateConnectionRequest true "Recipient"
// @Success 201 {object} responses.SuccessResponse{data=models.Connection}
// @Failure 400 {object} responses.ErrorResponse "Self request, already pending or already connected"
// @Failure 404 {object} responses.ErrorResponse
// @Router /connections [post]
// @Security BearerAuth
func (cc *ConnectionController) SendRequest(c *gin.Context) {
	me, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.RecipientID == me.ID {
		responses.BadRequest(c, "Cannot connect with yourself")
		return
	}

	recipient, err := cc.repo.GetActiveUser(req.RecipientID)
	if err != nil {
		cc.log.Error("get recipient", "recipient_id", req.RecipientID, "error", err)
		responses.InternalServerError(c, "Failed to send connection request")
		return
	}
	if recipient == nil {
		responses.NotFound(c, "User")
		return
	}

	var conn *models.Connection
	err = cc.repo.WithTransaction(func(tx ConnectionRepository) error {
		existing, err := tx.FindBetween(me.ID, recipient.ID)
		if err != nil {
			return err
		}
		switch {
		case existing == nil:
			conn = &models.Connection{RequesterID: me.ID, RecipientID: recipient.ID, Status: models.ConnectionPending}
			err = tx.Create(conn)
		case existing.Status == models.ConnectionPending:
			return ErrAlreadyPending
		case existing.Status == models.ConnectionAccepted:
			return ErrAlreadyConnected
		default:
			conn = existing
			conn.RequesterID = me.ID
			conn.RecipientID = recipient.ID
			conn.Status = models.ConnectionPending
			err = tx.Save(conn)
		}
		if err != nil {
			return err
		}
		return tx.Notify(recipient.ID, models.NotificationConnectionRequest,
			fmt.Sprintf("%s sent you a connection request", me.Name), conn.ID)
	})
	switch {
	case errors.Is(err, ErrAlreadyPending), errors.Is(err, gorm.ErrDuplicatedKey):
		responses.BadRequest(c, "Connection request already pending")
		return
	case errors.Is(err, ErrAlreadyConnected):
		responses.BadRequest(c, "Already connected")
		return
	case err != nil:
		cc.log.Error("send connection request", "requester_id", me.ID, "recipient_id", recipient.ID, "error", err)
		responses.InternalServerError(c, "Failed to send connection request")
		return
	}

	cc.log.Info("connection requested", "connection_id", conn.ID, "requester_id", me.ID, "recipient_id", recipient.ID)
	responses.SendSuccess(c, http.StatusCreated, "Connection request sent", cc.reload(conn))
}

// ListConnections godoc
// @Summary List my connections
// @Tags Connections
// @Produce json
// @Param type query string false "accepted (default), pending (received) or sent"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Connection}
// @Failure 400 {object} responses.ErrorResponse
// @Router /connections [get]
// @Security BearerAuth
func (cc *ConnectionController) ListConnections(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var conns []models.Connection
	switch c.DefaultQuery("type", ListAccepted) {
	case ListAccepted:
		conns, err = cc.repo.ListAccepted(userID)
	case ListPending:
		conns, err = cc.repo.ListReceived(userID)
	case ListSent:
		conns, err = cc.repo.ListSent(userID)
	default:
		responses.BadRequest(c, "type must be accepted, pending or sent")
		return
	}
	if err != nil {
		cc.log.Error("list connections", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve connections")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", conns)
}

// ListRequests godoc
// @Summary Pending requests I received
// @Tags Connections
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Connection}
// @Router /connections/requests [get]
// @Security BearerAuth
func (cc *ConnectionController) ListRequests(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	conns, err := cc.repo.ListReceived(userID)
	if err != nil {
		cc.log.Error("list connection requests", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve connection requests")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", conns)
}

// RespondToRequest godoc
// @Summary Accept or reject a connection request
// @Tags Connections
// @Accept json
// @Produce json
// @Param connection_id path int true "Connection ID"
// @Param request body UpdateConnectionRequest true "accepted or rejected"
// @Success 200 {object} responses.SuccessResponse{data=models.Connection}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /connections/{connection_id} [put]
// @Security BearerAuth
func (cc *ConnectionController) RespondToRequest(c *gin.Context) {
	me, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	id, err := common.ParseIDParam(c, "connection_id")
	if err != nil {
		responses.BadRequest(c, "Invalid connection ID")
		return
	}
	var req UpdateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if req.Status != models.ConnectionAccepted && req.Status != models.ConnectionRejected {
		responses.BadRequest(c, "Status must be accepted or rejected")
		return
	}

	conn, err := cc.repo.GetByID(id)
	if err != nil {
		cc.log.Error("get connection", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to update connection")
		return
	}
	if conn == nil {
		responses.NotFound(c, "Connection")
		return
	}
	if conn.RecipientID != me.ID {
		responses.Forbidden(c, "Only the recipient can respond to this request")
		return
	}

	err = cc.repo.WithTransaction(func(tx ConnectionRepository) error {
		// Re-read inside the transaction so two concurrent answers cannot both apply.
		current, err := tx.GetByID(conn.ID)
		if err != nil {
			return err
		}
		if current == nil || current.Status != models.ConnectionPending {
			return ErrNotPending
		}
		current.Status = req.Status
		if err := tx.Save(current); err != nil {
			return err
		}
		conn = current
		if req.Status != models.ConnectionAccepted {
			return nil
		}
		return tx.Notify(conn.RequesterID, models.NotificationConnectionAccepted,
			fmt.Sprintf("%s accepted your connection request", me.Name), conn.ID)
	})
	if errors.Is(err, ErrNotPending) {
		responses.BadRequest(c, "Connection request is not pending")
		return
	}
	if err != nil {
		cc.log.Error("respond to connection", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to update connection")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Connection "+string(req.Status), conn)
}

// CancelRequest godoc
// @Summary Cancel a pending request I sent
// @Tags Connections
// @Param connection_id path int true "Connection ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Router /connections/{connection_id}/cancel [delete]
// @Security BearerAuth
func (cc *ConnectionController) CancelRequest(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	id, err := common.ParseIDParam(c, "connection_id")
	if err != nil {
		responses.BadRequest(c, "Invalid connection ID")
		return
	}
	conn, err := cc.repo.GetByID(id)
	if err != nil {
		cc.log.Error("get connection", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to cancel request")
		return
	}
	if conn == nil || conn.RequesterID != userID || conn.Status != models.ConnectionPending {
		responses.NotFound(c, "Pending request")
		return
	}
	if err := cc.repo.Delete(conn); err != nil {
		cc.log.Error("cancel connection request", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to cancel request")
		return
	}
	responses.NoContent(c)
}

// RemoveConnection godoc
// @Summary Remove a connection
// @Description Either party may remove an accepted or rejected connection. Pending requests are
// @Description cancelled or rejected instead.
// @Tags Connections
// @Param connection_id path int true "Connection ID"
// @Success 204
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /connections/{connection_id} [delete]
// @Security BearerAuth
func (cc *ConnectionController) RemoveConnection(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	id, err := common.ParseIDParam(c, "connection_id")
	if err != nil {
		responses.BadRequest(c, "Invalid connection ID")
		return
	}
	conn, err := cc.repo.GetByID(id)
	if err != nil {
		cc.log.Error("get connection", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to remove connection")
		return
	}
	if conn == nil {
		responses.NotFound(c, "Connection")
		return
	}
	if !conn.Involves(userID) {
		responses.Forbidden(c, "Not your connection")
		return
	}
	if conn.Status == models.ConnectionPending {
		responses.BadRequest(c, "Pending requests must be cancelled or rejected")
		return
	}
	if err := cc.repo.Delete(conn); err != nil {
		cc.log.Error("remove connection", "connection_id", id, "error", err)
		responses.InternalServerError(c, "Failed to remove connection")
		return
	}
	responses.NoContent(c)
}

// reload fetches the connection with both users attached, falling back to the bare row.
func (cc *ConnectionController) reload(conn *models.Connection) *models.Connection {
	full, err := cc.repo.GetByID(conn.ID)
	if err != nil || full == nil {
		if err != nil {
			cc.log.Warn("reload connection", "connection_id", conn.ID, "error", err)
		}
		return conn
	}
	return full
}
