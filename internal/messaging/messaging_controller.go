package messaging

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

const previewLength = 80

var (
	errSelfConversation = errors.New("cannot message yourself")
	errNoRecipient      = errors.New("recipient not found")
	errNoConversation   = errors.New("conversation not found")
	errNotParticipant   = errors.New("not a participant of this conversation")
)

type MessagingController struct {
	repo   MessagingRepository
	config *config.Config
	log    *logger.Logger
}

func NewMessagingController(repo MessagingRepository, cfg *config.Config, log *logger.Logger) *MessagingController {
	return &MessagingController{repo: repo, config: cfg, log: log}
}

// StartConversation godoc
// @Summary Open a conversation with a user
// @Description Returns the existing conversation for the pair when there is one.
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body StartConversationRequest true "Other user"
// @Success 200 {object} responses.SuccessResponse{data=models.Conversation} "Existing conversation"
// @Success 201 {object} responses.SuccessResponse{data=models.Conversation} "New conversation"
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /messaging/conversations [post]
// @Security BearerAuth
func (mc *MessagingController) StartConversation(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	var conv *models.Conversation
	var created bool
	err = mc.repo.WithTransaction(func(tx MessagingRepository) error {
		var err error
		conv, created, err = openConversation(tx, userID, req.UserID)
		return err
	})
	if mc.handleLookupError(c, err, "start conversation", userID) {
		return
	}

	if full, err := mc.repo.GetConversation(conv.ID); err == nil && full != nil {
		conv = full
	}
	if created {
		responses.SendSuccess(c, http.StatusCreated, "Conversation created", conv)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Conversation retrieved", conv)
}

// ListConversations godoc
// @Summary My conversations
// @Tags Messaging
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Conversation}
// @Router /messaging/conversations [get]
// @Security BearerAuth
func (mc *MessagingController) ListConversations(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	convs, err := mc.repo.ListConversations(userID)
	if err != nil {
		mc.log.Error("list conversations", "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve conversations")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", convs)
}

// SendMessage godoc
// @Summary Send a message
// @Description Either conversation_id or recipient_id is required. A recipient without an
// @Description existing conversation gets one created.
// @Tags Messaging
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} responses.SuccessResponse{data=models.Message}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /messaging/messages [post]
// @Security BearerAuth
func (mc *MessagingController) SendMessage(c *gin.Context) {
	me, ok := middleware.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	var msg *models.Message
	err := mc.repo.WithTransaction(func(tx MessagingRepository) error {
		var conv *models.Conversation
		var err error
		if req.ConversationID != nil {
			conv, err = tx.GetConversation(*req.ConversationID)
			if err != nil {
				return err
			}
			if conv == nil {
				return errNoConversation
			}
			if !conv.HasParticipant(me.ID) {
				return errNotParticipant
			}
		} else {
			conv, _, err = openConversation(tx, me.ID, *req.RecipientID)
			if err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		msg = &models.Message{ConversationID: conv.ID, SenderID: me.ID, Content: req.Content, SentAt: now}
		if err := tx.CreateMessage(msg); err != nil {
			return err
		}
		if err := tx.TouchConversation(conv.ID, now); err != nil {
			return err
		}
		return tx.Notify(conv.Other(me.ID), models.NotificationMessage,
			fmt.Sprintf("%s: %s", me.Name, preview(req.Content)), conv.ID)
	})
	if mc.handleLookupError(c, err, "send message", me.ID) {
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Message sent", msg)
}

// ListMessages godoc
// @Summary Messages in a conversation
// @Tags Messaging
// @Produce json
// @Param conversation_id path int true "Conversation ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Message}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /messaging/conversations/{conversation_id}/messages [get]
// @Security BearerAuth
func (mc *MessagingController) ListMessages(c *gin.Context) {
	conv, ok := mc.loadParticipating(c)
	if !ok {
		return
	}
	msgs, err := mc.repo.ListMessages(conv.ID)
	if err != nil {
		mc.log.Error("list messages", "conversation_id", conv.ID, "error", err)
		responses.InternalServerError(c, "Failed to retrieve messages")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", msgs)
}

// MarkRead godoc
// @Summary Mark a conversation as read
// @Tags Messaging
// @Param conversation_id path int true "Conversation ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /messaging/conversations/{conversation_id}/read [put]
// @Security BearerAuth
func (mc *MessagingController) MarkRead(c *gin.Context) {
	conv, ok := mc.loadParticipating(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	if err := mc.repo.MarkRead(conv.ID, userID); err != nil {
		mc.log.Error("mark conversation read", "conversation_id", conv.ID, "error", err)
		responses.InternalServerError(c, "Failed to mark conversation read")
		return
	}
	responses.NoContent(c)
}

func (mc *MessagingController) loadParticipating(c *gin.Context) (*models.Conversation, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return nil, false
	}
	id, err := common.ParseIDParam(c, "conversation_id")
	if err != nil {
		responses.BadRequest(c, "Invalid conversation ID")
		return nil, false
	}
	conv, err := mc.repo.GetConversation(id)
	if err != nil {
		mc.log.Error("get conversation", "conversation_id", id, "error", err)
		responses.InternalServerError(c, "Failed to retrieve conversation")
		return nil, false
	}
	if conv == nil {
		responses.NotFound(c, "Conversation")
		return nil, false
	}
	if !conv.HasParticipant(userID) {
		responses.Forbidden(c, "Not a participant of this conversation")
		return nil, false
	}
	return conv, true
}

// handleLookupError maps the shared conversation errors to responses. It
// returns true when a response has been written.
func (mc *MessagingController) handleLookupError(c *gin.Context, err error, op string, userID uint) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, errSelfConversation):
		responses.BadRequest(c, "Cannot message yourself")
	case errors.Is(err, errNoRecipient):
		responses.NotFound(c, "User")
	case errors.Is(err, errNoConversation):
		responses.NotFound(c, "Conversation")
	case errors.Is(err, errNotParticipant):
		responses.Forbidden(c, "Not a participant of this conversation")
	default:
		mc.log.Error(op, "user_id", userID, "error", err)
		responses.InternalServerError(c, "Failed to "+op)
	}
	return true
}

func openConversation(tx MessagingRepository, userID, otherID uint) (*models.Conversation, bool, error) {
	if userID == otherID {
		return nil, false, errSelfConversation
	}
	other, err := tx.GetActiveUser(otherID)
	if err != nil {
		return nil, false, err
	}
	if other == nil {
		return nil, false, errNoRecipient
	}
	return tx.FindOrCreateConversation(userID, otherID)
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewLength {
		return content
	}
	return string(r[:previewLength]) + "..."
}
