package session

import (
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
)

const (
	ActionAccept   = "accept"
	ActionReject   = "reject"
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

var (
	ErrUnknownAction     = errors.New("unknown session action")
	ErrNotParticipant    = errors.New("not a participant of this session")
	ErrProviderOnly      = errors.New("only the provider can perform this action")
	ErrInvalidTransition = errors.New("invalid session status transition")
)

type transition struct {
	from         []models.SessionStatus
	to           models.SessionStatus
	providerOnly bool
}

var transitions = map[string]transition{
	ActionAccept:   {from: []models.SessionStatus{models.SessionPending}, to: models.SessionAccepted, providerOnly: true},
	ActionReject:   {from: []models.SessionStatus{models.SessionPending}, to: models.SessionRejected, providerOnly: true},
	ActionComplete: {from: []models.SessionStatus{models.SessionAccepted}, to: models.SessionCompleted, providerOnly: true},
	ActionCancel:   {from: []models.SessionStatus{models.SessionPending, models.SessionAccepted}, to: models.SessionCancelled},
}

// NextStatus returns the status s moves to when actorID performs action, or an
// error describing why the move is not allowed.
func NextStatus(s *models.Session, actorID uint, action string) (models.SessionStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if !s.Involves(actorID) {
		return "", ErrNotParticipant
	}
	if t.providerOnly && s.ProviderID != actorID {
		return "", ErrProviderOnly
	}
	for _, from := range t.from {
		if s.Status == from {
			return t.to, nil
		}
	}
	return "", fmt.Errorf("%w: cannot %s a %s session", ErrInvalidTransition, action, s.Status)
}
