package engine

import (
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/models"
)

// Surface renders a session. Deliver receives every engine-authored
// message, timer-driven ones included, in log order. Implementations must
// not call back into the engine's CloseSession from Deliver.
type Surface interface {
	Open(id models.SessionID)
	Deliver(msg models.Message, suggestions []models.Suggestion)
	Close(id models.SessionID)
}

// LogSurface only logs. It is the default when the caller renders from
// the returned results instead.
type LogSurface struct {
	Logger *logrus.Logger
}

func (s LogSurface) Open(id models.SessionID) {
	s.Logger.WithField("session_id", id).Debug("Surface opened")
}

func (s LogSurface) Deliver(msg models.Message, suggestions []models.Suggestion) {
	s.Logger.WithFields(logrus.Fields{
		"session_id":  msg.SessionID,
		"message_id":  msg.ID,
		"suggestions": len(suggestions),
	}).Debug("Delivered engine message")
}

func (s LogSurface) Close(id models.SessionID) {
	s.Logger.WithField("session_id", id).Debug("Surface closed")
}
