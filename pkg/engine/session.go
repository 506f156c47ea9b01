package engine

import (
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/timers"
	"clinic-engagement-engine/pkg/workers"
)

// session is only touched from its mailbox goroutine, except for timers
// which carry their own lock.
type session struct {
	id       models.SessionID
	ctx      *models.ChatContext
	messages []models.Message
	timers   *timers.Controller
	mailbox  *workers.Mailbox
}

func (s *session) append(msg models.Message) {
	s.messages = append(s.messages, msg)
}

func (s *session) transcript() []models.Message {
	return append([]models.Message(nil), s.messages...)
}
