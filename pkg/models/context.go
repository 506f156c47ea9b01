package models

import "time"

// ChatContext is everything the engine has inferred about one session.
// It is owned by the session's turn processing and never shared.
type ChatContext struct {
	LastInteractionAt time.Time `json:"last_interaction_at"`
	Sentiment         Sentiment `json:"sentiment"`

	// DiscountPercent only moves upward through {0, 10, 15, 20}.
	DiscountGranted bool `json:"discount_granted"`
	DiscountPercent int  `json:"discount_percent"`

	// One-way flags
	SevereDistressFlagged bool `json:"severe_distress_flagged"`
	BereavementFlagged    bool `json:"bereavement_flagged"`

	// Empty means nothing has been inferred yet
	PaymentMethodMentioned string `json:"payment_method_mentioned,omitempty"`
	InterestedTopic        string `json:"interested_topic,omitempty"`

	RecentTopics []string `json:"recent_topics"`
}

func NewChatContext(now time.Time) *ChatContext {
	return &ChatContext{
		LastInteractionAt: now,
		Sentiment:         SentimentNeutral,
	}
}

// Clone returns a deep copy safe to hand outside the session
func (c *ChatContext) Clone() ChatContext {
	out := *c
	out.RecentTopics = append([]string(nil), c.RecentTopics...)
	return out
}

// RecordTopic appends a topic key to RecentTopics
func (c *ChatContext) RecordTopic(topic string) {
	c.RecentTopics = append(c.RecentTopics, topic)
}

// LastTopic returns the most recently recorded topic key
func (c *ChatContext) LastTopic() (string, bool) {
	if len(c.RecentTopics) == 0 {
		return "", false
	}
	return c.RecentTopics[len(c.RecentTopics)-1], true
}
