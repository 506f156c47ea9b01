package models

import "time"

// SessionID is the opaque handle the surface uses to address a session
type SessionID string

// Sender identifies who authored a message
type Sender string

const (
	SenderVisitor Sender = "visitor"
	SenderEngine  Sender = "engine"
)

// Message is one entry of a session's append-only log
type Message struct {
	ID        string    `json:"id"`
	SessionID SessionID `json:"session_id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sent_at"`
}

// Sentiment is the last sentiment detected in the visitor's utterances
type Sentiment string

const (
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Suggestion is a candidate follow-up utterance rendered as a chip.
// Intent groups suggestions that ask the same question.
type Suggestion struct {
	Text   string `json:"text"`
	Intent string `json:"intent"`
}

// TimerKind names the delayed actions a session can have pending
type TimerKind string

const (
	TimerInactivityNudge TimerKind = "inactivity_nudge"
	TimerGoodbyeClose    TimerKind = "goodbye_close"
	// TimerAutoClose closes the surface shortly after the goodbye reply
	TimerAutoClose TimerKind = "auto_close"
)

// DiscountReason is why the discount tier moved (or would have moved)
type DiscountReason string

const (
	ReasonPriceObjection   DiscountReason = "price_objection"
	ReasonComparison       DiscountReason = "comparison_shopping"
	ReasonNegativeFirst    DiscountReason = "negative_sentiment"
	ReasonNegativeRepeated DiscountReason = "negative_sentiment_repeated"
	ReasonBereavement      DiscountReason = "bereavement"
	ReasonSevereDistress   DiscountReason = "severe_distress"
)

// DiscountAnnouncement is published every time the discount tier of a
// session moves up. It only announces; nothing is applied to billing.
type DiscountAnnouncement struct {
	SessionID   SessionID      `json:"session_id"`
	Previous    int            `json:"previous"`
	Percent     int            `json:"percent"`
	Reason      DiscountReason `json:"reason"`
	Source      string         `json:"source"`
	AnnouncedAt time.Time      `json:"announced_at"`
}

// TurnResult is what the surface renders after a visitor utterance
type TurnResult struct {
	Reply       Message      `json:"reply"`
	Suggestions []Suggestion `json:"suggestions"`
}

// OpenResult is returned when a session opens
type OpenResult struct {
	SessionID   SessionID    `json:"session_id"`
	Greeting    Message      `json:"greeting"`
	Suggestions []Suggestion `json:"suggestions"`
}
