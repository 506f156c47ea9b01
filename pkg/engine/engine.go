// Package engine runs engagement sessions: it owns every session's context,
// message log and idle timers, and turns visitor utterances into replies
// and suggestions.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/announce"
	"clinic-engagement-engine/pkg/catalog"
	"clinic-engagement-engine/pkg/classifier"
	"clinic-engagement-engine/pkg/clock"
	"clinic-engagement-engine/pkg/config"
	"clinic-engagement-engine/pkg/discount"
	"clinic-engagement-engine/pkg/metrics"
	"clinic-engagement-engine/pkg/models"
	"clinic-engagement-engine/pkg/suggestions"
	"clinic-engagement-engine/pkg/timers"
	"clinic-engagement-engine/pkg/variant"
	"clinic-engagement-engine/pkg/workers"
)

const announceTimeout = 2 * time.Second

// Close causes, used as a metric label.
const (
	CauseExplicit = "explicit"
	CauseIdle     = "idle"
	CauseShutdown = "shutdown"
)

type Engine struct {
	config  *config.Config
	logger  *logrus.Logger
	metrics *metrics.Metrics

	clock       clock.Clock
	chooser     variant.Chooser
	catalog     *catalog.Catalog
	buckets     suggestions.Buckets
	announcer   announce.Announcer
	surface     Surface
	classifier  *classifier.Classifier
	policy      *discount.Policy
	suggestions *suggestions.Engine

	mu       sync.RWMutex
	sessions map[models.SessionID]*session
	shutdown bool
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithChooser(c variant.Chooser) Option {
	return func(e *Engine) { e.chooser = c }
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

func WithBuckets(b suggestions.Buckets) Option {
	return func(e *Engine) { e.buckets = b }
}

func WithAnnouncer(a announce.Announcer) Option {
	return func(e *Engine) { e.announcer = a }
}

func WithSurface(s Surface) Option {
	return func(e *Engine) { e.surface = s }
}

func NewEngine(cfg *config.Config, logger *logrus.Logger, metrics *metrics.Metrics, opts ...Option) *Engine {
	e := &Engine{
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[models.SessionID]*session),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		e.clock = clock.Real{}
	}
	if e.chooser == nil {
		seed := uint64(cfg.VariantSeed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.chooser = variant.NewRandom(seed)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.buckets == nil {
		e.buckets = suggestions.DefaultBuckets()
	}
	if e.announcer == nil {
		e.announcer = announce.Nop{}
	}
	if e.surface == nil {
		e.surface = LogSurface{Logger: logger}
	}

	e.classifier = classifier.New(e.catalog)
	e.policy = discount.NewPolicy(e.catalog, e.chooser)
	e.suggestions = suggestions.NewEngine(e.catalog, e.buckets)

	return e
}

// OpenSession starts a session in the Active state and delivers the
// greeting.
func (e *Engine) OpenSession(ctx context.Context) (*models.OpenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.RLock()
	down := e.shutdown
	e.mu.RUnlock()
	if down {
		return nil, ErrShutdown
	}

	id := models.SessionID(uuid.New().String())
	now := e.clock.Now()
	s := &session{
		id:      id,
		ctx:     models.NewChatContext(now),
		mailbox: workers.NewMailbox("session-"+string(id), e.config.MailboxSize, e.logger),
	}
	s.timers = timers.New(e.clock, timers.Durations{
		Nudge:     e.config.InactivityNudge(),
		Goodbye:   e.config.GoodbyeClose(),
		AutoClose: e.config.AutoCloseDelay(),
	}, e.timerFired(s))

	greeting := e.newMessage(id, models.SenderEngine, e.catalog.Lookup(catalog.TopicGreeting), now)
	s.append(greeting)
	sugg := e.suggestions.For(s.ctx, s.messages)

	// a session is only published once started; teardown assumes that
	e.surface.Open(id)
	e.surface.Deliver(greeting, sugg)
	s.timers.Start()
	e.metrics.SessionsOpened.Inc()
	e.metrics.ActiveSessions.Inc()

	e.mu.Lock()
	if e.shutdown {
		e.mu.Unlock()
		e.teardown(s, CauseShutdown)
		return nil, ErrShutdown
	}
	e.sessions[id] = s
	e.mu.Unlock()

	e.logger.WithField("session_id", id).Info("Session opened")

	return &models.OpenResult{SessionID: id, Greeting: greeting, Suggestions: sugg}, nil
}

// SubmitUtterance runs one visitor turn. Turns of the same session are
// processed one at a time, in call order.
func (e *Engine) SubmitUtterance(ctx context.Context, id models.SessionID, text string) (*models.TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyUtterance
	}
	s, ok := e.lookup(id)
	if !ok {
		return nil, ErrSessionClosed
	}
	// the visitor spoke: whatever idle action is pending is void now,
	// even if the turn still has to wait for the mailbox
	if !s.timers.Touch() {
		return nil, ErrSessionClosed
	}

	type result struct {
		res *models.TurnResult
		err error
	}
	done := make(chan result, 1)
	err := s.mailbox.Submit(ctx, func() {
		res, err := e.turn(s, text)
		done <- result{res: res, err: err}
	})
	if err != nil {
		return nil, submitError(err)
	}

	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CloseSession cancels timers and discards the session. Closing an unknown
// or already closed session is a no-op.
func (e *Engine) CloseSession(ctx context.Context, id models.SessionID) error {
	if s, ok := e.remove(id); ok {
		e.teardown(s, CauseExplicit)
	}
	return nil
}

// Transcript returns a copy of the session's message log.
func (e *Engine) Transcript(ctx context.Context, id models.SessionID) ([]models.Message, error) {
	var out []models.Message
	if err := e.read(ctx, id, func(s *session) { out = s.transcript() }); err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot returns a copy of the session's context.
func (e *Engine) Snapshot(ctx context.Context, id models.SessionID) (models.ChatContext, error) {
	var out models.ChatContext
	err := e.read(ctx, id, func(s *session) { out = s.ctx.Clone() })
	return out, err
}

// TimerState reports where the session is in its idle lifecycle.
func (e *Engine) TimerState(id models.SessionID) (timers.State, error) {
	s, ok := e.lookup(id)
	if !ok {
		return timers.Closed, ErrSessionClosed
	}
	return s.timers.State(), nil
}

func (e *Engine) ActiveSessions() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// Shutdown closes every open session and refuses new ones.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.shutdown = true
	open := make([]*session, 0, len(e.sessions))
	for id, s := range e.sessions {
		open = append(open, s)
		delete(e.sessions, id)
	}
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, s := range open {
			e.teardown(s, CauseShutdown)
		}
	}()

	select {
	case <-done:
		e.logger.WithField("closed_sessions", len(open)).Info("Engine shut down")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("engine shutdown: %w", ctx.Err())
	}
}

func (e *Engine) turn(s *session, text string) (*models.TurnResult, error) {
	if s.timers.State() == timers.Closed {
		return nil, ErrSessionClosed
	}

	start := time.Now()
	now := e.clock.Now()
	s.append(e.newMessage(s.id, models.SenderVisitor, text, now))

	match := e.classifier.Classify(text, s.ctx)
	reply, outcome := e.respond(s.ctx, match)

	if d := ReplyDelay(reply, e.config.TypingDelayPerChar(), e.config.TypingDelayMax()); d > 0 {
		<-e.clock.After(d)
	}

	msg := e.newMessage(s.id, models.SenderEngine, reply, e.clock.Now())
	s.append(msg)
	s.ctx.LastInteractionAt = msg.SentAt
	s.timers.Reset()
	sugg := e.suggestions.For(s.ctx, s.messages)
	e.surface.Deliver(msg, sugg)

	if outcome.Escalated() {
		e.announce(s.id, outcome)
	}

	e.metrics.TurnsProcessed.WithLabelValues(match.Rule.String()).Inc()
	e.metrics.TurnDuration.Observe(time.Since(start).Seconds())
	e.logger.WithFields(logrus.Fields{
		"session_id":       s.id,
		"rule":             match.Rule.String(),
		"topic":            match.Topic.String(),
		"discount_percent": s.ctx.DiscountPercent,
	}).Debug("Processed turn")

	return &models.TurnResult{Reply: msg, Suggestions: sugg}, nil
}

// timerFired runs a fired handle through the session mailbox so it is
// ordered against turns, and waits for it. The auto-close has to finish
// outside the mailbox because teardown drains it.
func (e *Engine) timerFired(s *session) func(*timers.Handle) {
	return func(h *timers.Handle) {
		var closeNow bool
		done := make(chan struct{})
		err := s.mailbox.Submit(context.Background(), func() {
			defer close(done)
			closeNow = e.idle(s, h)
		})
		if err != nil {
			return
		}
		<-done

		if closeNow {
			if _, ok := e.remove(s.id); ok {
				e.teardown(s, CauseIdle)
			}
		}
	}
}

// idle acts on a claimed handle and reports whether the session must now
// be closed.
func (e *Engine) idle(s *session, h *timers.Handle) bool {
	if !s.timers.Claim(h) {
		return false
	}
	e.metrics.TimersFired.WithLabelValues(string(h.Kind)).Inc()
	e.logger.WithFields(logrus.Fields{
		"session_id": s.id,
		"timer_kind": h.Kind,
	}).Debug("Idle timer fired")

	switch h.Kind {
	case models.TimerInactivityNudge:
		e.say(s, catalog.TopicInactivityNudge)
		s.timers.MarkNudgeSent()
	case models.TimerGoodbyeClose:
		e.say(s, catalog.TopicGoodbye)
		s.timers.MarkClosed()
	case models.TimerAutoClose:
		return true
	}
	return false
}

func (e *Engine) say(s *session, topic catalog.Topic) {
	msg := e.newMessage(s.id, models.SenderEngine, e.catalog.Lookup(topic), e.clock.Now())
	s.append(msg)
	s.ctx.LastInteractionAt = msg.SentAt
	e.surface.Deliver(msg, e.suggestions.For(s.ctx, s.messages))
}

func (e *Engine) announce(id models.SessionID, outcome discount.Outcome) {
	e.metrics.DiscountEscalations.WithLabelValues(string(outcome.Reason), strconv.Itoa(outcome.Current)).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()

	a := outcome.Announcement(id, e.config.PodID, e.clock.Now())
	if err := e.announcer.Announce(ctx, a); err != nil {
		e.metrics.AnnouncementsFailed.Inc()
		e.logger.WithError(err).WithFields(logrus.Fields{
			"session_id": id,
			"percent":    a.Percent,
			"reason":     a.Reason,
		}).Warn("Failed to announce discount")
		return
	}

	e.logger.WithFields(logrus.Fields{
		"session_id": id,
		"previous":   a.Previous,
		"percent":    a.Percent,
		"reason":     a.Reason,
	}).Info("Discount escalated")
}

func (e *Engine) read(ctx context.Context, id models.SessionID, fn func(*session)) error {
	s, ok := e.lookup(id)
	if !ok {
		return ErrSessionClosed
	}
	done := make(chan struct{})
	if err := s.mailbox.Submit(ctx, func() {
		defer close(done)
		fn(s)
	}); err != nil {
		return submitError(err)
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// submitError keeps the caller's cancellation visible; any other mailbox
// failure means the session was torn down.
func submitError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return ErrSessionClosed
}

func (e *Engine) lookup(id models.SessionID) (*session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[id]
	return s, ok
}

func (e *Engine) remove(id models.SessionID) (*session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if ok {
		delete(e.sessions, id)
	}
	return s, ok
}

// teardown must not run on the session's own mailbox goroutine.
func (e *Engine) teardown(s *session, cause string) {
	s.timers.Stop()
	s.mailbox.Close()
	e.surface.Close(s.id)

	e.metrics.ActiveSessions.Dec()
	e.metrics.SessionsClosed.WithLabelValues(cause).Inc()
	e.logger.WithFields(logrus.Fields{
		"session_id": s.id,
		"cause":      cause,
	}).Info("Session closed")
}

func (e *Engine) newMessage(id models.SessionID, sender models.Sender, text string, at time.Time) models.Message {
	return models.Message{
		ID:        uuid.New().String(),
		SessionID: id,
		Sender:    sender,
		Text:      text,
		SentAt:    at,
	}
}
