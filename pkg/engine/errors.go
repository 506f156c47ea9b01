package engine

import "errors"

var (
	// ErrEmptyUtterance is returned when the visitor text is blank.
	ErrEmptyUtterance = errors.New("utterance must not be empty")
	// ErrSessionClosed is returned for closed and unknown sessions alike.
	ErrSessionClosed = errors.New("session is closed")
	// ErrShutdown is returned by OpenSession once Shutdown was called.
	ErrShutdown = errors.New("engine is shut down")
)
