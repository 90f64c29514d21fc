package service

import "context"

// EmailDispatcher hands mail off to the background queue. Implemented by the
// worker dispatcher; a nil dispatcher disables outbound mail entirely.
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, to []string, subject, body, attachPath string) error
}
