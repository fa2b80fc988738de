package service

import "context"

// Mailer sends transactional mail. Failures are best-effort territory: the
// caller logs and moves on, it never fails the originating operation.
type Mailer interface {
	// SendWelcome sends the post-registration welcome message.
	SendWelcome(ctx context.Context, to string, username string) error
}
