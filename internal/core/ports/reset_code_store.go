package ports

import "context"

// ResetCodeStore holds short-lived password-reset codes keyed by lowercased
// email. Get returns an empty string when no code is pending or it expired.
type ResetCodeStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}
