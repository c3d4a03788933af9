package notify

import "context"

//go:generate mockgen -source=notify.go -destination=../mocks/mock_mailer.go -package=mocks

// Mailer delivers account emails.
type Mailer interface {
	// SendSimpleMessage sends a plain-text message to `to`, copying every address in cc.
	SendSimpleMessage(ctx context.Context, to, subject, text string, cc []string) error
	// SendTemporaryPassword mails a freshly generated password to its owner.
	SendTemporaryPassword(ctx context.Context, to, password string) error
}
