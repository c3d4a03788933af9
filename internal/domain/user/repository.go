package user

import "context"

// Repository defines the credential store operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uint) (*User, error)
	ListByRole(ctx context.Context, role string) ([]*User, error)
	ListAdminEmails(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, userID uint, status Status) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}
