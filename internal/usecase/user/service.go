package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainUser "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/user"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/metrics"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/notify"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"go.uber.org/zap"
)

const (
	MsgRegistered           = "Successfully Registered."
	MsgStatusUpdated        = "User Status Updated Successfully"
	MsgPasswordUpdated      = "Password Updated Successfully"
	MsgTemporaryPasswordSet = "Check your mail for credentials."
	MsgTokenValid           = "true"

	subjectAccountApproved = "Account Approved"
	subjectAccountDisabled = "Account Disabled"
)

// Service implements user use cases
type Service struct {
	userRepo domainUser.Repository
	tokens   *auth.TokenService
	mailer   notify.Mailer
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository, tokens *auth.TokenService, mailer notify.Mailer) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *Service) SignUp(ctx context.Context, req *SignUpRequest) (string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return "", appErrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Name:          strings.TrimSpace(req.Name),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		Status:        domainUser.StatusPending,
		Role:          domainUser.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return "", appErrors.ErrEmailAlreadyExists
		}
		return "", err
	}

	logger.Info("User registered successfully",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("event", "user_registered"),
	)

	return MsgRegistered, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.ErrBadCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "user_not_found"),
			)
			return nil, appErrors.ErrBadCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.Uint("user_id", user.ID),
			zap.String("email", user.Email),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrBadCredentials
	}

	if !user.IsActive() {
		logger.Warn("Login attempt for user pending approval",
			zap.Uint("user_id", user.ID),
			zap.String("email", user.Email),
			zap.String("event", "login_failed_pending_approval"),
		)
		return nil, appErrors.ErrPendingApproval
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	metrics.TokensIssuedTotal.Inc()

	logger.Info("User logged in successfully",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", user.Role),
		zap.String("event", "login_success"),
	)

	return &TokenResponse{Token: token}, nil
}

// GetAllUsers lists accounts with the user role. Admin only.
func (s *Service) GetAllUsers(ctx context.Context) ([]UserResponse, error) {
	if !auth.IsAdmin(ctx) {
		return []UserResponse{}, appErrors.ErrUnauthorized
	}

	users, err := s.userRepo.ListByRole(ctx, domainUser.RoleUser)
	if err != nil {
		return []UserResponse{}, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}

	return responses, nil
}

// UpdateStatus approves or disables an account and notifies the other admins.
func (s *Service) UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (string, error) {
	if !auth.IsAdmin(ctx) {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	target, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return "", appErrors.ErrUserIDNotFound
		}
		return "", err
	}

	status := domainUser.StatusFromFlag(req.Status)
	if err := s.userRepo.UpdateStatus(ctx, target.ID, status); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return "", appErrors.ErrUserIDNotFound
		}
		return "", err
	}

	currentAdmin := auth.CurrentUser(ctx)
	logger.Info("User status updated",
		zap.Uint("user_id", target.ID),
		zap.String("email", target.Email),
		zap.String("status", string(status)),
		zap.String("admin", currentAdmin),
		zap.String("event", "user_status_updated"),
	)

	s.notifyAdmins(ctx, status, target.Email, currentAdmin)

	return MsgStatusUpdated, nil
}

func (s *Service) notifyAdmins(ctx context.Context, status domainUser.Status, userEmail, currentAdmin string) {
	if s.mailer == nil {
		return
	}

	admins, err := s.userRepo.ListAdminEmails(ctx)
	if err != nil {
		logger.Error("Failed to list admin emails", zap.Error(err))
		return
	}

	cc := make([]string, 0, len(admins))
	for _, email := range admins {
		if email != currentAdmin {
			cc = append(cc, email)
		}
	}

	subject := subjectAccountDisabled
	verb := "disabled"
	if status == domainUser.StatusActive {
		subject = subjectAccountApproved
		verb = "approved"
	}
	text := fmt.Sprintf("USER:- %s \n is %s by \nADMIN:-%s", userEmail, verb, currentAdmin)

	if err := s.mailer.SendSimpleMessage(ctx, currentAdmin, subject, text, cc); err != nil {
		logger.Warn("Failed to notify admins about status change",
			zap.String("email", userEmail),
			zap.Error(err),
		)
	}
}

func (s *Service) CheckToken(ctx context.Context) (string, error) {
	if _, ok := auth.PrincipalFrom(ctx); !ok {
		return "", appErrors.ErrUnauthorized
	}
	return MsgTokenValid, nil
}

// ChangePassword replaces the current user's password after checking the old one.
func (s *Service) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (string, error) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return "", appErrors.ErrUnauthorized
	}
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	user, err := s.userRepo.GetByEmail(ctx, principal.Email)
	if err != nil {
		return "", err
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		logger.Warn("Password change attempt with invalid old password",
			zap.Uint("user_id", user.ID),
			zap.String("email", user.Email),
			zap.String("event", "password_change_failed_invalid_old_password"),
		)
		return "", appErrors.ErrIncorrectOldPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return "", err
	}

	logger.Info("Password changed successfully",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("event", "password_change_success"),
	)

	return MsgPasswordUpdated, nil
}

// ForgotPassword stores a random temporary password and mails it to the owner.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) (string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.InvalidData(err)
	}

	if s.mailer == nil {
		return "", fmt.Errorf("mailer not configured")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Info("Password reset requested for non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "password_reset_requested_non_existent_email"),
			)
			return "", appErrors.ErrUserNotFoundByEmail
		}
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	tempPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return "", err
	}

	hashedPassword, err := utils.HashPassword(tempPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	// The stored hash changes only once the mail is out, so a failed
	// delivery leaves the current password working.
	if err := s.mailer.SendTemporaryPassword(ctx, user.Email, tempPassword); err != nil {
		return "", fmt.Errorf("failed to send temporary password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return "", err
	}

	logger.Info("Temporary password issued",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("event", "temporary_password_issued"),
	)

	return MsgTemporaryPasswordSet, nil
}
