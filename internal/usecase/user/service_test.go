package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainUser "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/user"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/mocks"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/testutil"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/user"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc    *user.Service
	repo   domainUser.Repository
	tokens *auth.TokenService
	mailer *mocks.MockMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := postgres.NewUserRepository(testutil.NewTestDB(t))
	tokens, err := auth.NewTokenService([]byte("test-signing-key-0123456789abcdef"), time.Hour)
	require.NoError(t, err)
	mailer := mocks.NewMockMailer(gomock.NewController(t))

	return &fixture{
		svc:    user.NewService(repo, tokens, mailer),
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
	}
}

func (f *fixture) seed(t *testing.T, email, password, role string, status domainUser.Status) *domainUser.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &domainUser.User{
		Name:          "Seeded " + role,
		ContactNumber: "3001234567",
		Email:         email,
		PasswordHash:  hash,
		Status:        status,
		Role:          role,
	}
	require.NoError(t, f.repo.Create(context.Background(), u))
	return u
}

func as(u *domainUser.User) context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{UserID: u.ID, Email: u.Email, Role: u.Role})
}

func TestService_SignUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.svc.SignUp(ctx, &user.SignUpRequest{
		Name:          "Ana",
		ContactNumber: "3001234567",
		Email:         "ana@cafe.com",
		Password:      "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.MsgRegistered, msg)

	stored, err := f.repo.GetByEmail(ctx, "ana@cafe.com")
	require.NoError(t, err)
	assert.Equal(t, domainUser.StatusPending, stored.Status)
	assert.Equal(t, domainUser.RoleUser, stored.Role)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "secret"))
}

func TestService_SignUpDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "ana@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusPending)

	_, err := f.svc.SignUp(context.Background(), &user.SignUpRequest{
		Name:          "Other Ana",
		ContactNumber: "3009999999",
		Email:         "ana@cafe.com",
		Password:      "another",
	})
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestService_SignUpInvalidData(t *testing.T) {
	cases := map[string]user.SignUpRequest{
		"blank name":    {Name: "   ", ContactNumber: "3001234567", Email: "a@cafe.com", Password: "x"},
		"bad email":     {Name: "Ana", ContactNumber: "3001234567", Email: "not-an-email", Password: "x"},
		"bad phone":     {Name: "Ana", ContactNumber: "call me", Email: "a@cafe.com", Password: "x"},
		"missing field": {Name: "Ana", Email: "a@cafe.com", Password: "x"},
		"long password": {Name: "Ana", ContactNumber: "3001234567", Email: "a@cafe.com", Password: strings.Repeat("é", 72)},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.SignUp(context.Background(), &req)
			code, ok := appErrors.CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.CodeInvalidData, code)
		})
	}
}

func TestService_Login(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "pending@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusPending)
	f.seed(t, "active@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusActive)
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.svc.Login(ctx, &user.LoginRequest{Email: "ghost@cafe.com", Password: "secret"})
		assert.ErrorIs(t, err, appErrors.ErrBadCredentials)
	})

	t.Run("wrong password is reported before approval", func(t *testing.T) {
		_, err := f.svc.Login(ctx, &user.LoginRequest{Email: "pending@cafe.com", Password: "wrong"})
		assert.ErrorIs(t, err, appErrors.ErrBadCredentials)
	})

	t.Run("pending approval", func(t *testing.T) {
		_, err := f.svc.Login(ctx, &user.LoginRequest{Email: "pending@cafe.com", Password: "secret"})
		assert.ErrorIs(t, err, appErrors.ErrPendingApproval)
	})

	t.Run("active user gets a token", func(t *testing.T) {
		resp, err := f.svc.Login(ctx, &user.LoginRequest{Email: "active@cafe.com", Password: "secret"})
		require.NoError(t, err)

		claims, err := f.tokens.ParseClaims(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "active@cafe.com", claims.Subject)
		assert.Equal(t, domainUser.RoleUser, claims.Role)
		assert.True(t, f.tokens.Validate(resp.Token, "active@cafe.com"))
	})
}

func TestService_GetAllUsers(t *testing.T) {
	f := newFixture(t)
	admin := f.seed(t, "admin@cafe.com", "secret", domainUser.RoleAdmin, domainUser.StatusActive)
	regular := f.seed(t, "user@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusActive)
	f.seed(t, "pending@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusPending)

	t.Run("admin sees only regular users", func(t *testing.T) {
		users, err := f.svc.GetAllUsers(as(admin))
		require.NoError(t, err)
		require.Len(t, users, 2)

		byEmail := map[string]user.UserResponse{}
		for _, u := range users {
			byEmail[u.Email] = u
		}
		assert.Equal(t, "true", byEmail["user@cafe.com"].Status)
		assert.Equal(t, "false", byEmail["pending@cafe.com"].Status)
		assert.NotContains(t, byEmail, "admin@cafe.com")
	})

	t.Run("non admin gets an empty list", func(t *testing.T) {
		users, err := f.svc.GetAllUsers(as(regular))
		assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := f.svc.GetAllUsers(context.Background())
		assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	admin := f.seed(t, "admin@cafe.com", "secret", domainUser.RoleAdmin, domainUser.StatusActive)
	f.seed(t, "second-admin@cafe.com", "secret", domainUser.RoleAdmin, domainUser.StatusActive)
	target := f.seed(t, "user@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusPending)

	f.mailer.EXPECT().
		SendSimpleMessage(gomock.Any(), "admin@cafe.com", "Account Approved", gomock.Any(), []string{"second-admin@cafe.com"}).
		Return(nil)

	msg, err := f.svc.UpdateStatus(as(admin), &user.UpdateStatusRequest{ID: target.ID, Status: "true"})
	require.NoError(t, err)
	assert.Equal(t, user.MsgStatusUpdated, msg)

	stored, err := f.repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domainUser.StatusActive, stored.Status)
}

func TestService_UpdateStatusDisableSurvivesMailFailure(t *testing.T) {
	f := newFixture(t)
	admin := f.seed(t, "admin@cafe.com", "secret", domainUser.RoleAdmin, domainUser.StatusActive)
	target := f.seed(t, "user@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusActive)

	f.mailer.EXPECT().
		SendSimpleMessage(gomock.Any(), "admin@cafe.com", "Account Disabled", gomock.Any(), gomock.Len(0)).
		Return(errors.New("smtp down"))

	_, err := f.svc.UpdateStatus(as(admin), &user.UpdateStatusRequest{ID: target.ID, Status: "false"})
	require.NoError(t, err)

	stored, err := f.repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domainUser.StatusPending, stored.Status)
}

func TestService_UpdateStatusRejections(t *testing.T) {
	f := newFixture(t)
	admin := f.seed(t, "admin@cafe.com", "secret", domainUser.RoleAdmin, domainUser.StatusActive)
	regular := f.seed(t, "user@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusActive)

	_, err := f.svc.UpdateStatus(as(regular), &user.UpdateStatusRequest{ID: regular.ID, Status: "true"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = f.svc.UpdateStatus(as(admin), &user.UpdateStatusRequest{ID: 9999, Status: "true"})
	assert.ErrorIs(t, err, appErrors.ErrUserIDNotFound)

	_, err = f.svc.UpdateStatus(as(admin), &user.UpdateStatusRequest{ID: regular.ID, Status: "maybe"})
	code, _ := appErrors.CodeOf(err)
	assert.Equal(t, appErrors.CodeInvalidData, code)
}

func TestService_CheckToken(t *testing.T) {
	f := newFixture(t)
	regular := f.seed(t, "user@cafe.com", "secret", domainUser.RoleUser, domainUser.StatusActive)

	msg, err := f.svc.CheckToken(as(regular))
	require.NoError(t, err)
	assert.Equal(t, "true", msg)

	_, err = f.svc.CheckToken(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	regular := f.seed(t, "user@cafe.com", "old-secret", domainUser.RoleUser, domainUser.StatusActive)
	ctx := as(regular)

	t.Run("wrong old password leaves hash unchanged", func(t *testing.T) {
		_, err := f.svc.ChangePassword(ctx, &user.ChangePasswordRequest{OldPassword: "nope", NewPassword: "new-secret"})
		assert.ErrorIs(t, err, appErrors.ErrIncorrectOldPassword)

		stored, err := f.repo.GetByEmail(context.Background(), regular.Email)
		require.NoError(t, err)
		assert.Equal(t, regular.PasswordHash, stored.PasswordHash)
	})

	t.Run("correct old password", func(t *testing.T) {
		msg, err := f.svc.ChangePassword(ctx, &user.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "new-secret"})
		require.NoError(t, err)
		assert.Equal(t, user.MsgPasswordUpdated, msg)

		stored, err := f.repo.GetByEmail(context.Background(), regular.Email)
		require.NoError(t, err)
		assert.True(t, utils.CheckPassword(stored.PasswordHash, "new-secret"))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := f.svc.ChangePassword(context.Background(), &user.ChangePasswordRequest{OldPassword: "a", NewPassword: "b"})
		assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	})
}

func TestService_ForgotPassword(t *testing.T) {
	f := newFixture(t)
	regular := f.seed(t, "user@cafe.com", "old-secret", domainUser.RoleUser, domainUser.StatusActive)

	var mailed string
	f.mailer.EXPECT().
		SendTemporaryPassword(gomock.Any(), regular.Email, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, password string) error {
			mailed = password
			return nil
		})

	msg, err := f.svc.ForgotPassword(context.Background(), &user.ForgotPasswordRequest{Email: regular.Email})
	require.NoError(t, err)
	assert.Equal(t, user.MsgTemporaryPasswordSet, msg)

	require.Len(t, mailed, utils.TemporaryPasswordLength)
	stored, err := f.repo.GetByEmail(context.Background(), regular.Email)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, mailed))
	assert.False(t, utils.CheckPassword(stored.PasswordHash, "old-secret"))
}

func TestService_ForgotPasswordUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ForgotPassword(context.Background(), &user.ForgotPasswordRequest{Email: "ghost@cafe.com"})
	assert.ErrorIs(t, err, appErrors.ErrUserNotFoundByEmail)
}

func TestService_ForgotPasswordMailFailure(t *testing.T) {
	f := newFixture(t)
	regular := f.seed(t, "user@cafe.com", "old-secret", domainUser.RoleUser, domainUser.StatusActive)

	f.mailer.EXPECT().
		SendTemporaryPassword(gomock.Any(), regular.Email, gomock.Any()).
		Return(errors.New("smtp down"))

	_, err := f.svc.ForgotPassword(context.Background(), &user.ForgotPasswordRequest{Email: regular.Email})
	require.Error(t, err)
	_, coded := appErrors.CodeOf(err)
	assert.False(t, coded)

	stored, err := f.repo.GetByEmail(context.Background(), regular.Email)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "old-secret"))
}

func TestService_ForgotPasswordWithoutMailer(t *testing.T) {
	f := newFixture(t)
	regular := f.seed(t, "user@cafe.com", "old-secret", domainUser.RoleUser, domainUser.StatusActive)
	svc := user.NewService(f.repo, f.tokens, nil)

	_, err := svc.ForgotPassword(context.Background(), &user.ForgotPasswordRequest{Email: regular.Email})
	require.Error(t, err)

	stored, err := f.repo.GetByEmail(context.Background(), regular.Email)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "old-secret"))
}
