package usecase

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo, f := newFakes()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	user, err := svc.Register(ctx, &request.RegisterRequest{Username: "anna", Password: "geheim123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "geheim123", f.users.users[0].PasswordHash)

	_, err = svc.Register(ctx, &request.RegisterRequest{Username: "anna", Password: "anders123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "anna", Password: "geheim123"}, SessionMeta{UserAgent: "test"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, entity.RoleGuest, resp.Role)
	assert.Equal(t, "anna", resp.Username)

	token, err := uuid.Parse(resp.Token)
	require.NoError(t, err)
	session, err := f.sessions.FindValidSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "test", *session.UserAgent)
	assert.Nil(t, session.IPAddress)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	repo, f := newFakes()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "ab", Password: "123"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.users.users)
}

func TestAuthService_LoginFailuresCreateNoSession(t *testing.T) {
	repo, f := newFakes()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "anna", Password: "geheim123"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  request.LoginRequest
	}{
		{"wrong password", request.LoginRequest{Username: "anna", Password: "falsch"}},
		{"unknown user", request.LoginRequest{Username: "bert", Password: "geheim123"}},
		{"empty", request.LoginRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req, SessionMeta{})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
	assert.Empty(t, f.sessions.sessions)
}

func TestAuthService_SessionExpiry(t *testing.T) {
	repo, f := newFakes()
	svc := NewAuthService(repo, testConfig(), zap.NewNop()).(*authService)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "anna", Password: "geheim123"})
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "anna", Password: "geheim123"}, SessionMeta{})
	require.NoError(t, err)

	assert.Equal(t, now.Add(24*time.Hour), resp.ExpiresAt)
	assert.Len(t, f.sessions.sessions, 1)
}

func TestAuthService_DemoLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled by default", func(t *testing.T) {
		repo, f := newFakes()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		_, err := svc.DemoLogin(ctx, &request.DemoLoginRequest{Role: "gast"}, SessionMeta{})
		assert.ErrorIs(t, err, ErrDemoLoginDisabled)
		assert.Empty(t, f.sessions.sessions)
	})

	t.Run("maps roles to fixed users", func(t *testing.T) {
		repo, _ := newFakes()
		cfg := testConfig()
		cfg.App.DemoRegistration = true
		svc := NewAuthService(repo, cfg, zap.NewNop())

		guest, err := svc.DemoLogin(ctx, &request.DemoLoginRequest{Role: "gast"}, SessionMeta{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), guest.UserID)
		assert.Equal(t, entity.RoleGuest, guest.Role)

		staff, err := svc.DemoLogin(ctx, &request.DemoLoginRequest{Role: "mitarbeiter"}, SessionMeta{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), staff.UserID)
		assert.Equal(t, entity.RoleStaff, staff.Role)

		other, err := svc.DemoLogin(ctx, &request.DemoLoginRequest{Role: "irgendwas"}, SessionMeta{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), other.UserID)
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo, f := newFakes()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "anna", Password: "geheim123"})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "anna", Password: "geheim123"}, SessionMeta{})
	require.NoError(t, err)
	token := uuid.MustParse(resp.Token)

	require.NoError(t, svc.Logout(ctx, token))

	session, err := f.sessions.FindValidSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
