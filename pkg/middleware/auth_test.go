package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func validSession(userID uuid.UUID, token uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      token,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestAuthSession_StoresUserRole(t *testing.T) {
	sessions := &MockSessionRepository{}
	users := &MockUserRepository{}

	userID := uuid.New()
	token := uuid.New()

	sessions.On("FindValidSession", mock.Anything, token.String()).
		Return(validSession(userID, token), nil)
	users.On("FindByID", mock.Anything, userID).
		Return(&entity.User{
			Base:     entity.Base{ID: userID},
			Username: "boss",
			Role:     entity.RoleAdmin,
			IsActive: true,
		}, nil)

	var gotRole string
	var gotUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())

	AuthSession(sessions, users, zap.NewNop())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The context carries the account's actual role, not a fixed default
	assert.Equal(t, "admin", gotRole)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthSession_RejectsDisabledAccount(t *testing.T) {
	sessions := &MockSessionRepository{}
	users := &MockUserRepository{}

	userID := uuid.New()
	token := uuid.New()

	sessions.On("FindValidSession", mock.Anything, token.String()).
		Return(validSession(userID, token), nil)
	users.On("FindByID", mock.Anything, userID).
		Return(&entity.User{
			Base:     entity.Base{ID: userID},
			Role:     entity.RoleStaff,
			IsActive: false,
		}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a disabled account")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())

	AuthSession(sessions, users, zap.NewNop())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSession_RejectsMalformedHeader(t *testing.T) {
	sessions := &MockSessionRepository{}
	users := &MockUserRepository{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a bearer token")
	})

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer a b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/reservations", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		AuthSession(sessions, users, zap.NewNop())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}

	sessions.AssertNotCalled(t, "FindValidSession", mock.Anything, mock.Anything)
}

func TestAdmin_RejectsStaffRole(t *testing.T) {
	users := &MockUserRepository{}

	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).
		Return(&entity.User{
			Base:     entity.Base{ID: userID},
			Role:     entity.RoleStaff,
			IsActive: true,
		}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a non-admin")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/admin/rooms/x", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "staff"))

	Admin(users, zap.NewNop())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
