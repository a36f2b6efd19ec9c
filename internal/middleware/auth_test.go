package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agrirent/internal/entity"
	"agrirent/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile entity.Profile) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	_, err := s.FindByPhone(ctx, phone)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *stubUserRepository) UpdateActiveRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	user, ok := s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.ActiveRole = role
	return nil
}

func authTestSetup() (*stubUserRepository, *service.TokenService, *gin.Engine) {
	repo := &stubUserRepository{users: make(map[uuid.UUID]*entity.User)}
	tokens := service.NewTokenService("test-secret", time.Hour, service.NewRedisRevocationStore(nil))

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(repo, tokens).RequireAuth(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID.String()})
	})
	return repo, tokens, router
}

func doAuthRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	_, _, router := authTestSetup()

	if w := doAuthRequest(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: expected 401, got %d", w.Code)
	}
	if w := doAuthRequest(router, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: expected 401, got %d", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	_, _, router := authTestSetup()

	if w := doAuthRequest(router, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestRequireAuthUnknownUser(t *testing.T) {
	_, tokens, router := authTestSetup()

	token, err := tokens.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if w := doAuthRequest(router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for token of a missing user, got %d", w.Code)
	}
}

func TestRequireAuthDeactivatedUser(t *testing.T) {
	repo, tokens, router := authTestSetup()

	user := &entity.User{ID: uuid.New(), PrimaryRole: entity.RoleFarmer, ActiveRole: entity.RoleFarmer, IsActive: false}
	repo.users[user.ID] = user

	token, err := tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if w := doAuthRequest(router, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for deactivated account, got %d", w.Code)
	}
}

func TestRequireAuthStashesUser(t *testing.T) {
	repo, tokens, router := authTestSetup()

	user := &entity.User{ID: uuid.New(), PrimaryRole: entity.RoleFarmer, ActiveRole: entity.RoleFarmer, IsActive: true}
	repo.users[user.ID] = user

	token, err := tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := doAuthRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["user_id"] != user.ID.String() {
		t.Errorf("expected stashed user id %s, got %v", user.ID, body["user_id"])
	}
}
