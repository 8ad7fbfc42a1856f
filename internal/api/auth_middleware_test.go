package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tmsiti/internal/config"
	"tmsiti/internal/entity"
	"tmsiti/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fakeRepo backs handler tests with an in-memory user table. Methods the
// middleware never touches panic through the embedded interface.
type fakeRepo struct {
	model.Repository

	mu       sync.Mutex
	users    map[uint]*entity.DbUser
	contacts []*entity.DbContact
	news     []entity.DbNews
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[uint]*entity.DbUser{}}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRepo) CreateContact(_ context.Context, item *entity.DbContact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = uint(len(f.contacts) + 1)
	f.contacts = append(f.contacts, item)
	return nil
}

func (f *fakeRepo) ListNews(_ context.Context, params *entity.ListQuery) ([]entity.DbNews, *entity.PageMeta, error) {
	if err := entity.ValidatePageBounds(params.Page, params.Size); err != nil {
		return nil, nil, err
	}
	meta := &entity.PageMeta{Total: int64(len(f.news)), Page: params.Page, Size: params.Size, Pages: 1}
	return f.news, meta, nil
}

func newTestHandler(t *testing.T, repo model.Repository) *HTTPHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		JWTSecret:            "test-secret",
		JWTIssuer:            "tmsiti-test",
		JWTExpirationMinutes: 60,
		UploadMaxBytes:       1 << 20,
	}
	handler, err := NewHTTPHandler(cfg, repo, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewHTTPHandler: %v", err)
	}
	return handler
}

func (f *fakeRepo) addUser(user entity.DbUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = &user
}

func activeUser(id uint, role string) entity.DbUser {
	return entity.DbUser{
		ID:            id,
		Email:         "staff@tmsiti.uz",
		FullName:      "Staff Member",
		Role:          role,
		Status:        entity.UserStatusActive,
		IsActive:      true,
		EmailVerified: true,
	}
}

func authRouter(handler *HTTPHandler) *gin.Engine {
	router := gin.New()
	authed := router.Group("/", handler.AuthMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(200, gin.H{"email": user.Email, "role": user.Role})
	})
	authed.GET("/admin", handler.RequireSuperAdmin(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	authed.GET("/staff", handler.RequireModerator(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func issueToken(t *testing.T, handler *HTTPHandler, user entity.DbUser) string {
	t.Helper()
	token, _, err := handler.authManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestAuthMiddlewareRejectsAnonymous(t *testing.T) {
	handler := newTestHandler(t, newFakeRepo())
	router := authRouter(handler)

	cases := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", ErrCodeUnauthorized},
		{"not bearer", "Basic abc123", ErrCodeUnauthorized},
		{"empty token", "Bearer ", ErrCodeUnauthorized},
		{"garbage token", "Bearer not.a.jwt", ErrCodeSessionExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", recorder.Code)
			}
			var body APIError
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", body.Code, tc.wantCode)
			}
		})
	}
}

func TestAuthMiddlewareLoadsCurrentUser(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(7, entity.UserRoleModerator))
	handler := newTestHandler(t, repo)
	router := authRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, activeUser(7, entity.UserRoleModerator)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["email"] != "staff@tmsiti.uz" || body["role"] != entity.UserRoleModerator {
		t.Fatalf("unexpected identity: %v", body)
	}
}

func TestAuthMiddlewareRejectsDeletedAndSuspendedAccounts(t *testing.T) {
	repo := newFakeRepo()
	suspended := activeUser(3, entity.UserRoleAdmin)
	suspended.Status = entity.UserStatusSuspended
	repo.addUser(suspended)
	handler := newTestHandler(t, repo)
	router := authRouter(handler)

	// Token for an account that no longer exists.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, activeUser(99, entity.UserRoleAdmin)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("deleted account: status = %d, want 401", recorder.Code)
	}

	// Token predating the suspension must stop working.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, suspended))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("suspended account: status = %d, want 401", recorder.Code)
	}
	var body APIError
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != ErrCodeAccountSuspended {
		t.Fatalf("code = %q, want %q", body.Code, ErrCodeAccountSuspended)
	}

	// A mid-lockout account is rejected too.
	locked := activeUser(4, entity.UserRoleAdmin)
	locked.Email = "locked@tmsiti.uz"
	until := time.Now().Add(10 * time.Minute)
	locked.LockedUntil = &until
	repo.addUser(locked)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, locked))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("locked account: status = %d, want 401", recorder.Code)
	}
}

func TestRoleGates(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(1, entity.UserRoleSuperAdmin))
	repo.addUser(func() entity.DbUser {
		u := activeUser(2, entity.UserRoleModerator)
		u.Email = "moderator@tmsiti.uz"
		return u
	}())
	handler := newTestHandler(t, repo)
	router := authRouter(handler)

	do := func(path string, userID uint, role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		user := activeUser(userID, role)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, user))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	if rec := do("/admin", 1, entity.UserRoleSuperAdmin); rec.Code != http.StatusOK {
		t.Fatalf("superadmin on /admin: status = %d", rec.Code)
	}
	if rec := do("/admin", 2, entity.UserRoleModerator); rec.Code != http.StatusForbidden {
		t.Fatalf("moderator on /admin: status = %d, want 403", rec.Code)
	}
	if rec := do("/staff", 2, entity.UserRoleModerator); rec.Code != http.StatusOK {
		t.Fatalf("moderator on /staff: status = %d", rec.Code)
	}
	if rec := do("/staff", 1, entity.UserRoleSuperAdmin); rec.Code != http.StatusOK {
		t.Fatalf("superadmin on /staff: status = %d", rec.Code)
	}
}

func TestRoleGateMessageFollowsLang(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(2, entity.UserRoleModerator))
	handler := newTestHandler(t, repo)
	router := authRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/admin?lang=en", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, handler, activeUser(2, entity.UserRoleModerator)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", recorder.Code)
	}
	var body APIError
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message == "" {
		t.Fatal("expected a localized refusal message")
	}
}
