package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
	"project-tracker/internal/model"
	"project-tracker/internal/user"
	"project-tracker/pkg/log"
	"project-tracker/pkg/response"
	"project-tracker/pkg/scope"
	"project-tracker/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

// fakeUseCase returns canned results; unset funcs fail the call with user.ErrNotFound.
type fakeUseCase struct {
	register    func(user.RegisterInput) (model.User, error)
	login       func(user.LoginInput) (user.TokenOutput, error)
	googleLogin func(string) (user.TokenOutput, error)
	update      func(model.Scope, user.UpdateInput) (model.User, error)
	findByEmail func(string) (model.User, error)
}

func (f *fakeUseCase) Register(ctx context.Context, in user.RegisterInput) (model.User, error) {
	if f.register == nil {
		return model.User{}, user.ErrNotFound
	}
	return f.register(in)
}
func (f *fakeUseCase) Login(ctx context.Context, in user.LoginInput) (user.TokenOutput, error) {
	if f.login == nil {
		return user.TokenOutput{}, user.ErrInvalidCredentials
	}
	return f.login(in)
}
func (f *fakeUseCase) Refresh(ctx context.Context, token string) (user.RefreshOutput, error) {
	return user.RefreshOutput{}, user.ErrInvalidRefreshToken
}
func (f *fakeUseCase) GoogleLogin(ctx context.Context, credential string) (user.TokenOutput, error) {
	if f.googleLogin == nil {
		return user.TokenOutput{}, user.ErrGoogleDisabled
	}
	return f.googleLogin(credential)
}
func (f *fakeUseCase) GoogleConfig(ctx context.Context) user.GoogleConfigOutput {
	return user.GoogleConfigOutput{ClientID: "cid", Enabled: true}
}
func (f *fakeUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	return model.User{ID: sc.UserID, Email: sc.Email}, nil
}
func (f *fakeUseCase) List(ctx context.Context, sc model.Scope) ([]model.User, error) {
	return []model.User{{ID: 1}, {ID: 2}}, nil
}
func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error) {
	return model.User{}, user.ErrNotFound
}
func (f *fakeUseCase) FindByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error) {
	if f.findByEmail == nil {
		return model.User{}, user.ErrNotFound
	}
	return f.findByEmail(email)
}
func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, in user.UpdateInput) (model.User, error) {
	if f.update == nil {
		return model.User{}, user.ErrForbidden
	}
	return f.update(sc, in)
}

var testTokens = scope.New("test-secret", "test", time.Hour, time.Hour)

func newTestRouter(uc user.UseCase) *gin.Engine {
	r := gin.New()
	mw := middleware.New(log.NewNop(), testTokens, 600, nil)
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), mw)
	return r
}

func bearer(t *testing.T, p scope.Payload) string {
	t.Helper()
	tok, err := testTokens.CreateAccessToken(p)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return "Bearer " + tok
}

func doRequest(r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return m
}

func TestRegisterHandler(t *testing.T) {
	uc := &fakeUseCase{
		register: func(in user.RegisterInput) (model.User, error) {
			if in.Email == "taken@example.com" {
				return model.User{}, user.ErrEmailExists
			}
			return model.User{ID: 5, Email: in.Email, FirstName: in.FirstName, Role: model.DefaultRole, IsActive: true}, nil
		},
	}
	r := newTestRouter(uc)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"Created", `{"email":"new@example.com","password":"longenough","first_name":"Ali"}`, http.StatusCreated, ""},
		{"Invalid email", `{"email":"nope","password":"longenough"}`, http.StatusBadRequest, "email"},
		{"Short password", `{"email":"a@example.com","password":"short"}`, http.StatusBadRequest, "password"},
		{"Malformed body", `{`, http.StatusBadRequest, "body"},
		{"Duplicate", `{"email":"taken@example.com","password":"longenough"}`, http.StatusConflict, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/users/register", tt.body, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantField != "" {
				errs, _ := decode(t, w)["errors"].(map[string]any)
				if _, ok := errs[tt.wantField]; !ok {
					t.Errorf("expected error for %q, got %v", tt.wantField, errs)
				}
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{
		login: func(in user.LoginInput) (user.TokenOutput, error) {
			if in.Password != "right" {
				return user.TokenOutput{}, user.ErrInvalidCredentials
			}
			return user.TokenOutput{Access: "a", Refresh: "r", User: model.User{ID: 1, Email: in.Email, LastLogin: &now}}, nil
		},
	}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/users/login", `{"email":"a@example.com","password":"right"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]any)
	if data["access"] != "a" || data["refresh"] != "r" {
		t.Errorf("unexpected tokens: %v", data)
	}
	if _, ok := data["created"]; ok {
		t.Errorf("password login should not report created")
	}
	u := data["user"].(map[string]any)
	if u["last_login"] != now.Format(response.DateTimeFormat) {
		t.Errorf("last_login = %v", u["last_login"])
	}

	w = doRequest(r, http.MethodPost, "/api/users/login", `{"email":"a@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGoogleLoginHandler(t *testing.T) {
	var got string
	uc := &fakeUseCase{
		googleLogin: func(cred string) (user.TokenOutput, error) {
			got = cred
			return user.TokenOutput{Access: "a", Refresh: "r", User: model.User{ID: 3}, Created: true}, nil
		},
	}
	r := newTestRouter(uc)

	if w := doRequest(r, http.MethodPost, "/api/users/google-login", `{}`, ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing credential status = %d, want 400", w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/users/google-login", `{"id_token":"tok-1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got != "tok-1" {
		t.Errorf("credential = %q, want tok-1", got)
	}
	if created, _ := decode(t, w)["data"].(map[string]any)["created"].(bool); !created {
		t.Errorf("expected created = true")
	}

	disabled := newTestRouter(&fakeUseCase{})
	if w := doRequest(disabled, http.MethodPost, "/api/users/google-login", `{"credential":"x"}`, ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("disabled status = %d, want 503", w.Code)
	}
}

func TestProtectedRoutes(t *testing.T) {
	uc := &fakeUseCase{
		findByEmail: func(email string) (model.User, error) {
			return model.User{ID: 9, Email: email}, nil
		},
		update: func(sc model.Scope, in user.UpdateInput) (model.User, error) {
			if sc.UserID != in.ID {
				return model.User{}, user.ErrForbidden
			}
			return model.User{ID: in.ID, FirstName: *in.FirstName}, nil
		},
	}
	r := newTestRouter(uc)
	auth := bearer(t, scope.Payload{UserID: 2, Email: "me@example.com"})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       string
		wantStatus int
	}{
		{"Me without token", http.MethodGet, "/api/users/me", "", "", http.StatusUnauthorized},
		{"Me", http.MethodGet, "/api/users/me", "", auth, http.StatusOK},
		{"List", http.MethodGet, "/api/users", "", auth, http.StatusOK},
		{"Detail missing", http.MethodGet, "/api/users/44", "", auth, http.StatusNotFound},
		{"Detail bad id", http.MethodGet, "/api/users/abc", "", auth, http.StatusBadRequest},
		{"Find by email", http.MethodGet, "/api/users/find-by-email?email=x@example.com", "", auth, http.StatusOK},
		{"Find by email without param", http.MethodGet, "/api/users/find-by-email", "", auth, http.StatusBadRequest},
		{"Update self", http.MethodPatch, "/api/users/2", `{"first_name":"Zeynep"}`, auth, http.StatusOK},
		{"Update other", http.MethodPut, "/api/users/3", `{"first_name":"Zeynep"}`, auth, http.StatusForbidden},
		{"Delete disabled", http.MethodDelete, "/api/users/2", "", auth, http.StatusMethodNotAllowed},
		{"Google config is public", http.MethodGet, "/api/users/google-config", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body, tt.auth)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestDeleteMessage(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})
	w := doRequest(r, http.MethodDelete, "/api/users/1", "", bearer(t, scope.Payload{UserID: 1}))
	if msg := decode(t, w)["message"]; msg != msgDeleteDisabled {
		t.Errorf("message = %v, want %q", msg, msgDeleteDisabled)
	}
}
