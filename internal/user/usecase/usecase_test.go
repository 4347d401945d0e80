package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	"project-tracker/internal/user/usecase"
	"project-tracker/pkg/encrypter"
	"project-tracker/pkg/googleauth"
	"project-tracker/pkg/scope"
)

var (
	enc    = encrypter.New(bcrypt.MinCost)
	tokens = scope.New("test-secret", "test", time.Hour, 24*time.Hour)
)

func strPtr(s string) *string { return &s }

func hashed(t *testing.T, pw string) *string {
	t.Helper()
	h, err := enc.HashPassword(pw)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &h
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults role and hashes password", func(t *testing.T) {
		r := newMemRepo()
		uc := usecase.New(r, &mockLogger{}, enc, tokens, nil)

		u, err := uc.Register(ctx, user.RegisterInput{Email: " Ayse@Example.com ", Password: "s3cret-pass", FirstName: "Ayşe"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Email != "ayse@example.com" {
			t.Errorf("email not normalized: %s", u.Email)
		}
		if u.Role != model.DefaultRole {
			t.Errorf("role = %s, want %s", u.Role, model.DefaultRole)
		}
		if u.PasswordHash == nil || *u.PasswordHash == "s3cret-pass" {
			t.Errorf("password not hashed")
		}
		if !u.IsActive || u.IsStaff {
			t.Errorf("unexpected flags: active=%v staff=%v", u.IsActive, u.IsStaff)
		}
	})

	t.Run("Duplicate email", func(t *testing.T) {
		r := newMemRepo(model.User{ID: 1, Email: "ayse@example.com"})
		uc := usecase.New(r, &mockLogger{}, enc, tokens, nil)

		_, err := uc.Register(ctx, user.RegisterInput{Email: "AYSE@example.com", Password: "x"})
		if !errors.Is(err, user.ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   model.User
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			stored:   model.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "pw-123456"), IsActive: true},
			email:    "A@example.com",
			password: "pw-123456",
		},
		{
			name:     "Wrong password",
			stored:   model.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "pw-123456"), IsActive: true},
			email:    "a@example.com",
			password: "nope",
			wantErr:  user.ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			stored:   model.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "pw-123456"), IsActive: true},
			email:    "b@example.com",
			password: "pw-123456",
			wantErr:  user.ErrInvalidCredentials,
		},
		{
			name:     "Google-only account",
			stored:   model.User{ID: 1, Email: "a@example.com", IsActive: true},
			email:    "a@example.com",
			password: "",
			wantErr:  user.ErrInvalidCredentials,
		},
		{
			name:     "Inactive account",
			stored:   model.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "pw-123456")},
			email:    "a@example.com",
			password: "pw-123456",
			wantErr:  user.ErrInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMemRepo(tt.stored)
			uc := usecase.New(r, &mockLogger{}, enc, tokens, nil)

			out, err := uc.Login(ctx, user.LoginInput{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			p, err := tokens.VerifyAccessToken(out.Access)
			if err != nil || p.UserID != tt.stored.ID {
				t.Errorf("bad access token: %v %+v", err, p)
			}
			if _, err := tokens.VerifyRefreshToken(out.Refresh); err != nil {
				t.Errorf("bad refresh token: %v", err)
			}
			if r.users[tt.stored.ID].LastLogin == nil {
				t.Errorf("last login not recorded")
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo(
		model.User{ID: 1, Email: "a@example.com", IsActive: true},
		model.User{ID: 2, Email: "b@example.com"},
	)
	uc := usecase.New(r, &mockLogger{}, enc, tokens, nil)

	refresh, _ := tokens.CreateRefreshToken(scope.Payload{UserID: 1})
	out, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tokens.VerifyAccessToken(out.Access); err != nil {
		t.Errorf("bad access token: %v", err)
	}

	access, _ := tokens.CreateAccessToken(scope.Payload{UserID: 1})
	if _, err := uc.Refresh(ctx, access); !errors.Is(err, user.ErrInvalidRefreshToken) {
		t.Errorf("access token accepted as refresh token: %v", err)
	}

	inactive, _ := tokens.CreateRefreshToken(scope.Payload{UserID: 2})
	if _, err := uc.Refresh(ctx, inactive); !errors.Is(err, user.ErrInactive) {
		t.Errorf("expected ErrInactive, got %v", err)
	}

	gone, _ := tokens.CreateRefreshToken(scope.Payload{UserID: 99})
	if _, err := uc.Refresh(ctx, gone); !errors.Is(err, user.ErrInvalidRefreshToken) {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		uc := usecase.New(newMemRepo(), &mockLogger{}, enc, tokens, &mockVerifier{})
		if _, err := uc.GoogleLogin(ctx, "cred"); !errors.Is(err, user.ErrGoogleDisabled) {
			t.Errorf("expected ErrGoogleDisabled, got %v", err)
		}
		if cfg := uc.GoogleConfig(ctx); cfg.Enabled || cfg.ClientID != "" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("Invalid credential", func(t *testing.T) {
		v := &mockVerifier{enabled: true, err: googleauth.ErrInvalidToken}
		uc := usecase.New(newMemRepo(), &mockLogger{}, enc, tokens, v)
		if _, err := uc.GoogleLogin(ctx, "cred"); !errors.Is(err, user.ErrInvalidGoogleToken) {
			t.Errorf("expected ErrInvalidGoogleToken, got %v", err)
		}
	})

	t.Run("Creates account on first login", func(t *testing.T) {
		r := newMemRepo()
		v := &mockVerifier{enabled: true, identity: googleauth.Identity{Email: "New@Example.com", GivenName: "Can", FamilyName: "Demir"}}
		uc := usecase.New(r, &mockLogger{}, enc, tokens, v)

		out, err := uc.GoogleLogin(ctx, "cred")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created {
			t.Errorf("expected created = true")
		}
		if out.User.Email != "new@example.com" || out.User.FirstName != "Can" || out.User.PasswordHash != nil {
			t.Errorf("unexpected user: %+v", out.User)
		}
		if cfg := uc.GoogleConfig(ctx); !cfg.Enabled || cfg.ClientID != "client-1" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("Updates changed names of existing account", func(t *testing.T) {
		r := newMemRepo(model.User{ID: 7, Email: "old@example.com", FirstName: "Eski", LastName: "Soyad", IsActive: true})
		v := &mockVerifier{enabled: true, identity: googleauth.Identity{Email: "old@example.com", GivenName: "Yeni"}}
		uc := usecase.New(r, &mockLogger{}, enc, tokens, v)

		out, err := uc.GoogleLogin(ctx, "cred")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created {
			t.Errorf("expected created = false")
		}
		if out.User.FirstName != "Yeni" || out.User.LastName != "Soyad" {
			t.Errorf("unexpected names: %s %s", out.User.FirstName, out.User.LastName)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	seed := func() *memRepo {
		return newMemRepo(
			model.User{ID: 1, Email: "admin@example.com", Role: "yönetici", IsStaff: true, IsActive: true},
			model.User{ID: 2, Email: "member@example.com", Role: "üye", IsActive: true},
			model.User{ID: 3, Email: "other@example.com", Role: "üye", IsActive: true},
		)
	}

	tests := []struct {
		name     string
		sc       model.Scope
		input    user.UpdateInput
		wantErr  error
		wantRole string
		wantName string
	}{
		{
			name:     "Self update keeps role",
			sc:       model.Scope{UserID: 2},
			input:    user.UpdateInput{ID: 2, FirstName: strPtr("Mehmet"), Role: strPtr("yönetici")},
			wantRole: "üye",
			wantName: "Mehmet",
		},
		{
			name:     "Staff may change role",
			sc:       model.Scope{UserID: 1, IsStaff: true},
			input:    user.UpdateInput{ID: 2, Role: strPtr("yönetici")},
			wantRole: "yönetici",
		},
		{
			name:    "Other member forbidden",
			sc:      model.Scope{UserID: 3},
			input:   user.UpdateInput{ID: 2, FirstName: strPtr("x")},
			wantErr: user.ErrForbidden,
		},
		{
			name:    "Email taken",
			sc:      model.Scope{UserID: 2},
			input:   user.UpdateInput{ID: 2, Email: strPtr("OTHER@example.com")},
			wantErr: user.ErrEmailExists,
		},
		{
			name:    "Missing user",
			sc:      model.Scope{UserID: 1, IsStaff: true},
			input:   user.UpdateInput{ID: 42},
			wantErr: user.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(seed(), &mockLogger{}, enc, tokens, nil)
			u, err := uc.Update(ctx, tt.sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if u.Role != tt.wantRole {
				t.Errorf("role = %s, want %s", u.Role, tt.wantRole)
			}
			if tt.wantName != "" && u.FirstName != tt.wantName {
				t.Errorf("first name = %s, want %s", u.FirstName, tt.wantName)
			}
		})
	}
}

func TestLookups(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo(
		model.User{ID: 1, Email: "a@example.com"},
		model.User{ID: 2, Email: "b@example.com"},
	)
	uc := usecase.New(r, &mockLogger{}, enc, tokens, nil)
	sc := model.Scope{UserID: 2}

	me, err := uc.Me(ctx, sc)
	if err != nil || me.ID != 2 {
		t.Errorf("Me() = %+v, %v", me, err)
	}

	found, err := uc.FindByEmail(ctx, sc, "A@EXAMPLE.COM")
	if err != nil || found.ID != 1 {
		t.Errorf("FindByEmail() = %+v, %v", found, err)
	}
	if _, err := uc.FindByEmail(ctx, sc, "none@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.FindByEmail(ctx, sc, ""); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty email, got %v", err)
	}

	all, err := uc.List(ctx, sc)
	if err != nil || len(all) != 2 {
		t.Errorf("List() = %d users, %v", len(all), err)
	}

	r.getErr = errors.New("db down")
	if _, err := uc.Detail(ctx, sc, 1); err == nil || errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected repository error, got %v", err)
	}
}
