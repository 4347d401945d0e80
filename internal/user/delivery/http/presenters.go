package http

import (
	"strings"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	"project-tracker/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Email     string `json:"email"      binding:"required,email,max=254"`
	Password  string `json:"password"   binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name"  binding:"max=150"`
	Role      string `json:"role"       binding:"max=50"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Role:      strings.TrimSpace(r.Role),
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type refreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

// googleLoginReq accepts the ID token under either key sent by Google sign-in clients.
type googleLoginReq struct {
	Credential string `json:"credential"`
	IDToken    string `json:"id_token"`
}

func (r googleLoginReq) token() string {
	if r.Credential != "" {
		return r.Credential
	}
	return r.IDToken
}

type findByEmailReq struct {
	Email string `form:"email"`
}

type updateReq struct {
	ID        int64   `json:"-"`
	Email     *string `json:"email"      binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name"  binding:"omitempty,max=150"`
	Role      *string `json:"role"       binding:"omitempty,max=50"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID         int64              `json:"id"`
	Email      string             `json:"email"`
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	FullName   string             `json:"full_name"`
	Role       string             `json:"role"`
	IsStaff    bool               `json:"is_staff"`
	IsActive   bool               `json:"is_active"`
	DateJoined response.DateTime  `json:"date_joined"`
	LastLogin  *response.DateTime `json:"last_login"`
}

func newUserResp(u model.User) userResp {
	resp := userResp{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Role:       u.Role,
		IsStaff:    u.IsStaff,
		IsActive:   u.IsActive,
		DateJoined: response.DateTime(u.DateJoined),
	}
	if u.LastLogin != nil {
		ll := response.DateTime(*u.LastLogin)
		resp.LastLogin = &ll
	}
	return resp
}

func newUserListResp(users []model.User) []userResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return out
}

type tokenResp struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    userResp `json:"user"`
	Created *bool    `json:"created,omitempty"`
}

func newTokenResp(out user.TokenOutput) tokenResp {
	return tokenResp{
		Access:  out.Access,
		Refresh: out.Refresh,
		User:    newUserResp(out.User),
	}
}

func newGoogleTokenResp(out user.TokenOutput) tokenResp {
	resp := newTokenResp(out)
	resp.Created = &out.Created
	return resp
}

type refreshResp struct {
	Access string `json:"access"`
}

type googleConfigResp struct {
	ClientID string `json:"client_id"`
	Enabled  bool   `json:"enabled"`
}
