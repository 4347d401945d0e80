package scope

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Payload is the identity carried by a token.
type Payload struct {
	UserID  int64
	Email   string
	Role    string
	IsStaff bool
}

// Claims is the JWT body issued by Manager.
type Claims struct {
	jwt.StandardClaims
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	IsStaff   bool   `json:"is_staff,omitempty"`
	TokenType string `json:"token_type"`
}

// Manager issues and verifies access and refresh tokens.
type Manager interface {
	CreateAccessToken(p Payload) (string, error)
	CreateRefreshToken(p Payload) (string, error)
	VerifyAccessToken(token string) (Payload, error)
	VerifyRefreshToken(token string) (Payload, error)
}

type implManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// New creates an HS256 token Manager.
func New(secret, issuer string, accessTTL, refreshTTL time.Duration) Manager {
	return &implManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (m *implManager) CreateAccessToken(p Payload) (string, error) {
	return m.sign(p, TokenTypeAccess, m.accessTTL)
}

func (m *implManager) CreateRefreshToken(p Payload) (string, error) {
	return m.sign(p, TokenTypeRefresh, m.refreshTTL)
}

func (m *implManager) VerifyAccessToken(token string) (Payload, error) {
	return m.verify(token, TokenTypeAccess)
}

func (m *implManager) VerifyRefreshToken(token string) (Payload, error) {
	return m.verify(token, TokenTypeRefresh)
}

func (m *implManager) sign(p Payload, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Email:     p.Email,
		Role:      p.Role,
		IsStaff:   p.IsStaff,
		TokenType: tokenType,
	}

	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return ss, nil
}

func (m *implManager) verify(token, tokenType string) (Payload, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return Payload{}, ErrWrongTokenType
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Payload{}, ErrInvalidToken
	}
	return Payload{
		UserID:  id,
		Email:   claims.Email,
		Role:    claims.Role,
		IsStaff: claims.IsStaff,
	}, nil
}
