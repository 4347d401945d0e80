package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var (
	ErrDisabled        = errors.New("google sign-in is not configured")
	ErrInvalidToken    = errors.New("invalid google credential")
	ErrEmailUnverified = errors.New("google email is not verified")
)

// Identity is the verified Google profile of a credential.
type Identity struct {
	Subject    string
	Email      string
	GivenName  string
	FamilyName string
}

// Verifier checks Google ID tokens issued for the configured client id.
type Verifier interface {
	ClientID() string
	Enabled() bool
	Verify(ctx context.Context, credential string) (Identity, error)
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type implVerifier struct {
	clientID string
	validate validateFunc
}

// New creates a Verifier. An empty clientID yields a disabled verifier.
func New(ctx context.Context, clientID string) (Verifier, error) {
	v := &implVerifier{clientID: clientID}
	if clientID == "" {
		return v, nil
	}

	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	if err != nil {
		return nil, fmt.Errorf("failed to create id token validator: %w", err)
	}
	v.validate = validator.Validate
	return v, nil
}

func (v *implVerifier) ClientID() string { return v.clientID }

func (v *implVerifier) Enabled() bool { return v.clientID != "" && v.validate != nil }

func (v *implVerifier) Verify(ctx context.Context, credential string) (Identity, error) {
	if !v.Enabled() {
		return Identity{}, ErrDisabled
	}

	payload, err := v.validate(ctx, credential, v.clientID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id := Identity{
		Subject:    payload.Subject,
		Email:      claim(payload, "email"),
		GivenName:  claim(payload, "given_name"),
		FamilyName: claim(payload, "family_name"),
	}
	if id.Email == "" {
		return Identity{}, ErrInvalidToken
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return Identity{}, ErrEmailUnverified
	}
	return id, nil
}

func claim(p *idtoken.Payload, key string) string {
	s, _ := p.Claims[key].(string)
	return s
}
