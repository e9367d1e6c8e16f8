package websocket

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

var (
	// ErrInvalidToken is returned when JWT validation fails
	ErrInvalidToken = errors.New("invalid token")
	// ErrWorkspaceNotFound is returned when the token's subject has no workspace
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// WorkspaceLookup resolves an Auth0 subject to its workspace
type WorkspaceLookup interface {
	GetWorkspaceByAuth0ID(auth0ID string) (workspaceID int32, err error)
}

// TokenValidator validates a raw JWT and returns its claims
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (interface{}, error)
}

// Auth0JWTValidator authenticates websocket connections, which carry the token in the query string
type Auth0JWTValidator struct {
	validator       TokenValidator
	workspaceLookup WorkspaceLookup
}

// NewAuth0JWTValidator builds a validator backed by the tenant's JWKS
func NewAuth0JWTValidator(domain, audience string, workspaceLookup WorkspaceLookup) (*Auth0JWTValidator, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return NewJWTValidatorWith(jwtValidator, workspaceLookup), nil
}

// NewJWTValidatorWith builds a validator from an existing token validator
func NewJWTValidatorWith(v TokenValidator, workspaceLookup WorkspaceLookup) *Auth0JWTValidator {
	return &Auth0JWTValidator{validator: v, workspaceLookup: workspaceLookup}
}

// ValidateToken validates the token and returns the subject's workspace id
func (v *Auth0JWTValidator) ValidateToken(token string) (int32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims, err := v.validator.ValidateToken(ctx, token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok || validated.RegisteredClaims.Subject == "" {
		return 0, ErrInvalidToken
	}

	workspaceID, err := v.workspaceLookup.GetWorkspaceByAuth0ID(validated.RegisteredClaims.Subject)
	if err != nil {
		return 0, ErrWorkspaceNotFound
	}

	return workspaceID, nil
}
