package usecase

import (
	"context"

	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/jwt"
	"barber-booking/internal/pkg/password"
)

// Authenticator validates an admin credential. Swapping the credential
// scheme (bcrypt hash, external IdP) never touches the handlers.
type Authenticator interface {
	Authenticate(credential string) error
}

// bcryptAuthenticator checks the credential against a stored bcrypt hash.
type bcryptAuthenticator struct {
	hash string
}

func NewBcryptAuthenticator(hash string) Authenticator {
	return &bcryptAuthenticator{hash: hash}
}

func (a *bcryptAuthenticator) Authenticate(credential string) error {
	if err := password.ComparePassword(a.hash, credential); err != nil {
		return errs.Mark(err, errs.ErrInvalidCredentials)
	}
	return nil
}

type AuthUseCase interface {
	Login(ctx context.Context, credential string) (string, error)
}

type authUseCaseImpl struct {
	authenticator Authenticator
	tokens        *jwt.Service
}

func NewAuthUseCase(authenticator Authenticator, tokens *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		authenticator: authenticator,
		tokens:        tokens,
	}
}

// Login exchanges the admin credential for a signed access token.
func (u *authUseCaseImpl) Login(_ context.Context, credential string) (string, error) {
	if err := u.authenticator.Authenticate(credential); err != nil {
		return "", err
	}
	return u.tokens.GenerateAdminToken()
}

// TokenValidator is consumed by the auth middleware.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{tokens: tokens}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (*jwt.Claims, error) {
	return v.tokens.ValidateToken(token)
}
