package bootstrap

import (
	"time"

	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/jwt"
	"barber-booking/internal/pkg/password"
	"barber-booking/internal/usecase"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		NewAuthenticator,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Auth.TokenDuration)
	if err != nil {
		panic("invalid AUTH_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Auth.JWTSecret, tokenDuration)
}

// NewAuthenticator resolves the admin credential: a pre-computed bcrypt hash
// wins; a plaintext password is hashed at boot as a local-setup convenience.
func NewAuthenticator(cfg config.Config) (usecase.Authenticator, error) {
	hash := cfg.Auth.AdminPasswordHash
	if hash == "" {
		if cfg.Auth.AdminPassword == "" {
			panic("one of ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
		}
		var err error
		hash, err = password.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			return nil, err
		}
	}
	return usecase.NewBcryptAuthenticator(hash), nil
}
