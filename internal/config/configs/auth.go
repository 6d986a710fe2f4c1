package configs

import "time"

// Auth configures session token verification. Tokens are HS256 JWTs whose
// sub claim carries the user id.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
}
