package configs

// Auth configures verification of wallet session tokens. Tokens are issued
// by the wallet authentication provider and signed with HS256.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	// CookieName is the cookie carrying the token when no bearer header is
	// sent.
	CookieName string `env:"COOKIE_NAME" envDefault:"jwt"`
}
