package configs

// OAuth configures the token endpoint used to refresh expired Gmail access
// tokens. The connect flow that stores tokens lives outside this service.
type OAuth struct {
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}
