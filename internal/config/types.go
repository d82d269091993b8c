package config

type Config struct {
	DatabaseURL        string
	RedisURL           string // optional, enables the stats cache when set
	JWTSecret          string
	SessionSecret      string
	GithubClientID     string
	GithubClientSecret string
	AdminAPIKey        string
	BaseURL            string
	Environment        string
}
