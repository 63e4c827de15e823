package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries everything read from the environment. It is built once
// at process start and injected; nothing else reads os.Getenv.
type Config struct {
	Port      string
	DBFile    string
	UploadDir string
	// PublicPrefix is the URL prefix under which UploadDir is served.
	PublicPrefix string

	JWTSecret         string
	CreatorSignupCode string
	AdminSecret       string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present and fills in dev fallbacks for anything
// unset. The JWT fallback is insecure on purpose; warn loudly.
func Load(log *logrus.Logger) *Config {
	_ = godotenv.Load() // ok if missing in prod

	cfg := &Config{
		Port:              envOr("PORT", "5000"),
		DBFile:            envOr("DB_FILE", "data/sharemoment.db"),
		UploadDir:         envOr("UPLOAD_DIR", "uploads/videos"),
		PublicPrefix:      "/uploads/videos",
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CreatorSignupCode: envOr("CREATOR_SIGNUP_CODE", "CREATOR2025"),
		AdminSecret:       envOr("CREATOR_PROMO_SECRET", "promote-creator-secret"),
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set; using insecure dev fallback")
		cfg.JWTSecret = "dev_insecure_jwt_key_change_me"
	}
	return cfg
}
