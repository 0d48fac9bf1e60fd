package config

import (
	"os"
	"time"
)

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
	AdminEmail         string
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
}

type AuthConfig struct {
	TokenSecret   string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
}

type StoreConfig struct {
	WhatsappNumber string
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username: os.Getenv("AT_USERNAME"),
		APIKey:   os.Getenv("AT_API_KEY"),
		SMSURL:   getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"), // Sandbox URL
		SenderID: getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"),
	}
}

func LoadAuthConfig() AuthConfig {
	ttl := 24 * time.Hour
	if raw := os.Getenv("ADMIN_TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return AuthConfig{
		TokenSecret:   getEnvOrDefault("ADMIN_TOKEN_SECRET", "dev_secret"),
		TokenTTL:      ttl,
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "root"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "root"),
	}
}

func LoadStoreConfig() StoreConfig {
	return StoreConfig{
		WhatsappNumber: os.Getenv("WHATSAPP_NUMBER"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
