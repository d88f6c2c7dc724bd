package config

import (
	"os"
)

type ZoomConfig struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

type EmailConfig struct {
	// Provider "resend" ya da "ses"; boşsa resend kullanılır.
	Provider           string
	ResendAPIKey       string
	FromAddress        string
	FromName           string
	SESRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type BedrockConfig struct {
	Region      string
	ModelID     string
	BearerToken string
}

type Config struct {
	DatabaseURL string
	Port        string
	FrontendURL string
	JWTSecret   string
	Zoom        ZoomConfig
	Email       EmailConfig
	Stripe      StripeConfig
	Bedrock     BedrockConfig
}

// LoadConfig ortam değişkenlerini bir kez okur; sağlayıcı istemcileri
// çağrı anında os.Getenv yapmaz, bu struct ile kurulur.
func LoadConfig() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	cfg.Zoom.AccountID = os.Getenv("ZOOM_ACCOUNT_ID")
	cfg.Zoom.ClientID = os.Getenv("ZOOM_CLIENT_ID")
	cfg.Zoom.ClientSecret = os.Getenv("ZOOM_CLIENT_SECRET")

	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "resend")
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")
	cfg.Email.SESRegion = getEnv("SES_REGION", "us-west-2")
	cfg.Email.AWSAccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Email.AWSSecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	cfg.Bedrock.Region = getEnv("BEDROCK_REGION", "us-west-2")
	cfg.Bedrock.ModelID = getEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0")
	cfg.Bedrock.BearerToken = os.Getenv("AWS_BEARER_TOKEN_BEDROCK")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
