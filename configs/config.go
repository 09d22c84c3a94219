package config

import (
	"os"
	"strconv"
	"strings"
)

type ServerConfig struct {
	Addr          string
	SessionSecret string
	AdminUsername string
	AdminPassword string
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file
	TimeZone string
	Seed     bool
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
	KitchenEmail       string
}

type OIDCConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AdminEmails  []string
}

type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          getEnvOrDefault("HTTP_ADDR", ":8080"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "change-me"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "123456"),
	}
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:   getEnvOrDefault("DB_DRIVER", "postgres"),
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "marmita"),
		Password: getEnvOrDefault("DB_PASSWORD", "marmita"),
		Name:     getEnvOrDefault("DB_NAME", "marmita"),
		Path:     getEnvOrDefault("DB_PATH", "marmita.db"),
		TimeZone: getEnvOrDefault("DB_TIMEZONE", "America/Sao_Paulo"),
		Seed:     getEnvBool("DB_SEED", true),
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

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "sa-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
		KitchenEmail:       os.Getenv("KITCHEN_EMAIL"),
	}
}

func LoadOIDCConfig() OIDCConfig {
	return OIDCConfig{
		Issuer:       os.Getenv("OIDC_ISSUER"),
		ClientID:     os.Getenv("OIDC_CLIENT_ID"),
		ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		AdminEmails:  splitList(os.Getenv("ADMIN_EMAILS")),
	}
}

func LoadNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           os.Getenv("NATS_URL"),
		SubjectPrefix: getEnvOrDefault("NATS_SUBJECT_PREFIX", "marmita"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
