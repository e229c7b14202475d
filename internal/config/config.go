package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"`
	} `yaml:"jwt"`

	Clerk struct {
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"clerk"`

	Razorpay struct {
		KeyID     string `yaml:"key_id"`
		KeySecret string `yaml:"key_secret"`
	} `yaml:"razorpay"`

	App struct {
		PublicURL string `yaml:"public_url"`
	} `yaml:"app"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml unless DATABASE_URL is set, in which
// case everything comes from environment variables (the test path).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Clerk.WebhookSecret = os.Getenv("CLERK_WEBHOOK_SECRET")
	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	cfg.App.PublicURL = os.Getenv("APP_PUBLIC_URL")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASS")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	if cfg.Email.FromEmail == "" {
		cfg.Email.FromEmail = "noreply@freelancehub.dev"
	}
	cfg.Email.FromName = "FreelanceHub"

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
