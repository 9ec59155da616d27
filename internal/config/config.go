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

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	// Admin pins the single account allowed into the console. The id AND
	// email must both match at login.
	Admin struct {
		UserID string `yaml:"user_id"`
		Email  string `yaml:"email"`
		Name   string `yaml:"name"`
		// Password is only used to seed the account on first start.
		Password string `yaml:"password"`
	} `yaml:"admin"`

	CORS struct {
		FrontendURL string `yaml:"frontend_url"`
	} `yaml:"cors"`
}

var AppConfig *Config

func GetConfig() *Config {
	return AppConfig
}

// IsProduction reports whether the server runs in production mode.
// Controls log format and whether error details reach clients.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LoadConfig fills AppConfig either from config.yaml or, when DATABASE_URL
// is set, entirely from environment variables (test / container mode).
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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.Admin.UserID = os.Getenv("ADMIN_USER_ID")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Name = os.Getenv("ADMIN_NAME")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.CORS.FrontendURL = os.Getenv("FRONTEND_URL")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.CORS.FrontendURL == "" {
		cfg.CORS.FrontendURL = "http://localhost:3000"
	}
}
