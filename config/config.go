package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort     string        `envconfig:"SERVER_PORT"      default:":8080"`
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"` // remote commerce REST API
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"  default:"10s"`
	JWTSecret      string        `envconfig:"JWT_SECRET"       required:"true"`
	LogLevel       string        `envconfig:"LOG_LEVEL"        default:"info"`

	ImageHostBaseURL  string `envconfig:"IMAGE_HOST_BASE_URL" default:"https://api.cloudinary.com/v1_1"`
	ImageCloudName    string `envconfig:"IMAGE_CLOUD_NAME"`
	ImageUploadPreset string `envconfig:"IMAGE_UPLOAD_PRESET"`

	CatalogPageSize int `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: ServerPort=%s, LogLevel=%s, BackendBaseURL=%s",
			config.ServerPort, config.LogLevel, config.BackendBaseURL)
		if config.ImageCloudName == "" || config.ImageUploadPreset == "" {
			logger.Warn("Image host credentials are not set, product image upload is disabled")
		}
	})
	return &config
}
