package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port             string
	RedisAddr        string
	CorsProxyURL     string
	SearchBase       string
	SkinImageBase    string
	ProfileBase      string
	ResolverStrategy string
	ChromeDriverPath string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	// Empty disables the lookup cache
	RedisAddr = os.Getenv("REDIS_ADDR")

	CorsProxyURL = os.Getenv("CORS_PROXY_URL")
	if CorsProxyURL == "" {
		CorsProxyURL = "https://corsproxy.io/?url="
	}

	SearchBase = os.Getenv("SEARCH_BASE")
	if SearchBase == "" {
		SearchBase = "https://namemc.com/search?q="
	}

	SkinImageBase = os.Getenv("SKIN_IMAGE_BASE")
	if SkinImageBase == "" {
		SkinImageBase = "https://mineskin.eu/skin"
	}

	ProfileBase = os.Getenv("PROFILE_BASE")
	if ProfileBase == "" {
		ProfileBase = "https://namemc.com/profile"
	}

	ResolverStrategy = os.Getenv("RESOLVER_STRATEGY")
	if ResolverStrategy == "" {
		ResolverStrategy = "local"
	}

	ChromeDriverPath = os.Getenv("CHROMEDRIVER_PATH")
	if ChromeDriverPath == "" {
		ChromeDriverPath = "/usr/local/bin/chromedriver"
	}
}
