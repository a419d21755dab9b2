package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Jklawreszuk/gettext-net/getopt"
)

type Config struct {
	// PosixlyCorrect is the strict-standard-compliance mode. Unset or
	// unparsable values count as true.
	PosixlyCorrect bool
	Language       string
	LogLevel       string
	OnDuplicate    string
	UseFuzzy       bool
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		PosixlyCorrect: getEnvBool("POSIXLY_CORRECT", true),
		Language:       getLanguage(),
		LogLevel:       getEnv("RESGEN_LOG_LEVEL", "info"),
		OnDuplicate:    getEnv("RESGEN_ON_DUPLICATE", "overwrite"),
		UseFuzzy:       getEnvBool("RESGEN_USE_FUZZY", false),
	}
}

// Getopt returns the option descriptor configuration.
func (c *Config) Getopt() *getopt.Config {
	return &getopt.Config{StrictPOSIX: c.PosixlyCorrect, Language: c.Language}
}

// getLanguage follows the gettext lookup order. LANGUAGE may hold a
// colon-separated list; its first element is used.
func getLanguage() string {
	for _, key := range []string{"GETTEXT_LANGUAGE", "LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if key == "LANGUAGE" {
			v = strings.Split(v, ":")[0]
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return "en"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
