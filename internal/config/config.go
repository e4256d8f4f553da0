// Package config loads notionctl's environment configuration.
package config

import (
	"errors"
	"os"
	"strings"
)

// Config carries everything the CLI needs before its first remote call.
type Config struct {
	Token  string // NOTION_API_KEY
	PageID string // NOTION_PAGE_ID
	Debug  bool   // NOTION_DEBUG=1 enables debug logging
}

// Load reads configuration from the environment, falling back to a .env
// file in the working directory for keys the environment does not set.
func Load() Config {
	return Config{
		Token:  envOr("NOTION_API_KEY"),
		PageID: envOr("NOTION_PAGE_ID"),
		Debug:  os.Getenv("NOTION_DEBUG") == "1",
	}
}

// Validate reports whether the required credential is present. The page ID
// is checked later, once flags have had a chance to supply it.
func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New("NOTION_API_KEY not found in environment or .env file")
	}
	return nil
}

func envOr(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fromEnvFile(key)
}

// fromEnvFile reads a key from a .env file in the current directory.
func fromEnvFile(key string) string {
	data, err := os.ReadFile(".env")
	if err != nil {
		return ""
	}
	prefix := key + "="
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			val := strings.TrimPrefix(line, prefix)
			return strings.Trim(val, `"'`)
		}
	}
	return ""
}
