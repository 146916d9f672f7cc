package confluence

import (
	"errors"
	"os"
	"time"
)

// Config holds Confluence Cloud connection settings
type Config struct {
	// BaseURL is the Confluence instance root (e.g., https://example.atlassian.net)
	BaseURL string

	// Email identifies the API token owner
	Email string

	// APIToken authenticates requests together with Email
	APIToken string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to Confluence
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// CONFLUENCE_URL, CONFLUENCE_EMAIL and CONFLUENCE_API_TOKEN are required;
// startup must fail before the server binds when any of them is missing.
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("CONFLUENCE_URL")
	if baseURL == "" {
		return nil, errors.New("CONFLUENCE_URL environment variable is required")
	}

	email := os.Getenv("CONFLUENCE_EMAIL")
	if email == "" {
		return nil, errors.New("CONFLUENCE_EMAIL environment variable is required")
	}

	apiToken := os.Getenv("CONFLUENCE_API_TOKEN")
	if apiToken == "" {
		return nil, errors.New("CONFLUENCE_API_TOKEN environment variable is required")
	}

	timeout := 30 * time.Second
	if t := os.Getenv("CONFLUENCE_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("CONFLUENCE_USER_AGENT")
	if userAgent == "" {
		userAgent = "confluence-mcp-server/1.0"
	}

	return &Config{
		BaseURL:   baseURL,
		Email:     email,
		APIToken:  apiToken,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
