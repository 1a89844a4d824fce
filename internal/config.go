package internal

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreDynamoDB = "dynamodb"

	defaultRoutesFile = "routes.json"
	defaultLogLevel   = "warn"
)

var ErrInvalidConfig = errors.New("invalid_config")

type Config struct {
	Store          string
	RoutesFile     string
	DynamoDBRoutes string
	RoutesQueue    string
	LogLevel       string
}

// LoadConfig reads the configuration through getenv, normally os.Getenv.
// Unset variables take their defaults; ROUTES_STORE=dynamodb requires
// DYNAMODB_ROUTES.
func LoadConfig(getenv func(string) string) (Config, error) {
	c := Config{
		Store:          strings.ToLower(env(getenv, "ROUTES_STORE")),
		RoutesFile:     env(getenv, "ROUTES_FILE"),
		DynamoDBRoutes: env(getenv, "DYNAMODB_ROUTES"),
		RoutesQueue:    env(getenv, "ROUTES_QUEUE"),
		LogLevel:       env(getenv, "LOG_LEVEL"),
	}

	if c.Store == "" {
		c.Store = StoreMemory
	}
	if c.RoutesFile == "" {
		c.RoutesFile = defaultRoutesFile
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	switch c.Store {
	case StoreMemory, StoreFile:
	case StoreDynamoDB:
		if c.DynamoDBRoutes == "" {
			return Config{}, errors.Wrap(ErrInvalidConfig, "DYNAMODB_ROUTES is empty")
		}
	default:
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unknown ROUTES_STORE %q", c.Store)
	}

	return c, nil
}

// env returns the variable with line breaks, tabs and surrounding spaces
// removed.
func env(getenv func(string) string, name string) string {
	v := strings.NewReplacer("\n", "", "\r", "", "\t", "").Replace(getenv(name))
	return strings.TrimSpace(v)
}

// NeedsAWS reports whether any configured component talks to AWS.
func (c Config) NeedsAWS() bool {
	return c.Store == StoreDynamoDB || c.RoutesQueue != ""
}
