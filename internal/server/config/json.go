package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rashii/rashii/internal/flagx"
	"github.com/rashii/rashii/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "5s" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	Environment     string         `json:"environment"`
	CronSecret      string         `json:"cron_secret"`
	ResendAPIKey    string         `json:"resend_api_key"`
	EmailFrom       string         `json:"email_from"`
	EmailTo         string         `json:"email_to"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	Users           []UserConfig   `json:"users"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no file is loaded. An unreadable or invalid
// file panics: a half-applied config is worse than no server.
//
// Zero-valued JSON fields leave the corresponding Config field untouched,
// so a partial file only overrides what it names.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
	if c.CronSecret != "" {
		config.CronSecret = c.CronSecret
	}
	if c.ResendAPIKey != "" {
		config.ResendAPIKey = c.ResendAPIKey
	}
	if c.EmailFrom != "" {
		config.EmailFrom = c.EmailFrom
	}
	if c.EmailTo != "" {
		config.EmailTo = c.EmailTo
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	}
	if len(c.Users) > 0 {
		users := make([]UserConfig, len(c.Users))
		copy(users, c.Users)
		for i := range users {
			if users[i].PinHash == "" {
				users[i].PinHash = DefaultPinHash
			}
		}
		config.Users = users
	}
}
