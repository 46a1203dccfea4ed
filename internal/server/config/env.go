package config

import (
	"os"
	"strings"
)

// parseEnv overlays environment variables onto the Config. Secrets only
// travel this way so they never show up in process listings or config
// files checked into a repo.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	APP_ENV          environment name
//	CRON_SECRET      dispatch endpoint shared secret
//	RESEND_API_KEY   email provider API key
//	EMAIL_FROM       reminder email sender identity
//	EMAIL_TO         reminder email recipient
//	<ID>_PIN_HASH    bcrypt PIN hash for the user with that id
//	                 (e.g. SHIV_PIN_HASH, VAISHNAVI_PIN_HASH)
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Environment = v
	}
	if v, ok := os.LookupEnv("CRON_SECRET"); ok {
		config.CronSecret = v
	}
	if v, ok := os.LookupEnv("RESEND_API_KEY"); ok {
		config.ResendAPIKey = v
	}
	if v, ok := os.LookupEnv("EMAIL_FROM"); ok {
		config.EmailFrom = v
	}
	if v, ok := os.LookupEnv("EMAIL_TO"); ok {
		config.EmailTo = v
	}

	for i := range config.Users {
		key := strings.ToUpper(config.Users[i].ID) + "_PIN_HASH"
		if v, ok := os.LookupEnv(key); ok {
			config.Users[i].PinHash = v
		}
	}
}
