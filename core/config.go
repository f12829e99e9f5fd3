package core

import "time"

// AdminConfig describes the built-in administrator. It has no account row.
type AdminConfig struct {
	ID           string `yaml:"id"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"passwordHash"`
	PolicyID     uint   `yaml:"policyId"`
}

type ConfigInput struct {
	JWTSecret            string      `yaml:"jwtSecret"`
	TokenTTL             string      `yaml:"tokenTTL"`
	PolicyCacheTTL       string      `yaml:"policyCacheTTL"`
	SeedOnBoot           bool        `yaml:"seedOnBoot"`
	LegacySeedDuplicates bool        `yaml:"legacySeedDuplicates"`
	Admin                AdminConfig `yaml:"admin"`
}

type Config struct {
	JWTSecret            string
	TokenTTL             time.Duration
	PolicyCacheTTL       time.Duration
	SeedOnBoot           bool
	LegacySeedDuplicates bool
	Admin                AdminConfig
}

// SetupConfig converts the raw yaml input into a Config, applying defaults
func SetupConfig(base ConfigInput) Config {

	tokenTTL, err := time.ParseDuration(base.TokenTTL)
	if err != nil || tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	var cacheTTL time.Duration
	if base.PolicyCacheTTL != "" {
		cacheTTL, err = time.ParseDuration(base.PolicyCacheTTL)
		if err != nil {
			panic(err)
		}
	}

	admin := base.Admin
	if admin.ID == "" {
		admin.ID = "admin"
	}

	return Config{
		JWTSecret:            base.JWTSecret,
		TokenTTL:             tokenTTL,
		PolicyCacheTTL:       cacheTTL,
		SeedOnBoot:           base.SeedOnBoot,
		LegacySeedDuplicates: base.LegacySeedDuplicates,
		Admin:                admin,
	}
}
