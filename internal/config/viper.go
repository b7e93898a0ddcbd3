// Package config reads individual settings that may come from the process
// environment, a .env file or the viper configuration.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/draftboard/pkg/constants"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// GetStringOr returns GetString(key) or fallback when it is empty.
func GetStringOr(key, fallback string) string {
	if v := strings.TrimSpace(GetString(key)); v != "" {
		return v
	}
	return fallback
}

// SportsDataKey returns the SportsData.io subscription key, or "" when
// none is configured. Surrounding whitespace from .env files is dropped.
func SportsDataKey() string {
	if v := strings.TrimSpace(GetString(constants.SportsDataKeyEnv)); v != "" {
		return v
	}
	return strings.TrimSpace(viper.GetString("sportsdata_key"))
}
