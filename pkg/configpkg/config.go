// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-petr/pet-atm/pkg/moneypkg"
)

// Default values used when neither the config file nor the environment sets a key.
const (
	DefaultEnvironment  = "production"
	DefaultLogLevel     = "info"
	DefaultMaxCustomers = 10
	DefaultMinBalance   = "2000"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environement string `mapstructure:"GO_ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	MaxCustomers int    `mapstructure:"MAX_CUSTOMERS" validate:"min=1"`
	MinBalance   string `mapstructure:"MIN_BALANCE" validate:"required,numeric,balance"`
}

// MinimumBalance returns the minimum balance as decimal.
func (c Config) MinimumBalance() decimal.Decimal {
	return decimal.RequireFromString(c.MinBalance)
}

// ValidBalance accepts money amounts that are zero or positive.
var ValidBalance validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		amount, err := moneypkg.Parse(s)
		return err == nil && !amount.IsNegative()
	}

	return false
}

// Load read configuration from file or environment variables.
//
// A missing app.env is not an error, defaults and environment are used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("GO_ENV", DefaultEnvironment)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("MAX_CUSTOMERS", DefaultMaxCustomers)
	v.SetDefault("MIN_BALANCE", DefaultMinBalance)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	validate := validator.New()
	if err := validate.RegisterValidation("balance", ValidBalance); err != nil {
		return c, err
	}

	err = validate.Struct(c)
	if err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}
