// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
	"github.com/companieshouse/linepay.api.ch.gov.uk/transport"
	"github.com/go-playground/validator/v10"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                string   `env:"BIND_ADDR"                           flag:"bind-addr"                           flagDesc:"Bind address"`
	ChannelID               string   `env:"LINE_PAY_CHANNEL_ID"                 flag:"line-pay-channel-id"                 flagDesc:"LINE Pay merchant channel ID"               validate:"required"`
	ChannelSecret           string   `env:"LINE_PAY_CHANNEL_SECRET"             flag:"line-pay-channel-secret"             flagDesc:"LINE Pay merchant channel secret"           validate:"required"`
	Env                     string   `env:"LINE_PAY_ENV"                        flag:"line-pay-env"                        flagDesc:"LINE Pay environment, sandbox or production" validate:"oneof=sandbox production"`
	TimeoutSeconds          int      `env:"LINE_PAY_TIMEOUT_SECONDS"            flag:"line-pay-timeout-seconds"            flagDesc:"Timeout for calls to LINE Pay in seconds"   validate:"gte=1"`
	MerchantDeviceProfileID string   `env:"LINE_PAY_MERCHANT_DEVICE_PROFILE_ID" flag:"line-pay-merchant-device-profile-id" flagDesc:"LINE Pay merchant device profile ID"`
	ConfirmURL              string   `env:"LINE_PAY_CONFIRM_URL"                flag:"line-pay-confirm-url"                flagDesc:"URL LINE Pay redirects to once a payment is approved" validate:"omitempty,url"`
	CancelURL               string   `env:"LINE_PAY_CANCEL_URL"                 flag:"line-pay-cancel-url"                 flagDesc:"URL LINE Pay redirects to when a payment is cancelled" validate:"omitempty,url"`
	MongoDBURL              string   `env:"MONGODB_URL"                         flag:"mongodb-url"                         flagDesc:"MongoDB server URL"`
	Database                string   `env:"MONGODB_DATABASE"                    flag:"mongodb-database"                    flagDesc:"MongoDB database for data"`
	Collection              string   `env:"MONGODB_COLLECTION"                  flag:"mongodb-collection"                  flagDesc:"MongoDB collection for data"`
	BrokerAddr              []string `env:"KAFKA_BROKER_ADDR"                   flag:"broker-addr"                         flagDesc:"Kafka broker address"`
	SchemaRegistryURL       string   `env:"SCHEMA_REGISTRY_URL"                 flag:"schema-registry-url"                 flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Env:            transport.EnvSandbox,
		TimeoutSeconds: 20,
		Database:       "linepay",
		Collection:     "payments",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the LINE Pay settings needed before the service can take payments
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid config: [%w]", err)
	}
	return nil
}

// TransportConfig returns the settings used to connect to LINE Pay
func (c *Config) TransportConfig() transport.Config {
	return transport.Config{
		ChannelID:               c.ChannelID,
		ChannelSecret:           c.ChannelSecret,
		Env:                     c.Env,
		Timeout:                 time.Duration(c.TimeoutSeconds) * time.Second,
		MerchantDeviceProfileID: c.MerchantDeviceProfileID,
	}
}
