package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Catalog struct {
	// BaseURL is the base URL of the external recipe catalog API.
	BaseURL string `koanf:"baseurl"`
}

type Mail struct {
	// SMTPHost is the SMTP relay host for outgoing mail.
	SMTPHost string `koanf:"smtphost"`

	// SMTPPort is the SMTP relay port.
	SMTPPort int `koanf:"smtpport"`

	// Sender is the from address for outgoing mail.
	Sender string `koanf:"sender"`

	// Password is the SMTP password for the sender account.
	Password string `koanf:"password"`
}

type Config struct {
	config.Common

	// Catalog is the configuration for the external recipe catalog.
	Catalog Catalog `koanf:"catalog"`

	// Mail is the configuration for outgoing mail.
	Mail Mail `koanf:"mail"`
}
