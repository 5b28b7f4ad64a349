package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB; empty DSN runs the server on in-memory stores (dev only)
	DSN string `envconfig:"DSN"`
	// JWT
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLMin int    `envconfig:"TOKEN_TTL_MIN" default:"1440"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3002"`
	// Optional admin account seeded at startup
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
