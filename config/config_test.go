package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "development needs nothing", mutate: func(c *Config) { c.Server.Env = "development" }},
		{
			name: "production with secrets",
			mutate: func(c *Config) {
				c.Server.Env = "production"
				c.JWT.AccessSecret = "a"
				c.JWT.RefreshSecret = "r"
				c.App.Checkout.SessionSecret = "s"
			},
		},
		{
			name:    "production without secrets",
			mutate:  func(c *Config) { c.Server.Env = "production"; c.JWT.AccessSecret = "a" },
			wantErr: "missing production settings: JWT_REFRESH_SECRET, APP_CHECKOUT_SESSION_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			tt.mutate(c)

			err := c.check()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
