package server_test

import (
	"testing"

	"localserve/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_URLs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      server.Config
		addr     string
		homepage string
	}{
		{
			"Defaults",
			server.Config{Host: "127.0.0.1", Port: 8000, Homepage: "index.html"},
			"127.0.0.1:8000",
			"http://127.0.0.1:8000/index.html",
		},
		{
			"EphemeralPort",
			server.Config{Host: "127.0.0.1", Port: 49152, Homepage: "index.html"},
			"127.0.0.1:49152",
			"http://127.0.0.1:49152/index.html",
		},
		{
			"CustomHomepage",
			server.Config{Host: "127.0.0.1", Port: 8000, Homepage: "home.html"},
			"127.0.0.1:8000",
			"http://127.0.0.1:8000/home.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.addr, tt.cfg.Addr())
			assert.Equal(t, tt.homepage, tt.cfg.HomepageURL())
		})
	}
}
