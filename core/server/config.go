package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the preferred port; 0 asks the OS for a free one.
	Port int `mapstructure:"port" default:"8000"`
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Root is the directory being served.
	Root string `mapstructure:"root" default:"."`
	// Homepage is the file opened in the browser at startup.
	Homepage string `mapstructure:"homepage" default:"index.html"`
	// Browse enables directory listings.
	Browse bool `mapstructure:"browse" default:"false"`
	// OpenBrowser controls whether the homepage is opened at startup.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

// Addr returns the listen address for the configured host and port.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseURL returns the URL the server is reachable at.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// HomepageURL returns the URL the browser is pointed at on startup.
func (c Config) HomepageURL() string {
	return c.BaseURL() + "/" + c.Homepage
}
