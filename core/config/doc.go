// Package config provides configuration management for localserve.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared on the config structs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, host, root directory, homepage)
//   - Log: Logging level and format
//   - Livereload: reload-on-change behavior
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
