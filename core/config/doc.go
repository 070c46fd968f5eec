// Package config provides configuration management for the Book Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults live next to each field in a
// `default:"..."` struct tag and are registered by reflection so that every
// key can be overridden from the environment.
//
// # Configuration Structure
//
//   - Server: HTTP port and template reloading
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket for catalog exports
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
