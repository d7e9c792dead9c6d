// Package config provides configuration management for the fixture server.
//
// It loads a .env file from the working directory (without overriding variables
// that are already set) and then reads environment variables through Viper.
// Defaults come from the `default` struct tags of each partial configuration.
//
// # Configuration Structure
//
//   - Server: bind host, port (default 5001) and debug mode
//   - Content: fixture driver (local, s3) and the fixture, static and template directories
//   - Storage: S3/MinIO credentials and bucket for the s3 driver
//   - Log: logging level and format
//   - Mime: extra extension to MIME type overrides
//
// Nested keys map to upper case variables joined by underscores, e.g.
// SERVER_PORT, CONTENT_TEST_DIR, MIME_OVERRIDES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
