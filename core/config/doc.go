// Package config provides configuration management for the launcher.
//
// It loads an optional .env file with godotenv and then reads environment
// variables through Viper. Defaults live next to the fields they configure,
// in 'default' struct tags, so a bare invocation behaves exactly like the
// original launcher: port 8000, document "focus-writer.html".
//
// # Configuration Structure
//
//   - Server: port, probe host, served root, document name and keywords,
//     browser delay, whether to open a browser and to pause on errors
//   - Log: logging level and format
//
// Environment keys are the upper-cased dotted path with dots replaced by
// underscores, e.g. SERVER_PORT or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
