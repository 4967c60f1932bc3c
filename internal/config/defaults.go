package config

// NewDefaultConfig creates a configuration with default values.
// The target defaults reproduce the zero-argument smoke run: the app served
// on localhost:8080 is ready once app-root is present, and the capture lands
// in verification.png in the working directory.
func NewDefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			URL:            "http://localhost:8080",
			Selector:       "app-root",
			Screenshot:     "verification.png",
			TimeoutSeconds: 30,
			Headless:       true,
		},
		Serve: ServeConfig{
			Host: "localhost",
			Port: 8080,
			Dir:  "./dist",
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}
