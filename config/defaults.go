package config

// Default file paths for apiconsumer.
const (
	// DefaultConfigPath is the default runtime config file.
	DefaultConfigPath = "apiconsumer.config.json"
)
