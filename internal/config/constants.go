package config

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// InsecureExampleAPIKey is the placeholder shipped in .env.example
const InsecureExampleAPIKey = "generate_with_openssl_rand_hex_32"
