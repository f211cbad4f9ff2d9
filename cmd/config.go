package cmd

const (
	// ServiceName identifies the service in logs, events and the info endpoint.
	ServiceName = "orders"

	// ServiceVersion is reported by the service info endpoint.
	ServiceVersion = "1.0.0"
)

// Config holds the runtime configuration of the service, populated from
// environment variables.
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"your-secret-key"`
}
