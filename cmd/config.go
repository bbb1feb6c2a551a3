package cmd

// Config carries everything the process needs from its environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AmqpURL      string
	AmqpExchange string

	RedisAddr     string
	RedisPassword string

	BlobDir string

	ProductionStartLeadDays int
	ProductionDurationDays  int
	MinUnitPriceKurus       int64
}
