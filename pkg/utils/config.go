package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret             string
	AccessExpiryMin    int
	RefreshExpiryHours int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// Rate limiting (requests per window, per client IP)
	RateLimit       int
	RateWindowSecs  int
	RateLimitEnable bool
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_ACCESS_EXPIRY_MIN", 30)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT", 100)
	viper.SetDefault("RATE_WINDOW_SECS", 60)
	viper.SetDefault("RATE_LIMIT_ENABLE", false)
	viper.SetDefault("KAFKA_ORDERS_TOPIC", "order-events")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			AccessExpiryMin:    viper.GetInt("JWT_ACCESS_EXPIRY_MIN"),
			RefreshExpiryHours: viper.GetInt("JWT_REFRESH_EXPIRY_HOURS"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASSWORD"),
			DB:              viper.GetInt("REDIS_DB"),
			RateLimit:       viper.GetInt("RATE_LIMIT"),
			RateWindowSecs:  viper.GetInt("RATE_WINDOW_SECS"),
			RateLimitEnable: viper.GetBool("RATE_LIMIT_ENABLE"),
		},
		Kafka: KafkaConfig{
			Brokers:     viper.GetStringSlice("KAFKA_BROKERS"),
			OrdersTopic: viper.GetString("KAFKA_ORDERS_TOPIC"),
		},
	}

	return config, nil
}
