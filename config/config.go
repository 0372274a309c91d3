package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Services ServicesConfig `yaml:"services"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
}

// ServicesConfig holds the listen addresses of the four services and the base
// URLs the typed clients use to reach them. Addresses and URLs are separate so
// the services can run behind different hostnames in compose setups.
type ServicesConfig struct {
	UserAddress     string `yaml:"user_address"`
	BookingAddress  string `yaml:"booking_address"`
	MovieAddress    string `yaml:"movie_address"`
	ShowtimeAddress string `yaml:"showtime_address"`

	MovieURL    string `yaml:"movie_url"`
	ShowtimeURL string `yaml:"showtime_url"`
	BookingURL  string `yaml:"booking_url"`

	SwaggerDir string `yaml:"swagger_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	UserLockTTLSeconds     int `yaml:"user_lock_ttl_seconds"`
	CatalogCacheTTLSeconds int `yaml:"catalog_cache_ttl_seconds"`
}

type WorkerConfig struct {
	CatalogWarmMinutes int `yaml:"catalog_warm_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
