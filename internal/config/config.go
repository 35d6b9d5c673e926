package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from config.yaml and environment variables.
type Config struct {
	ServerPort  string `mapstructure:"server_port"`
	SwaggerHost string `mapstructure:"swagger_host"`
	CORSOrigins string `mapstructure:"cors_origins"`
	ResetDB     bool   `mapstructure:"reset_db"`

	DBDriver    string `mapstructure:"db_driver"` // mysql|postgres
	MySQLDSN    string `mapstructure:"mysql_dsn"`
	PostgresDSN string `mapstructure:"postgres_dsn"`

	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
	RedisPass string `mapstructure:"redis_password"`

	JWTSecret      string `mapstructure:"jwt_secret"`
	AdminJWTSecret string `mapstructure:"admin_jwt_secret"`
	AdminUsername  string `mapstructure:"admin_username"`
	AdminPassword  string `mapstructure:"admin_password"`

	UploadDir       string `mapstructure:"upload_dir"`
	UploadMaxBytes  int64  `mapstructure:"upload_max_bytes"`
	UploadURLPrefix string `mapstructure:"upload_url_prefix"`

	OrphanSweepSchedule string        `mapstructure:"orphan_sweep_schedule"`
	OrphanGrace         time.Duration `mapstructure:"orphan_grace"`

	GallerySeedSource string `mapstructure:"gallery_seed_source"`
}

var keys = []string{
	"server_port", "swagger_host", "cors_origins", "reset_db",
	"db_driver", "mysql_dsn", "postgres_dsn",
	"redis_addr", "redis_db", "redis_password",
	"jwt_secret", "admin_jwt_secret", "admin_username", "admin_password",
	"upload_dir", "upload_max_bytes", "upload_url_prefix",
	"orphan_sweep_schedule", "orphan_grace",
	"gallery_seed_source",
}

// Load builds Config from .env, an optional config.yaml and the environment, with sensible defaults.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_port", "5000")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("reset_db", false)
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("mysql_dsn", "user:password@tcp(localhost:3306)/venue?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "admin")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("upload_max_bytes", 5000000)
	v.SetDefault("upload_url_prefix", "/uploads")
	v.SetDefault("orphan_sweep_schedule", "@every 1h")
	v.SetDefault("orphan_grace", "24h")

	// AutomaticEnv only resolves keys viper already knows about, so bind the rest explicitly.
	for _, k := range keys {
		_ = v.BindEnv(k, strings.ToUpper(k))
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}
	if c.AdminJWTSecret == "" {
		c.AdminJWTSecret = c.JWTSecret
	}
	return &c
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
