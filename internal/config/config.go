package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // образ может быть без системной базы часовых поясов

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища календаря
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvConfigPath    = "CONFIG_PATH"
	EnvBotToken      = "BOT_TOKEN"
	EnvWebhookSecret = "WEBHOOK_SECRET"
	EnvDataFile      = "DATA_FILE"
	EnvDBPassword    = "DB_PASSWORD"
)

// DefaultPath путь к конфигу, если CONFIG_PATH не задан
const DefaultPath = "config.toml"

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Telegram  TelegramConfig  `toml:"telegram"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	WebhookPath     string `toml:"webhook_path"`

	// TrustedProxies адреса или подсети прокси, которым можно верить в X-Forwarded-For.
	// Пусто - заголовок игнорируется, клиентом считается RemoteAddr
	TrustedProxies []string `toml:"trusted_proxies"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type TelegramConfig struct {
	Token         string `toml:"token"`
	APIURL        string `toml:"api_url"`
	Timeout       int    `toml:"timeout"`     // секунды
	WebhookURL    string `toml:"webhook_url"` // если задан, вебхук регистрируется при старте
	WebhookSecret string `toml:"webhook_secret"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // file | postgres
	File   string `toml:"file"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// DSN строка подключения к PostgreSQL для lib/pq в виде URL
// Логин и пароль экранируются, поэтому в них допустимы пробелы, кавычки и @
func (c DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// TrustedProxyNets разбирает TrustedProxies. Одиночный адрес превращается в подсеть из одного адреса
func (c ServerConfig) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))

	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)

		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, fmt.Errorf("server.trusted_proxies %q: %w", entry, err)
			}
			nets = append(nets, ipNet)
			continue
		}

		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, fmt.Errorf("server.trusted_proxies %q: invalid IP address", entry)
		}
		bits := 8 * net.IPv6len
		if ip4 := ip.To4(); ip4 != nil {
			ip, bits = ip4, 8*net.IPv4len
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}

	return nets, nil
}

// Location часовой пояс, в котором считается "сегодня"
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load читает конфиг из TOML файла, подгружает .env (если есть) и применяет переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBotToken); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv(EnvWebhookSecret); v != "" {
		c.Telegram.WebhookSecret = v
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		c.Storage.File = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)
	setDefault(&c.Server.WebhookPath, "/webhook")

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Telegram.APIURL, "https://api.telegram.org")
	setDefault(&c.Telegram.Timeout, 10)

	setDefault(&c.Storage.Driver, StorageDriverFile)
	setDefault(&c.Storage.File, "vacations.json")

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Calendar.Timezone, "Europe/Moscow")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "dayoff-bot")

	setDefault(&c.RateLimit.RPS, 5)
	setDefault(&c.RateLimit.Burst, 30)
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Telegram.Token == "" {
		problems = append(problems, "telegram.token (or BOT_TOKEN) is required")
	}
	if !strings.HasPrefix(c.Server.WebhookPath, "/") {
		problems = append(problems, "server.webhook_path must start with /")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d is out of range", c.Server.HTTPPort))
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.File == "" {
			problems = append(problems, "storage.file is required for file driver")
		}
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.driver %q is unknown", c.Storage.Driver))
	}

	if _, err := c.Calendar.Location(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.Server.TrustedProxyNets(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
