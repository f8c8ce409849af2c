package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Business BusinessConfig  `toml:"business"`
	Booking  BookingConfig   `toml:"booking"`
	Services []ServiceConfig `toml:"services"`
	Auth     AuthConfig      `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к хранилищу записей
// Enabled = false запускает сервис без хранилища: запись недоступна
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig статичные данные о заведении
type BusinessConfig struct {
	Name          string `toml:"name"`
	Tagline       string `toml:"tagline"`
	Phone         string `toml:"phone"`
	WhatsApp      string `toml:"whatsapp"`
	Address       string `toml:"address"`
	HoursText     string `toml:"hours_text"`
	InstagramURL  string `toml:"instagram_url"`
	GoogleMapsURL string `toml:"google_maps_url"`
}

type HoursConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// BookingConfig параметры расписания записи
type BookingConfig struct {
	SlotIntervalMinutes int         `toml:"slot_interval_minutes"`
	MaxDaysAhead        int         `toml:"max_days_ahead"`
	Timezone            string      `toml:"timezone"`
	Weekday             HoursConfig `toml:"weekday"`
	Weekend             HoursConfig `toml:"weekend"`
}

// ServiceConfig услуга каталога по умолчанию
type ServiceConfig struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	PriceRub    int    `toml:"price_rub"`
	DurationMin int    `toml:"duration_min"`
	DurationMax int    `toml:"duration_max"`
}

type AuthConfig struct {
	SessionTTLMinutes int            `toml:"session_ttl_minutes"`
	Admins            []AdminAccount `toml:"admins"`
}

// AdminAccount учетная запись администратора, пароль хранится как bcrypt-хэш
type AdminAccount struct {
	Email        string `toml:"email"`
	PasswordHash string `toml:"password_hash"`
}

// Load загружает конфигурацию из TOML-файла
// DB_PASSWORD из окружения переопределяет database.password
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Enabled:         true,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barbershop_booking",
		},
		Business: BusinessConfig{Name: "The Business Zm"},
		Booking: BookingConfig{
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			MaxDaysAhead:        domain.DefaultMaxDaysAhead,
			Timezone:            "Local",
			Weekday:             HoursConfig{Open: "14:00", Close: "20:00"},
			Weekend:             HoursConfig{Open: "12:00", Close: "20:00"},
		},
		Auth: AuthConfig{SessionTTLMinutes: domain.DefaultSessionTTLMinutes},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Business.Name) == "" {
		return fmt.Errorf("%w: business.name is required", ErrInvalidConfig)
	}
	if c.Booking.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_interval_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.MaxDaysAhead < 0 {
		return fmt.Errorf("%w: booking.max_days_ahead must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Hours(); err != nil {
		return fmt.Errorf("%w: booking hours: %v", ErrInvalidConfig, err)
	}
	for i, svc := range c.Services {
		if strings.TrimSpace(svc.Name) == "" {
			return fmt.Errorf("%w: services[%d].name is required", ErrInvalidConfig, i)
		}
	}
	for i, admin := range c.Auth.Admins {
		if admin.Email == "" {
			return fmt.Errorf("%w: auth.admins[%d].email is required", ErrInvalidConfig, i)
		}
		if _, err := bcrypt.Cost([]byte(admin.PasswordHash)); err != nil {
			return fmt.Errorf("%w: auth.admins[%d].password_hash is not a bcrypt hash", ErrInvalidConfig, i)
		}
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: auth.session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}

// Location возвращает часовой пояс, в котором считается "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" || b.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// Hours конвертирует часы работы в доменную модель
func (c *Config) Hours() (domain.BusinessHours, error) {
	weekday, err := c.Booking.Weekday.toDomain()
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("weekday: %w", err)
	}
	weekend, err := c.Booking.Weekend.toDomain()
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("weekend: %w", err)
	}
	hours := domain.BusinessHours{Weekday: weekday, Weekend: weekend}
	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, err
	}
	return hours, nil
}

func (h HoursConfig) toDomain() (domain.OpeningHours, error) {
	open, err := types.NewTimeStringFromString(h.Open)
	if err != nil {
		return domain.OpeningHours{}, err
	}
	closeAt, err := types.NewTimeStringFromString(h.Close)
	if err != nil {
		return domain.OpeningHours{}, err
	}
	return domain.OpeningHours{Open: open, Close: closeAt}, nil
}

// DefaultServices конвертирует услуги из конфигурации в доменные модели
func (c *Config) DefaultServices() []domain.Service {
	services := make([]domain.Service, 0, len(c.Services))
	for _, svc := range c.Services {
		services = append(services, domain.Service{
			ID:          svc.ID,
			Name:        svc.Name,
			PriceRub:    svc.PriceRub,
			DurationMin: svc.DurationMin,
			DurationMax: svc.DurationMax,
		})
	}
	return services
}
