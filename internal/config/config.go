package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	MenuSourceFile     = "file"
	MenuSourcePostgres = "postgres"
)

// Config holds all configuration for the takeaway service
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	SMS      SMSConfig      `yaml:"sms"`
	Menu     MenuConfig     `yaml:"menu"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// SMSConfig identifies the Twilio account and the two phone numbers involved
type SMSConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	From       string `yaml:"from"`
	To         string `yaml:"to"`
}

type MenuConfig struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
}

// Load reads the YAML file at path and applies environment overrides on top
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML and fills in defaults
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadEnvFile loads key=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.RabbitMQ.Port == 0 {
		c.RabbitMQ.Port = 5672
	}
	if c.Menu.Source == "" {
		c.Menu.Source = MenuSourceFile
	}
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"TWILIO_ACCOUNT_SID": &c.SMS.AccountSID,
		"TWILIO_AUTH_TOKEN":  &c.SMS.AuthToken,
		"TWILIO_FROM":        &c.SMS.From,
		"TWILIO_TO":          &c.SMS.To,
		"DB_HOST":            &c.Database.Host,
		"DB_USER":            &c.Database.User,
		"DB_PASSWORD":        &c.Database.Password,
		"DB_NAME":            &c.Database.Database,
		"RABBITMQ_HOST":      &c.RabbitMQ.Host,
		"RABBITMQ_USER":      &c.RabbitMQ.User,
		"RABBITMQ_PASSWORD":  &c.RabbitMQ.Password,
		"MENU_SOURCE":        &c.Menu.Source,
		"MENU_FILE":          &c.Menu.File,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PORT":          &c.Server.Port,
		"DB_PORT":       &c.Database.Port,
		"RABBITMQ_PORT": &c.RabbitMQ.Port,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", key, err)
		}
		*dst = n
	}
	return nil
}

// ValidateSMS checks that a Twilio notifier can be built
func (c *Config) ValidateSMS() error {
	missing := []string{}
	if c.SMS.AccountSID == "" {
		missing = append(missing, "sms.account_sid")
	}
	if c.SMS.AuthToken == "" {
		missing = append(missing, "sms.auth_token")
	}
	if c.SMS.From == "" {
		missing = append(missing, "sms.from")
	}
	if c.SMS.To == "" {
		missing = append(missing, "sms.to")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing sms settings: %v", missing)
	}
	return nil
}

// ValidateMenu checks the menu source settings
func (c *Config) ValidateMenu() error {
	switch c.Menu.Source {
	case MenuSourceFile:
		if c.Menu.File == "" {
			return errors.New("menu.file is required when menu.source is file")
		}
	case MenuSourcePostgres:
		if c.Database.Host == "" || c.Database.Database == "" {
			return errors.New("database.host and database.database are required when menu.source is postgres")
		}
	default:
		return fmt.Errorf("unknown menu source: %s", c.Menu.Source)
	}
	return nil
}

// DatabaseURL returns a PostgreSQL connection URL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQURL returns an AMQP connection URL
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
