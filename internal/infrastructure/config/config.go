package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	BaseURL   string // URL base da API para construir URIs RFC 7807
	APIPrefix string // prefixo onde as rotas da API são montadas
}

type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	DefaultLanguage string
}

// Load carrega as configurações do arquivo .env (opcional) e do ambiente
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile carrega as configurações usando o arquivo informado.
// Variáveis já presentes no ambiente têm prioridade sobre o arquivo.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:      v.GetString("PORT"),
			Host:      v.GetString("HOST"),
			BaseURL:   v.GetString("API_BASE_URL"),
			APIPrefix: v.GetString("API_PREFIX"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "auvet_user")
	v.SetDefault("DB_NAME", "auvet_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_LANGUAGE", "pt-BR")
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with '/': %q", c.Server.APIPrefix)
	}

	return nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr retorna o endereço de escuta do servidor HTTP
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Origins separa CORS_ALLOWED_ORIGINS em uma lista, ignorando itens vazios
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// AllowsAll indica se qualquer origem é aceita ("*" ou lista vazia)
func AllowsAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
