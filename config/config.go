package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jinzhu/configor"
)

const DefaultConfigFile = "config/config.dev.json"

type Config struct {
	AppConfig AppConfig `env:"APPCONFIG"`
	DBConfig  DBConfig  `env:"DBCONFIG"`
}

type AppConfig struct {
	APPName        string `default:"nabeatsu"`
	Version        string `default:"x.x.x" env:"VERSION"`
	Port           int    `default:"4000" env:"APP_PORT"`
	UploadDir      string `default:"uploads" env:"UPLOAD_DIR"`
	MaxUploadBytes int64  `default:"20971520" env:"MAX_UPLOAD_BYTES"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"postgres" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `default:"123456" env:"DBPASSWORD"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`

	// pool
	MaxOpenConns       int `default:"20" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns       int `default:"10" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxIdleSeconds int `default:"30" env:"DB_CONN_MAX_IDLE_SECONDS"`
	ConnMaxLifeSeconds int `default:"60" env:"DB_CONN_MAX_LIFE_SECONDS"`
	ConnectTimeoutSecs int `default:"2" env:"DB_CONNECT_TIMEOUT_SECONDS"`
}

// DSN is the key/value connection string used by the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s connect_timeout=%d TimeZone=UTC",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode, c.ConnectTimeoutSecs)
}

// URL is the same connection expressed as a postgres:// URL, which is what
// golang-migrate expects.
func (c DBConfig) URL() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("connect_timeout", strconv.Itoa(c.ConnectTimeoutSecs))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DataBase,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c DBConfig) ConnMaxIdleTime() time.Duration {
	return time.Duration(c.ConnMaxIdleSeconds) * time.Second
}

func (c DBConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifeSeconds) * time.Second
}

func (c AppConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// LoadConfig reads the optional JSON file at path and applies defaults and
// environment overrides on top of it.
func LoadConfig(path string) (Config, error) {
	var config = Config{}
	if path == "" {
		path = DefaultConfigFile
	}
	if err := configor.Load(&config, path); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return config, nil
}
