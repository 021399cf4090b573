package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера просмотра.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"GOODNOTES_HTTP_HOST" env-default:"127.0.0.1"`
	Port         int           `yaml:"port" env:"GOODNOTES_HTTP_PORT" env-default:"3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"GOODNOTES_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"GOODNOTES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес в формате host:port.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
