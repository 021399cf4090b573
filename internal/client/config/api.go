package config

import "time"

// APIConfig описывает подключение к REST бэкенду.
// При Local=true используется бэкенд в памяти процесса.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"GOODNOTES_API_BASE_URL" env-default:"http://localhost:8000/api"`
	Timeout time.Duration `yaml:"timeout" env:"GOODNOTES_API_TIMEOUT" env-default:"10s"`
	Local   bool          `yaml:"local" env:"GOODNOTES_API_LOCAL" env-default:"false"`
}
