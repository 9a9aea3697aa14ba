package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type UploadConfig struct {
	MaxFileSize int64    `yaml:"maxFileSize" validate:"required|min:1"`
	Extensions  []string `yaml:"extensions"`
}

// ParserConfig controls how transcript lines that match no timestamp
// pattern are handled. "drop" discards them, "append" folds them into
// the previous message as a continuation.
type ParserConfig struct {
	ContinuationPolicy string `yaml:"continuationPolicy" validate:"in:drop,append"`
}

type AnalysisConfig struct {
	TopWords        int `yaml:"topWords"`
	TopWordsPerUser int `yaml:"topWordsPerUser"`
	TopEmojis       int `yaml:"topEmojis"`
	TopDomains      int `yaml:"topDomains"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Logger      LoggerConfig   `yaml:"logger"`
	Upload      UploadConfig   `yaml:"upload"`
	Parser      ParserConfig   `yaml:"parser"`
	Analysis    AnalysisConfig `yaml:"analysis"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}
