package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	ListenPort    string        `yaml:"listen_port"`
	APIBaseURL    string        `yaml:"api_base_url"`
	MediaBaseURL  string        `yaml:"media_base_url"`
	SecureCookies bool          `yaml:"secure_cookies"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	JwtTTL        time.Duration `yaml:"jwt_ttl"`

	FeedPageSize    int           `yaml:"feed_page_size"`
	FeedCacheTTL    time.Duration `yaml:"feed_cache_ttl"`
	FeedCachePath   string        `yaml:"feed_cache_path"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	CommentMaxLen   int           `yaml:"comment_max_len"`
	PostTitleMaxLen int           `yaml:"post_title_max_len"`
	PostBodyMaxLen  int           `yaml:"post_body_max_len"`

	// Outbound budget towards the API, requests per second with a burst
	APIRequestsPerSecond float64 `yaml:"api_requests_per_second"`
	APIRequestsBurst     int     `yaml:"api_requests_burst"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

// implementing setup.Config interface

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
