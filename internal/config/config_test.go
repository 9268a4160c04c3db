package config

import (
	"testing"
	"time"
)

func TestMustLoad(t *testing.T) {
	cfg := MustLoad("./test_data")

	if cfg.Public.ListenPort != "8081" {
		t.Errorf("ListenPort, got: %s, want: %s", cfg.Public.ListenPort, "8081")
	}
	if cfg.Public.APIBaseURL != "http://api:8080" {
		t.Errorf("APIBaseURL, got: %s, want: %s", cfg.Public.APIBaseURL, "http://api:8080")
	}
	if cfg.Public.MediaBaseURL != "http://media.example.org" {
		t.Errorf("MediaBaseURL, got: %s, want: %s", cfg.Public.MediaBaseURL, "http://media.example.org")
	}
	if cfg.Public.FeedPageSize != 25 {
		t.Errorf("FeedPageSize, got: %d, want: %d", cfg.Public.FeedPageSize, 25)
	}
	if cfg.Public.PollInterval != 15*time.Second {
		t.Errorf("PollInterval, got: %s, want: %s", cfg.Public.PollInterval, 15*time.Second)
	}
	if cfg.Public.CommentMaxLen != 10000 {
		t.Errorf("CommentMaxLen, got: %d, want: %d", cfg.Public.CommentMaxLen, 10000)
	}
	if cfg.Public.APIRequestsPerSecond != 50 {
		t.Errorf("APIRequestsPerSecond, got: %f, want: %f", cfg.Public.APIRequestsPerSecond, 50.0)
	}
	if cfg.JwtTTL() != 720*time.Hour {
		t.Errorf("JwtTTL, got: %s, want: %s", cfg.JwtTTL(), 720*time.Hour)
	}
	if cfg.JwtKey() != "test-secret" {
		t.Errorf("private jwt key, got: %s, want: %s", cfg.JwtKey(), "test-secret")
	}
}

func TestMustLoadMissingFolder(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing config folder")
		}
	}()
	MustLoad("./does_not_exist")
}
