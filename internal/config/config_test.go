package config

import (
	"errors"
	"flag"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DIAL_API_KEY", "")
	t.Setenv("DIAL_URL", "")
	t.Setenv("TTI_DEPLOYMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Deployment != "imagegeneration@005" {
		t.Errorf("Deployment = %q", cfg.Deployment)
	}
	if cfg.Prompt != "Sunny day on Bali" {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if cfg.Dial.URL != "https://ai-proxy.lab.epam.com" {
		t.Errorf("Dial.URL = %q", cfg.Dial.URL)
	}
	if cfg.Dial.Timeout != 2*time.Minute {
		t.Errorf("Dial.Timeout = %v", cfg.Dial.Timeout)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DIAL_API_KEY", "k-123")
	t.Setenv("DIAL_URL", "https://dial.example.com/")
	t.Setenv("DIAL_TIMEOUT", "15s")
	t.Setenv("TTI_DEPLOYMENT", "dall-e-3")
	t.Setenv("TTI_QUALITY", "hd")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dial.APIKey != "k-123" || cfg.Dial.URL != "https://dial.example.com/" {
		t.Errorf("Dial = %+v", cfg.Dial)
	}
	if cfg.Dial.Timeout != 15*time.Second {
		t.Errorf("Dial.Timeout = %v", cfg.Dial.Timeout)
	}
	if cfg.Deployment != "dall-e-3" || cfg.Quality != "hd" {
		t.Errorf("Deployment = %q, Quality = %q", cfg.Deployment, cfg.Quality)
	}
	if err := cfg.Dial.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := Defaults()
	fs := flag.NewFlagSet("tti", flag.ContinueOnError)
	cfg.BindFlags(fs)

	if err := fs.Parse([]string{"-prompt", "Foggy London", "-style", "natural", "https://host/bucket/img123.png"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Prompt != "Foggy London" || cfg.Style != "natural" {
		t.Errorf("Prompt = %q, Style = %q", cfg.Prompt, cfg.Style)
	}
	if fs.NArg() != 1 || fs.Arg(0) != "https://host/bucket/img123.png" {
		t.Errorf("args = %v", fs.Args())
	}
}

func TestDialConfig_DeploymentURL(t *testing.T) {
	cases := []struct {
		url, path, want string
	}{
		{"https://dial.example.com", "/openai/deployments", "https://dial.example.com/openai/deployments/dall-e-3/"},
		{"https://dial.example.com/", "openai/deployments/", "https://dial.example.com/openai/deployments/dall-e-3/"},
		{"http://localhost:8080", "", "http://localhost:8080/dall-e-3/"},
	}
	for _, c := range cases {
		got := DialConfig{URL: c.url, DeploymentsPath: c.path}.DeploymentURL("dall-e-3")
		if got != c.want {
			t.Errorf("DeploymentURL(%q, %q) = %q, want %q", c.url, c.path, got, c.want)
		}
	}
}

func TestDialConfig_Validate(t *testing.T) {
	if err := (DialConfig{URL: "https://x"}).Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("missing key: %v", err)
	}
	if err := (DialConfig{APIKey: "k"}).Validate(); !errors.Is(err, ErrMissingURL) {
		t.Errorf("missing url: %v", err)
	}
}
