package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("GOOGLE_GENAI_API_KEY", "")

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Settings.Server.Addr != ":3000" {
		t.Errorf("Expected default Server.Addr ':3000', got %q", store.Settings.Server.Addr)
	}
	if store.Settings.GenAI.Model != "gemini-2.0-flash" {
		t.Errorf("Expected default GenAI.Model, got %q", store.Settings.GenAI.Model)
	}
	if store.Settings.GenAI.APIKey != "" {
		t.Errorf("Expected empty API key, got %q", store.Settings.GenAI.APIKey)
	}
	if !store.Settings.Journal.Enabled {
		t.Error("Expected journal enabled by default")
	}
	if want := filepath.Join(tmpDir, "data", "meditouch", "journal.db"); store.Settings.Journal.File != want {
		t.Errorf("Expected default journal path %q, got %q", want, store.Settings.Journal.File)
	}
	if store.Settings.Client.Endpoint != "http://localhost:3000/api/generate-menu" {
		t.Errorf("Expected default client endpoint, got %q", store.Settings.Client.Endpoint)
	}
	if store.Settings.Log.Level != "info" {
		t.Errorf("Expected default log level 'info', got %q", store.Settings.Log.Level)
	}
	if store.Path() != configPath {
		t.Errorf("Path() = %q, want %q", store.Path(), configPath)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file not created")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `server:
  addr: "127.0.0.1:8080"
genai:
  model: gemini-1.5-pro
  base_url: http://proxy.local/
journal:
  enabled: false
log:
  level: DEBUG
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Settings.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q", store.Settings.Server.Addr)
	}
	if store.Settings.GenAI.Model != "gemini-1.5-pro" {
		t.Errorf("GenAI.Model = %q", store.Settings.GenAI.Model)
	}
	if store.Settings.GenAI.BaseURL != "http://proxy.local/" {
		t.Errorf("GenAI.BaseURL = %q", store.Settings.GenAI.BaseURL)
	}
	if store.Settings.Journal.Enabled {
		t.Error("Journal.Enabled should be false")
	}
	if store.Settings.JournalPath() != "" {
		t.Errorf("JournalPath() = %q, want empty when disabled", store.Settings.JournalPath())
	}
	if store.Settings.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want normalized 'debug'", store.Settings.Log.Level)
	}
}

func TestLoad_APIKeyFromEnvIsNotSaved(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("GOOGLE_GENAI_API_KEY", " secret-key ")

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Settings.GenAI.APIKey != "secret-key" {
		t.Fatalf("APIKey = %q, want %q", store.Settings.GenAI.APIKey, "secret-key")
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(raw), "secret-key") {
		t.Fatalf("config file must not contain the api key:\n%s", raw)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	_ = os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600)

	_, err := Load(configPath)
	if err == nil {
		t.Error("Expected error for corrupt config read, got nil")
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}

	store.Settings.Client.Endpoint = "http://menus.example.com/api/generate-menu"
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Settings.Client.Endpoint != "http://menus.example.com/api/generate-menu" {
		t.Fatalf("Persistence failed, endpoint = %q", reloaded.Settings.Client.Endpoint)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "MEDITOUCH_DOTENV_TEST_VALUE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(key+"=from-dotenv\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv(key); got != "from-dotenv" {
		t.Fatalf("%s = %q, want %q", key, got, "from-dotenv")
	}
}
