package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// No config file in the test working directory, so LoadConfig starts from
// the defaults.
func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mysql" || cfg.Database.Port != 3306 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.JWT.ExpireTime != 24*time.Hour {
		t.Errorf("jwt expire = %v, want 24h", cfg.JWT.ExpireTime)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("redis port = %d, want 6379", cfg.Redis.Port)
	}
	if cfg.Weather.CacheTTL != 30*time.Minute {
		t.Errorf("weather cache ttl = %v, want 30m", cfg.Weather.CacheTTL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRE_TIME", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("OWM_API_KEY", "owm-key")

	cfg := LoadConfig()

	if cfg.Server.Port != "9090" {
		t.Errorf("server port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 3307 {
		t.Errorf("database = %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.JWT.Secret != "from-env" || cfg.JWT.ExpireTime != 2*time.Hour {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis db = %d, want 3", cfg.Redis.DB)
	}
	if cfg.Weather.APIKey != "owm-key" {
		t.Errorf("weather api key = %q", cfg.Weather.APIKey)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "7070"
jwt:
  secret: from-yaml
  expireTime: 12h
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadFromYAML(path)
	if cfg.Server.Port != "7070" {
		t.Errorf("server port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-yaml" || cfg.JWT.ExpireTime != 12*time.Hour {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
}

func TestLoadFromYAMLBadFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadFromYAML(path)
	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want default 8080", cfg.Server.Port)
	}
}
