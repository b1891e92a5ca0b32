// Package env loads Odoo instance settings for test runs.
//
// Values come from, lowest precedence first: an optional YAML profile named
// by ODOO_PROFILE, then .env, then .env.<APP_ENV>, then the process
// environment.
package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	KeyAppEnv     = "APP_ENV"
	KeyProfile    = "ODOO_PROFILE"
	KeyURL        = "ODOO_URL"
	KeyUsername   = "ODOO_USERNAME"
	KeyPassword   = "ODOO_PASSWORD"
	KeyHeadless   = "ODOO_HEADLESS"
	KeySlowMotion = "ODOO_SLOW_MOTION_MS"
	KeyTimeout    = "ODOO_TIMEOUT_MS"
	KeyLogLevel   = "LOG_LEVEL"
)

type EnvService struct {
	appEnv  string
	profile map[string]string
}

// NewEnvService loads .env files from dir. Missing files are not an error;
// CI usually sets the environment directly.
func NewEnvService(dir string) (*EnvService, error) {
	appEnv := os.Getenv(KeyAppEnv)
	if appEnv == "" {
		appEnv = "dev"
	}

	// godotenv.Load never overrides variables that are already set, so the
	// most specific source is loaded first.
	for _, name := range []string{".env." + appEnv, ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	e := &EnvService{appEnv: appEnv, profile: map[string]string{}}

	if path := os.Getenv(KeyProfile); path != "" {
		p, err := LoadProfile(path)
		if err != nil {
			return nil, err
		}
		e.profile = p.values()
	}

	return e, nil
}

func (e *EnvService) AppEnv() string {
	return e.appEnv
}

func (e *EnvService) Get(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return e.profile[key]
}

func (e *EnvService) GetWithDefault(key, defaultValue string) string {
	if v := e.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (e *EnvService) MustGet(key string) (string, error) {
	v := e.Get(key)
	if v == "" {
		return "", fmt.Errorf("env %s is missing", key)
	}
	return v, nil
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetMillis reads an integer number of milliseconds.
func (e *EnvService) GetMillis(key string, defaultValue time.Duration) time.Duration {
	ms := e.GetInt(key, -1)
	if ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}

// Profile is the YAML form of an instance's settings:
//
//	url: http://localhost:8069
//	username: admin
//	password: admin
//	headless: true
//	slow_motion_ms: 0
//	timeout_ms: 10000
type Profile struct {
	URL          string `yaml:"url"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Headless     *bool  `yaml:"headless"`
	SlowMotionMS *int   `yaml:"slow_motion_ms"`
	TimeoutMS    *int   `yaml:"timeout_ms"`
	LogLevel     string `yaml:"log_level"`
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) values() map[string]string {
	v := map[string]string{
		KeyURL:      p.URL,
		KeyUsername: p.Username,
		KeyPassword: p.Password,
		KeyLogLevel: p.LogLevel,
	}
	if p.Headless != nil {
		v[KeyHeadless] = strconv.FormatBool(*p.Headless)
	}
	if p.SlowMotionMS != nil {
		v[KeySlowMotion] = strconv.Itoa(*p.SlowMotionMS)
	}
	if p.TimeoutMS != nil {
		v[KeyTimeout] = strconv.Itoa(*p.TimeoutMS)
	}
	return v
}
