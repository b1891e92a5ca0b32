package env

import "time"

// Settings is everything a test run needs to reach an Odoo instance.
type Settings struct {
	URL        string
	Username   string
	Password   string
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	LogLevel   string
}

func (e *EnvService) Settings() Settings {
	return Settings{
		URL:        e.GetWithDefault(KeyURL, "http://localhost:8069"),
		Username:   e.GetWithDefault(KeyUsername, "admin"),
		Password:   e.GetWithDefault(KeyPassword, "admin"),
		Headless:   e.GetBool(KeyHeadless, true),
		SlowMotion: e.GetMillis(KeySlowMotion, 0),
		Timeout:    e.GetMillis(KeyTimeout, 10*time.Second),
		LogLevel:   e.GetWithDefault(KeyLogLevel, "info"),
	}
}
