package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 80
	DefaultEnvironment = "production"
	DevEnvironment     = "development"
	DemoValueNotSet    = "Not Set"
)

// Lookup reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it; tests pass a map-backed lookup instead.
type Lookup func(key string) (string, bool)

// Settings holds the values fixed at process start.
type Settings struct {
	Host           string
	Port           int
	Environment    string
	Debug          bool
	AllowedOrigins []string
}

// Addr is the listen address for http.Server.
func (s Settings) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

func Load() Settings {
	return LoadFrom(os.LookupEnv)
}

func LoadFrom(lookup Lookup) Settings {
	env := EnvironmentName(lookup)
	return Settings{
		Host:           envOr(lookup, "HOST", DefaultHost),
		Port:           envAsInt(lookup, "PORT", DefaultPort),
		Environment:    env,
		Debug:          env == DevEnvironment,
		AllowedOrigins: loadAllowedOrigins(lookup),
	}
}

// EnvironmentName returns the deployment environment label. APP_ENV wins over
// the legacy FLASK_ENV.
func EnvironmentName(lookup Lookup) string {
	if v := firstNonEmpty(get(lookup, "APP_ENV"), get(lookup, "FLASK_ENV")); v != "" {
		return strings.TrimSpace(v)
	}
	return DefaultEnvironment
}

// DemoValue returns DEMO_VALUE verbatim when set, even if empty.
func DemoValue(lookup Lookup) string {
	if v, ok := lookup("DEMO_VALUE"); ok {
		return v
	}
	return DemoValueNotSet
}

// MapLookup adapts a static map to Lookup.
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func loadAllowedOrigins(lookup Lookup) []string {
	extra := strings.TrimSpace(get(lookup, "CORS_ORIGINS"))
	if extra == "" {
		return []string{"*"}
	}

	var origins []string
	for _, item := range strings.Split(extra, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		origins = append(origins, item)
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func get(lookup Lookup, key string) string {
	v, _ := lookup(key)
	return v
}

func envOr(lookup Lookup, key, fallback string) string {
	if v := strings.TrimSpace(get(lookup, key)); v != "" {
		return v
	}
	return fallback
}

func envAsInt(lookup Lookup, key string, fallback int) int {
	raw := strings.TrimSpace(get(lookup, key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 65535 {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
