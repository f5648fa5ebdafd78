package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PoignardAzur/marquee/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envAPIBase    = "MARQUEE_API_BASE"
	envCatalog    = "MARQUEE_CATALOG"
	envWidth      = "MARQUEE_WIDTH"
	envHeight     = "MARQUEE_HEIGHT"
	envFPS        = "MARQUEE_FPS"
	envShowFooter = "MARQUEE_FOOTER"
	envTimeout    = "MARQUEE_TIMEOUT"
	envVerbose    = "MARQUEE_VERBOSE"
	envTrace      = "MARQUEE_TRACE"
	envLogFile    = "MARQUEE_LOG_FILE"
)

const defaultCatalogID = "home"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("marquee", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiBase := fs.String("api-base", envOrDefault(env, envAPIBase, ""), "base URL of the catalog API (empty uses the built-in endpoint)")
	catalogID := fs.String("catalog", envOrDefault(env, envCatalog, defaultCatalogID), "catalog document to browse")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fps := fs.Int("fps", envOrInt(env, envFPS, 0), "animation frames per second (0 uses the default)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "enable footer hint row")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, 0), "HTTP timeout for catalog fetches (0 uses the default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show the selection position in the header")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *fps < 0 {
		return Config{}, fmt.Errorf("fps must be >= 0 (got %d)", *fps)
	}
	if *timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *timeout)
	}
	if strings.TrimSpace(*catalogID) == "" {
		return Config{}, fmt.Errorf("catalog must not be empty")
	}

	cfg := Config{
		App: app.Config{
			APIBase:    *apiBase,
			CatalogID:  *catalogID,
			Width:      *width,
			Height:     *height,
			FPS:        *fps,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Timeout:    *timeout,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"apiBase": *apiBase,
			"catalog": *catalogID,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"fps":     strconv.Itoa(*fps),
			"footer":  strconv.FormatBool(*footer),
			"timeout": timeout.String(),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
