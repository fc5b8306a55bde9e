package main

import (
	"flag"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Frontend selects how the game is shown
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

const (
	defaultEnvFile = ".env"
	// Keeps log lines off the terminal the game is drawn on
	defaultTerminalLog = "snake.log"
)

// Config holds the driver settings. Board size and tick rate are fixed and
// are not configurable.
type Config struct {
	Frontend Frontend
	Sound    bool
	LogFile  string // "" = stderr, "off" = discard
	Seed     uint64 // 0 = derive from the clock
}

// LoadConfig builds defaults from SNAKE_* variables, taken from the process
// environment first and from the dotenv file named by SNAKE_ENV_FILE
// (default .env) second. Command-line flags override both.
func LoadConfig(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	envPath := defaultEnvFile
	if v, ok := lookupEnv("SNAKE_ENV_FILE"); ok {
		envPath = v
	}
	fileEnv, err := readEnvFile(envPath)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	defaults := Config{Frontend: FrontendWindow, Sound: true}
	if v, ok := lookup("SNAKE_FRONTEND"); ok {
		defaults.Frontend = Frontend(v)
	}
	if v, ok := lookup("SNAKE_SOUND"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "SNAKE_SOUND=%q", v)
		}
		defaults.Sound = b
	}
	if v, ok := lookup("SNAKE_LOG"); ok {
		defaults.LogFile = v
	}
	if v, ok := lookup("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "SNAKE_SEED=%q", v)
		}
		defaults.Seed = seed
	}

	flags := flag.NewFlagSet("snake", flag.ContinueOnError)
	frontend := flags.String("frontend", string(defaults.Frontend), "Front end: window or terminal")
	sound := flags.Bool("sound", defaults.Sound, "Play sound effects")
	logFile := flags.String("log", defaults.LogFile, "Log file (stderr, or "+defaultTerminalLog+" for the terminal; \"off\" disables)")
	seed := flags.Uint64("seed", defaults.Seed, "Food placement seed (0 = random)")

	if err := flags.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	cfg := Config{
		Frontend: Frontend(strings.ToLower(strings.TrimSpace(*frontend))),
		Sound:    *sound,
		LogFile:  *logFile,
		Seed:     *seed,
	}

	switch cfg.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return Config{}, errors.Errorf("unknown front end %q (want %s or %s)", cfg.Frontend, FrontendWindow, FrontendTerminal)
	}

	if cfg.LogFile == "" && cfg.Frontend == FrontendTerminal {
		cfg.LogFile = defaultTerminalLog
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// readEnvFile loads path if it exists; a missing file is not an error
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "read env file %s", path)
	}
	return env, nil
}
