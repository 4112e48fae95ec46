// Package config reads server settings from flags, falling back to
// VCHESS_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/benbeisheim/variantchess-backend/internal/bot"
)

type Config struct {
	Addr              string
	AllowOrigins      string
	BotDelay          time.Duration
	DefaultDifficulty bot.Difficulty
	LogLevel          string
	LogFormat         string
}

func Default() Config {
	return Config{
		Addr:              ":3000",
		AllowOrigins:      "http://localhost:5173",
		BotDelay:          600 * time.Millisecond,
		DefaultDifficulty: bot.Easy,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// Load parses args (without the program name). Flags win over environment.
func Load(args []string) (Config, error) {
	def := Default()
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	addr := fs.String("addr", getenv("VCHESS_ADDR", def.Addr), "listen address")
	origins := fs.String("allow-origins", getenv("VCHESS_ALLOW_ORIGINS", def.AllowOrigins), "comma-separated CORS origins")
	delay := fs.Duration("bot-delay", getenvDuration("VCHESS_BOT_DELAY", def.BotDelay), "pause before the bot replies")
	difficulty := fs.String("difficulty", getenv("VCHESS_DIFFICULTY", string(def.DefaultDifficulty)), "default bot difficulty (easy, medium, hard, pro)")
	level := fs.String("log-level", getenv("VCHESS_LOG_LEVEL", def.LogLevel), "log level (debug, info, warn, error)")
	format := fs.String("log-format", getenv("VCHESS_LOG_FORMAT", def.LogFormat), "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	d, err := bot.ParseDifficulty(*difficulty)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Config{
		Addr:              strings.TrimSpace(*addr),
		AllowOrigins:      strings.TrimSpace(*origins),
		BotDelay:          *delay,
		DefaultDifficulty: d,
		LogLevel:          strings.ToLower(strings.TrimSpace(*level)),
		LogFormat:         strings.ToLower(strings.TrimSpace(*format)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: empty listen address")
	}
	if c.BotDelay < 0 {
		return fmt.Errorf("config: negative bot delay %s", c.BotDelay)
	}
	if _, err := bot.ParseDifficulty(string(c.DefaultDifficulty)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.WithField("key", key).WithField("value", v).Warn("ignoring unparsable duration")
	}
	return def
}
