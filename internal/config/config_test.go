package config

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/apex/log"
	. "gopkg.in/check.v1"

	"github.com/benbeisheim/variantchess-backend/internal/bot"
)

func Test(t *testing.T) { TestingT(t) }

type ConfigSuite struct {
	env map[string]string
}

var _ = Suite(&ConfigSuite{})

var envKeys = []string{
	"VCHESS_ADDR",
	"VCHESS_ALLOW_ORIGINS",
	"VCHESS_BOT_DELAY",
	"VCHESS_DIFFICULTY",
	"VCHESS_LOG_LEVEL",
	"VCHESS_LOG_FORMAT",
}

func (s *ConfigSuite) SetUpTest(c *C) {
	s.env = map[string]string{}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			s.env[key] = v
		}
		os.Unsetenv(key)
	}
}

func (s *ConfigSuite) TearDownTest(c *C) {
	for _, key := range envKeys {
		os.Unsetenv(key)
		if v, ok := s.env[key]; ok {
			os.Setenv(key, v)
		}
	}
}

func (s *ConfigSuite) TestDefaults(c *C) {
	cfg, err := Load(nil)
	c.Assert(err, IsNil)
	c.Check(cfg, DeepEquals, Default())
}

func (s *ConfigSuite) TestEnvironment(c *C) {
	os.Setenv("VCHESS_ADDR", ":8080")
	os.Setenv("VCHESS_BOT_DELAY", "1s")
	os.Setenv("VCHESS_DIFFICULTY", "HARD")
	os.Setenv("VCHESS_LOG_FORMAT", "json")

	cfg, err := Load(nil)
	c.Assert(err, IsNil)
	c.Check(cfg.Addr, Equals, ":8080")
	c.Check(cfg.BotDelay, Equals, time.Second)
	c.Check(cfg.DefaultDifficulty, Equals, bot.Hard)
	c.Check(cfg.LogFormat, Equals, "json")
}

func (s *ConfigSuite) TestFlagsOverrideEnvironment(c *C) {
	os.Setenv("VCHESS_ADDR", ":8080")
	os.Setenv("VCHESS_DIFFICULTY", "hard")

	cfg, err := Load([]string{"-addr", ":9090", "-difficulty", "pro", "-bot-delay", "0s", "-log-level", "debug"})
	c.Assert(err, IsNil)
	c.Check(cfg.Addr, Equals, ":9090")
	c.Check(cfg.DefaultDifficulty, Equals, bot.Pro)
	c.Check(cfg.BotDelay, Equals, time.Duration(0))
	c.Check(cfg.LogLevel, Equals, "debug")
}

func (s *ConfigSuite) TestUnparsableDurationFallsBack(c *C) {
	os.Setenv("VCHESS_BOT_DELAY", "soon")
	cfg, err := Load(nil)
	c.Assert(err, IsNil)
	c.Check(cfg.BotDelay, Equals, Default().BotDelay)
}

func (s *ConfigSuite) TestRejects(c *C) {
	_, err := Load([]string{"-difficulty", "grandmaster"})
	c.Check(err, ErrorMatches, `config: unknown difficulty.*`)

	_, err = Load([]string{"-bot-delay", "-1s"})
	c.Check(err, ErrorMatches, `config: negative bot delay.*`)

	_, err = Load([]string{"-log-format", "xml"})
	c.Check(err, ErrorMatches, `config: unknown log format "xml"`)

	_, err = Load([]string{"-log-level", "loud"})
	c.Check(err, ErrorMatches, `config: log level "loud".*`)

	_, err = Load([]string{"-addr", " "})
	c.Check(err, ErrorMatches, `config: empty listen address`)

	_, err = Load([]string{"-no-such-flag"})
	c.Check(err, NotNil)
}

func (s *ConfigSuite) TestSetupLogging(c *C) {
	defer log.SetLevel(log.InfoLevel)

	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"
	c.Assert(cfg.SetupLogging(&buf), IsNil)

	log.Info("hidden")
	log.WithField("game", "g1").Warn("shown")
	c.Check(buf.String(), Matches, `(?s)\{.*"game":"g1".*"message":"shown".*\}\n`)

	cfg.LogLevel = "loud"
	c.Check(cfg.SetupLogging(&buf), NotNil)
}
