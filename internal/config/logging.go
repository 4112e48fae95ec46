package config

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// SetupLogging installs the apex/log handler and level described by c.
func (c Config) SetupLogging(w io.Writer) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	switch c.LogFormat {
	case "json":
		log.SetHandler(json.New(w))
	default:
		log.SetHandler(text.New(w))
	}
	log.SetLevel(level)
	return nil
}
