package logging

import (
	"os"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

type ObjectWithLevel interface {
	MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level)
}

type withLevel struct {
	level zerolog.Level
	obj   ObjectWithLevel
}

func WithLevel(level zerolog.Level, obj ObjectWithLevel) *withLevel {
	if obj == nil {
		return nil
	}
	return &withLevel{level: level, obj: obj}
}

func (w *withLevel) MarshalZerologObject(e *zerolog.Event) {
	w.obj.MarshalZerologObjectWithLevel(e, w.level)
}

func ObjectIf(e *zerolog.Event, key string, w *withLevel, logNil bool) {
	if w == nil {
		if logNil {
			e.Interface(key, nil)
		}
		return
	}
	e.Object(key, w)
}

// Compile builds a logger from a zeroconfig YAML document.
func Compile(data []byte) (*zerolog.Logger, error) {
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Compile()
}

// LoadLogging replaces the global logger. Without SITEMETA_LOG_CONFIG the
// logger writes human readable lines to stderr at info level.
func LoadLogging() {
	path := os.Getenv(config.LogConfigEnv)
	if path == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
	}
	logger, err := Compile(data)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid, see go.mau.fi/zeroconfig documentation")
	}
	log.Logger = *logger
}
