package cmds

import (
	"os"
	"path/filepath"
	"strings"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keyStorePath = "store.path"
	keyElements  = "filter.elements"
	keyFPRate    = "filter.fp_rate"
	keyLevel     = "filter.level"

	envPrefix = "BLOOMCTL"
)

type settings struct {
	v          *viper.Viper
	configFile string
	debug      bool
	logger     *zap.Logger
}

func newSettings() *settings {
	v := viper.New()
	v.SetDefault(keyStorePath, filepath.Join(homeDir(), ".bloomctl", "db"))
	v.SetDefault(keyElements, 1000)
	v.SetDefault(keyFPRate, 0.001)
	v.SetDefault(keyLevel, 0)

	return &settings{v: v, logger: defaultLogger}
}

func (s *settings) bindFlag(key string, flag *pflag.Flag) {
	if err := s.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// load reads the config file and the environment, then sets up the logger.
// An explicitly named config file must exist, the default one is optional.
func (s *settings) load() error {
	if s.configFile != "" {
		s.v.SetConfigFile(s.configFile)
	} else {
		s.v.AddConfigPath(filepath.Join(homeDir(), ".bloomctl"))
		s.v.SetConfigName("config")
		s.v.SetConfigType("yaml")
	}

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	s.v.AutomaticEnv()

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if s.configFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	level := zap.InfoLevel
	if s.debug {
		level = zap.DebugLevel
	}
	s.logger = newLogger(level)
	s.debugf("using filter store %s", s.v.GetString(keyStorePath))
	return nil
}

// withStore opens the filter store for the duration of fn.
func (s *settings) withStore(fn func(store *gobloom.FilterStore) error) error {
	store, err := gobloom.OpenFilterStore(s.v.GetString(keyStorePath), s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			s.logger.Warn("close filter store", zap.Error(err))
		}
	}()
	return fn(store)
}

func newLogger(level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
