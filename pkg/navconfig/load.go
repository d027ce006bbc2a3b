package navconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grovetools/core/config"
	"github.com/grovetools/core/logging"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ExtensionName is the grove config section holding pagenav settings.
const ExtensionName = "pagenav"

// Load resolves the effective configuration. An explicit path wins; otherwise
// the 'pagenav' extension of the grove config is used, and when there is no
// grove config the defaults apply.
func Load(path string, log *logrus.Entry) (*Config, error) {
	if log == nil {
		log = logging.NewLogger("pagenav")
	}
	if path != "" {
		return LoadFile(path, log)
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		log.WithError(err).Debug("No grove config found, using defaults")
		return Defaults(), nil
	}
	return FromGrove(cfg)
}

// FromGrove reads the 'pagenav' extension of a loaded grove config.
func FromGrove(cfg *config.Config) (*Config, error) {
	var c Config
	if err := cfg.UnmarshalExtension(ExtensionName, &c); err != nil {
		return nil, fmt.Errorf("read %s extension: %w", ExtensionName, err)
	}
	return finish(&c)
}

// LoadFile reads a standalone TOML or YAML config file.
func LoadFile(path string, log *logrus.Entry) (*Config, error) {
	if log == nil {
		log = logging.NewLogger("pagenav")
	}

	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &c)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, k := range md.Undecoded() {
			log.WithFields(logrus.Fields{
				"file": path,
				"key":  k.String(),
			}).Warn("Unknown config key ignored")
		}
	case ".yml", ".yaml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return finish(&c)
}

func finish(c *Config) (*Config, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal renders c as TOML.
func Marshal(c *Config) ([]byte, error) {
	return gotoml.Marshal(c)
}
