package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/celestiaorg/liquidburn/app"
	"github.com/celestiaorg/liquidburn/pkg/appconsts"
)

// EnvPrefix is the prefix of environment variables that override config keys
// and flags, for example LIQUIDBURN_LOG_LEVEL.
const EnvPrefix = "LIQUIDBURN"

const (
	configDirName  = "config"
	dataDirName    = "data"
	configFileName = "config.toml"
	genesisName    = "genesis.json"
	lockFileName   = "liquidburn.lock"
)

// Config is the node configuration stored in config/config.toml.
type Config struct {
	ChainID     string `toml:"chain-id" mapstructure:"chain-id"`
	Authority   string `toml:"authority" mapstructure:"authority"`
	RewardDenom string `toml:"reward-denom" mapstructure:"reward-denom"`
	DBBackend   string `toml:"db-backend" mapstructure:"db-backend"`
	LogLevel    string `toml:"log-level" mapstructure:"log-level"`

	homeDir string
}

// DefaultConfig returns the default node configuration.
func DefaultConfig() Config {
	return Config{
		ChainID:     appconsts.LocalChainID,
		RewardDenom: appconsts.BondDenom,
		DBBackend:   "goleveldb",
		LogLevel:    "info",
	}
}

// Validate checks that the configuration can start a node.
func (c Config) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain-id cannot be empty")
	}
	if c.RewardDenom == "" {
		return errors.New("reward-denom cannot be empty")
	}
	if c.DBBackend == "" {
		return errors.New("db-backend cannot be empty")
	}
	return nil
}

// Home returns the node home directory the config was loaded from.
func (c Config) Home() string { return c.homeDir }

// ConfigFile returns the path of config.toml under home.
func ConfigFile(home string) string {
	return filepath.Join(home, configDirName, configFileName)
}

// GenesisFile returns the path of genesis.json under home.
func GenesisFile(home string) string {
	return filepath.Join(home, configDirName, genesisName)
}

// DataDir returns the database directory under home.
func DataDir(home string) string {
	return filepath.Join(home, dataDirName)
}

// WriteConfigFile writes cfg to path as TOML.
func WriteConfigFile(path string, cfg Config) error {
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}

// LoadConfig reads the configuration for home. Values are resolved in order
// of precedence: flags, LIQUIDBURN_* environment variables, config.toml and
// the defaults.
func LoadConfig(home string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("chain-id", defaults.ChainID)
	v.SetDefault("reward-denom", defaults.RewardDenom)
	v.SetDefault("db-backend", defaults.DBBackend)
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("authority", "")

	v.SetConfigType("toml")
	v.SetConfigFile(ConfigFile(home))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"chain-id", "authority", "reward-denom", "db-backend", "log-level"} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(name, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile(home), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.homeDir = home
	return cfg, cfg.Validate()
}

// AppOptions converts the config into node options.
func (c Config) AppOptions() (app.Options, error) {
	opts := app.DefaultOptions()
	opts.ChainID = c.ChainID
	opts.RewardDenom = c.RewardDenom
	if c.Authority == "" {
		return opts, errors.New("authority is not configured: set it in config.toml, --authority or LIQUIDBURN_AUTHORITY")
	}
	authority, err := app.ResolveAccount(c.Authority)
	if err != nil {
		return opts, fmt.Errorf("authority: %w", err)
	}
	opts.Authority = authority
	return opts, nil
}
