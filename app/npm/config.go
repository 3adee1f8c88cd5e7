package npm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"npmtui/app/project"

	"github.com/spf13/viper"
)

// Viper keys for the configuration surface.
const (
	keyBin          = "npm.bin"
	keyManifestName = "npm.manifest_name"
	keyGlobalArgs   = "npm.global_args"
	keyVerbArgs     = "npm.verb_args"
	keyDestination  = "npm.install_destination"
	keyListDepth    = "npm.list_depth"
	keyUsePTY       = "ui.pty"
)

// Config is the explicit command configuration passed into every builder
// call. Defaults are materialized once at startup; screens mutate their own
// copy and nothing is shared behind the caller's back.
type Config struct {
	Bin          string      // package-manager binary, default "npm"
	ManifestName string      // manifest filename, default "package.json"
	GlobalArgs   string      // free-form args placed before the verb
	VerbArgs     string      // free-form args placed after install-family verbs
	Destination  Destination // where installed dependencies are saved
	ListDepth    int         // --depth for the list verb
	UsePTY       bool        // allocate a pseudo-terminal for subprocess output
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Bin:          "npm",
		ManifestName: project.DefaultManifestName,
		GlobalArgs:   "",
		VerbArgs:     "",
		Destination:  DestRegular,
		ListDepth:    0,
		UsePTY:       true,
	}
}

// ConfigDir returns the npmtui configuration directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "npmtui"), nil
}

func newViper() (*viper.Viper, string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault(keyBin, defaults.Bin)
	v.SetDefault(keyManifestName, defaults.ManifestName)
	v.SetDefault(keyGlobalArgs, defaults.GlobalArgs)
	v.SetDefault(keyVerbArgs, defaults.VerbArgs)
	v.SetDefault(keyDestination, string(defaults.Destination))
	v.SetDefault(keyListDepth, defaults.ListDepth)
	v.SetDefault(keyUsePTY, defaults.UsePTY)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("NPMTUI")
	// Dotted keys are unaddressable in a shell; npm.bin becomes NPMTUI_NPM_BIN.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, dir, nil
}

// LoadConfig reads the configuration from the config file and environment,
// returning built-in defaults when no file exists. An unknown destination in
// the file is a hard error, not a silent fallback.
func LoadConfig() (Config, error) {
	v, _, err := newViper()
	if err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	dest, err := ParseDestination(v.GetString(keyDestination))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Bin:          v.GetString(keyBin),
		ManifestName: v.GetString(keyManifestName),
		GlobalArgs:   v.GetString(keyGlobalArgs),
		VerbArgs:     v.GetString(keyVerbArgs),
		Destination:  dest,
		ListDepth:    v.GetInt(keyListDepth),
		UsePTY:       v.GetBool(keyUsePTY),
	}, nil
}

// SaveConfig persists cfg to the config file so it survives restarts.
// Without an explicit save, edits live only for the running session.
func SaveConfig(cfg Config) error {
	v, dir, err := newViper()
	if err != nil {
		return err
	}

	if _, err := cfg.Destination.Flag(); err != nil {
		return err
	}

	v.Set(keyBin, cfg.Bin)
	v.Set(keyManifestName, cfg.ManifestName)
	v.Set(keyGlobalArgs, cfg.GlobalArgs)
	v.Set(keyVerbArgs, cfg.VerbArgs)
	v.Set(keyDestination, string(cfg.Destination))
	v.Set(keyListDepth, cfg.ListDepth)
	v.Set(keyUsePTY, cfg.UsePTY)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
