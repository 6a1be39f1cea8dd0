// Package config loads runtime settings from defaults, an optional
// novastrike.yaml and NOVASTRIKE_-prefixed environment variables, in
// ascending precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings holds every tunable that is not a gameplay constant.
type Settings struct {
	LogLevel string

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	ScoresPath string

	AudioEnabled bool
	AudioVolume  float64

	TargetFPS int
}

// Load reads settings from the given directory. A missing config file is
// fine; defaults and environment variables still apply.
func Load(dir string) (Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")

	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.hostkey", ".ssh/novastrike_host_key")

	v.SetDefault("scores.path", "novastrike_scores.db")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 50) // percent

	v.SetDefault("game.fps", 60)

	v.SetConfigName("novastrike")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("novastrike")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only a malformed file is an error; absence falls back to defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, err
		}
	}

	volume := float64(v.GetInt("audio.volume")) / 100.0
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	return Settings{
		LogLevel:     v.GetString("log.level"),
		SSHHost:      v.GetString("ssh.host"),
		SSHPort:      v.GetString("ssh.port"),
		SSHHostKey:   v.GetString("ssh.hostkey"),
		ScoresPath:   v.GetString("scores.path"),
		AudioEnabled: v.GetBool("audio.enabled"),
		AudioVolume:  volume,
		TargetFPS:    v.GetInt("game.fps"),
	}, nil
}
