package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_configName = "aoc2022"
	_envPrefix  = "AOC2022"

	_defaultRow     = 2000000
	_defaultLimit   = 4000000
	_defaultRocks   = 2022
	_defaultRounds  = 10
	_defaultWorkers = 4
	_defaultOutput  = "text"
)

func _newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("sensors.row", _defaultRow)
	v.SetDefault("sensors.max", _defaultLimit)
	v.SetDefault("sensors.tuning", false)
	v.SetDefault("rocks.count", _defaultRocks)
	v.SetDefault("rocks.draw", false)
	v.SetDefault("elves.rounds", _defaultRounds)
	v.SetDefault("workers", _defaultWorkers)
	v.SetDefault("output", _defaultOutput)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// _loadConfig reads name, or ./aoc2022.yaml when name is empty. Only an
// explicitly named file has to exist.
func _loadConfig(v *viper.Viper, name string) (loaded bool, err error) {
	if name != "" {
		v.SetConfigFile(name)
	} else {
		v.SetConfigName(_configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && name == "" {
		return false, nil
	}
	return err == nil, err
}

// _bindFlags binds each named flag of fs to the key prefix.name, or to name
// alone when prefix is empty.
func _bindFlags(v *viper.Viper, fs *pflag.FlagSet, prefix string, names ...string) {
	for _, name := range names {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		v.BindPFlag(key, fs.Lookup(name))
	}
}
