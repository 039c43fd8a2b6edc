// Package config loads the json run configuration for the commands.
package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const dir = "infra/config"

// MustLoad loads the config for the given key into v.
// A missing or malformed config is a programming error and panics,
// the commands cannot run without one.
func MustLoad(key string, v interface{}) {
	if err := load(key, v); err != nil {
		panic(fmt.Sprintf("could not load config for '%s': %+v", key, err))
	}
	log.Info().Str("config", key).Msg("loaded config")
}

func load(key string, v interface{}) error {
	p := filepath.Join(dir, fmt.Sprintf("%s.json", key))
	b, err := ioutil.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read '%s': %w", p, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal '%s': %w", p, err)
	}
	return nil
}
