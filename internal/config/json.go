package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the JSON configuration file at jsonFilePath and decodes it
// into a Config. The same struct drives both env and JSON decoding, so the
// file mirrors the configuration layout:
//
//	{
//	  "auth": {"access_secret": "...", "access_token_ttl": "168h"},
//	  "server": {"http_address": ":3000"},
//	  "storage": {"dsn": "postgres://..."}
//	}
func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	cfg := &Config{}
	if err := json.NewDecoder(jsonFile).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	// the file must not redirect config loading to another file
	cfg.JSONFilePath = ""

	return cfg, nil
}
