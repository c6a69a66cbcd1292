package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		APIKey     string `json:"api_key"`
		APIVersion int    `json:"api_version"`
		Version    string `json:"version"`
	} `json:"app,omitempty"`

	Collection struct {
		BaseDir string `json:"base_dir"`
		Create  bool   `json:"create"`
	} `json:"collection,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Sync struct {
		User           string   `json:"user"`
		Key            string   `json:"key"`
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"sync,omitempty"`

	Scheduler struct {
		DebounceDelay    Duration `json:"debounce_delay"`
		PeriodicInterval Duration `json:"periodic_interval"`
	} `json:"scheduler,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:     jsonCfg.App.APIKey,
			APIVersion: jsonCfg.App.APIVersion,
			Version:    jsonCfg.App.Version,
		},
		Collection: Collection{
			BaseDir: jsonCfg.Collection.BaseDir,
			Create:  jsonCfg.Collection.Create,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Sync: Sync{
			User:           jsonCfg.Sync.User,
			Key:            jsonCfg.Sync.Key,
			Endpoint:       jsonCfg.Sync.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Sync.RequestTimeout),
		},
		Scheduler: Scheduler{
			DebounceDelay:    time.Duration(jsonCfg.Scheduler.DebounceDelay),
			PeriodicInterval: time.Duration(jsonCfg.Scheduler.PeriodicInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
