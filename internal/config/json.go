package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Remote struct {
		BaseURL        string   `json:"base_url"`
		Collection     string   `json:"collection"`
		Credential     string   `json:"credential"`
		RequestTimeout Duration `json:"request_timeout"`
		Description    string   `json:"description"`
	} `json:"remote,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
	} `json:"storage,omitempty"`

	Codec struct {
		Mode string `json:"mode"`
	} `json:"codec,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		SyncTimeout  Duration `json:"sync_timeout"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		Credential     string   `json:"credential"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			Collection:     jsonCfg.Remote.Collection,
			Credential:     jsonCfg.Remote.Credential,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			Description:    jsonCfg.Remote.Description,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DSN:    jsonCfg.Storage.DSN,
		},
		Codec: Codec{Mode: jsonCfg.Codec.Mode},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			SyncTimeout:  time.Duration(jsonCfg.Workers.SyncTimeout),
		},
		Log: Log{File: jsonCfg.Log.File},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			Credential:     jsonCfg.Server.Credential,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
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
