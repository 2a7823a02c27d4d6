package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Assets struct {
			Dir          string   `json:"dir"`
			URLStrategy  string   `json:"url_strategy"`
			BaseURL      string   `json:"base_url"`
			CDNHost      string   `json:"cdn_host"`
			SignKey      string   `json:"sign_key"`
			SignedURLTTL Duration `json:"signed_url_ttl"`
		} `json:"assets,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Client struct {
		ServerAddress       string   `json:"server_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		VersionCheckTimeout Duration `json:"version_check_timeout"`
		CacheDir            string   `json:"cache_dir"`
		SnapshotPath        string   `json:"snapshot_path"`
		DownloadConcurrency int      `json:"download_concurrency"`
		SyncInterval        Duration `json:"sync_interval"`
	} `json:"client,omitempty"`
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
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Assets: Assets{
				Dir:          jsonCfg.Storage.Assets.Dir,
				URLStrategy:  jsonCfg.Storage.Assets.URLStrategy,
				BaseURL:      jsonCfg.Storage.Assets.BaseURL,
				CDNHost:      jsonCfg.Storage.Assets.CDNHost,
				SignKey:      jsonCfg.Storage.Assets.SignKey,
				SignedURLTTL: time.Duration(jsonCfg.Storage.Assets.SignedURLTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Client: Client{
			ServerAddress:       jsonCfg.Client.ServerAddress,
			RequestTimeout:      time.Duration(jsonCfg.Client.RequestTimeout),
			VersionCheckTimeout: time.Duration(jsonCfg.Client.VersionCheckTimeout),
			CacheDir:            jsonCfg.Client.CacheDir,
			SnapshotPath:        jsonCfg.Client.SnapshotPath,
			DownloadConcurrency: jsonCfg.Client.DownloadConcurrency,
			SyncInterval:        time.Duration(jsonCfg.Client.SyncInterval),
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
