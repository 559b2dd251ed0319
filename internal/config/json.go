package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			ConnectAttempts int      `json:"connect_attempts"`
			ConnectInterval Duration `json:"connect_interval"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Classifier struct {
		Endpoint               string   `json:"endpoint"`
		MaxAttempts            int      `json:"max_attempts"`
		PerAttemptTimeout      Duration `json:"per_attempt_timeout"`
		RetryInterval          Duration `json:"retry_interval"`
		RateLimitRetryInterval Duration `json:"rate_limit_retry_interval"`
		DefaultSeverity        string   `json:"default_severity"`
	} `json:"classifier,omitempty"`

	Queue struct {
		RedisURL string `json:"redis_url"`
		Key      string `json:"key"`
		Size     int    `json:"size"`
	} `json:"queue,omitempty"`

	Workers struct {
		AuditMaxDeliveries int      `json:"audit_max_deliveries"`
		AuditPollTimeout   Duration `json:"audit_poll_timeout"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				ConnectAttempts: jsonCfg.Storage.DB.ConnectAttempts,
				ConnectInterval: time.Duration(jsonCfg.Storage.DB.ConnectInterval),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Classifier: Classifier{
			Endpoint:               jsonCfg.Classifier.Endpoint,
			MaxAttempts:            jsonCfg.Classifier.MaxAttempts,
			PerAttemptTimeout:      time.Duration(jsonCfg.Classifier.PerAttemptTimeout),
			RetryInterval:          time.Duration(jsonCfg.Classifier.RetryInterval),
			RateLimitRetryInterval: time.Duration(jsonCfg.Classifier.RateLimitRetryInterval),
			DefaultSeverity:        jsonCfg.Classifier.DefaultSeverity,
		},
		Queue: Queue{
			RedisURL: jsonCfg.Queue.RedisURL,
			Key:      jsonCfg.Queue.Key,
			Size:     jsonCfg.Queue.Size,
		},
		Workers: Workers{
			AuditMaxDeliveries: jsonCfg.Workers.AuditMaxDeliveries,
			AuditPollTimeout:   time.Duration(jsonCfg.Workers.AuditPollTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
