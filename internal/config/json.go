package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
// Durations are strings such as "30s" or "24h".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		Version              string   `json:"version"`
		RequestTTL           Duration `json:"request_ttl"`
		DisableRequestExpiry bool     `json:"disable_request_expiry"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Dialect string `json:"dialect"`
			DSN     string `json:"dsn"`
		} `json:"db,omitempty"`

		Ledger struct {
			Backend string `json:"backend"`
		} `json:"ledger,omitempty"`

		Ciphertexts struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
		} `json:"ciphertexts,omitempty"`

		S3 S3JSON `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	FHE struct {
		LogN             int    `json:"log_n"`
		PlaintextModulus uint64 `json:"plaintext_modulus"`
		PublicKeyPath    string `json:"public_key_path"`
		SecretKeyPath    string `json:"secret_key_path"`
	} `json:"fhe,omitempty"`

	Attestation struct {
		PrivateKeyPath string `json:"private_key_path"`
		PublicKeyPath  string `json:"public_key_path"`
		Issuer         string `json:"issuer"`
	} `json:"attestation,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		SessionFile    string   `json:"session_file"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		PollInterval  Duration `json:"poll_interval"`
		BatchSize     int      `json:"batch_size"`
		MaxAttempts   int      `json:"max_attempts"`
	} `json:"workers,omitempty"`
}

// S3JSON is the JSON shape of the S3 section.
type S3JSON struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         j.App.TokenSignKey,
			TokenIssuer:          j.App.TokenIssuer,
			TokenDuration:        time.Duration(j.App.TokenDuration),
			Version:              j.App.Version,
			RequestTTL:           time.Duration(j.App.RequestTTL),
			DisableRequestExpiry: j.App.DisableRequestExpiry,
			LogLevel:             j.App.LogLevel,
		},
		Storage: Storage{
			DB:          DB{Dialect: j.Storage.DB.Dialect, DSN: j.Storage.DB.DSN},
			Ledger:      Ledger{Backend: j.Storage.Ledger.Backend},
			Ciphertexts: Ciphertexts{Backend: j.Storage.Ciphertexts.Backend, Dir: j.Storage.Ciphertexts.Dir},
			S3: S3{
				Endpoint:  j.Storage.S3.Endpoint,
				Region:    j.Storage.S3.Region,
				Bucket:    j.Storage.S3.Bucket,
				AccessKey: j.Storage.S3.AccessKey,
				SecretKey: j.Storage.S3.SecretKey,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		FHE: FHE{
			LogN:             j.FHE.LogN,
			PlaintextModulus: j.FHE.PlaintextModulus,
			PublicKeyPath:    j.FHE.PublicKeyPath,
			SecretKeyPath:    j.FHE.SecretKeyPath,
		},
		Attestation: Attestation{
			PrivateKeyPath: j.Attestation.PrivateKeyPath,
			PublicKeyPath:  j.Attestation.PublicKeyPath,
			Issuer:         j.Attestation.Issuer,
		},
		Adapter: Adapter{
			ServerURL:      j.Adapter.ServerURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			SessionFile:    j.Adapter.SessionFile,
		},
		Workers: Workers{
			SweepInterval: time.Duration(j.Workers.SweepInterval),
			PollInterval:  time.Duration(j.Workers.PollInterval),
			BatchSize:     j.Workers.BatchSize,
			MaxAttempts:   j.Workers.MaxAttempts,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON accepts "1h" style strings as well
// as integer nanoseconds.
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
