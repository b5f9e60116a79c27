package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config. Parsing stops at the first
// positional argument; the rest is returned in Args.
//
// Flags:
//
//	-a              HTTP address host:port
//	-grpc-address   gRPC address host:port
//	-d              database DSN
//	-dialect        database dialect (postgres, sqlite)
//	-ledger         ledger backend (sql, memory)
//	-ciphertexts    ciphertext backend (db, state, files, s3)
//	-f              ciphertext directory of the files backend
//	-c, -config     JSON config file
//	-token-sign-key session token signing key
//	-token-issuer   session token issuer
//	-token-duration session token lifetime
//	-request-ttl    pending decryption request lifetime
//	-request-timeout inbound request timeout
//	-server-url     contract host URL used by client and oracle
//	-fhe-pk, -fhe-sk FHE key files
//	-attestation-key, -attestation-pub oracle signing key files
//	-log-level      zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Dialect, "dialect", "", "Database dialect (postgres, sqlite)")
	fs.StringVar(&cfg.Storage.Ledger.Backend, "ledger", "", "Ledger backend (sql, memory)")
	fs.StringVar(&cfg.Storage.Ciphertexts.Backend, "ciphertexts", "", "Ciphertext backend (db, state, files, s3)")
	fs.StringVar(&cfg.Storage.Ciphertexts.Dir, "f", "", "Ciphertext directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.App.RequestTTL, "request-ttl", 0, "Pending decryption request lifetime (e.g., 24h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.ServerURL, "server-url", "", "Contract host URL")
	fs.StringVar(&cfg.FHE.PublicKeyPath, "fhe-pk", "", "FHE public key file")
	fs.StringVar(&cfg.FHE.SecretKeyPath, "fhe-sk", "", "FHE secret key file")
	fs.StringVar(&cfg.Attestation.PrivateKeyPath, "attestation-key", "", "Oracle signing key file (PEM)")
	fs.StringVar(&cfg.Attestation.PublicKeyPath, "attestation-pub", "", "Oracle verification key file (PEM)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Args = fs.Args()

	return cfg, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "farm-twin"
	}
	return os.Args[0]
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address and
// the port must be positive.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

