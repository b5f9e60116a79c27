// Command keygen writes the FHE key pair and the oracle's attestation key
// pair to the paths named in the config.
package main

import (
	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

func main() {
	log := logger.NewLogger("farm-keygen")

	cfg, err := config.GetKeygenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	params, err := fhe.NewParameters(cfg.FHE.LogN, cfg.FHE.PlaintextModulus)
	if err != nil {
		log.Fatal().Err(err).Msg("error building FHE parameters")
	}

	keys := fhe.GenerateKeys(params)
	if err = fhe.SaveSecretKey(cfg.FHE.SecretKeyPath, keys.Secret); err != nil {
		log.Fatal().Err(err).Msg("error saving FHE secret key")
	}
	if err = fhe.SavePublicKey(cfg.FHE.PublicKeyPath, keys.Public); err != nil {
		log.Fatal().Err(err).Msg("error saving FHE public key")
	}

	pub, priv, err := attestation.GenerateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("error generating attestation key")
	}
	if err = attestation.SavePrivateKey(cfg.Attestation.PrivateKeyPath, priv); err != nil {
		log.Fatal().Err(err).Msg("error saving attestation private key")
	}
	if err = attestation.SavePublicKey(cfg.Attestation.PublicKeyPath, pub); err != nil {
		log.Fatal().Err(err).Msg("error saving attestation public key")
	}

	log.Info().
		Str("fhe_public_key", cfg.FHE.PublicKeyPath).
		Str("attestation_public_key", cfg.Attestation.PublicKeyPath).
		Msg("keys generated")
}
