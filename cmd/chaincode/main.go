package main

import (
	"github.com/MKhiriev/go-farm-twin/internal/chaincode"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	log := logger.NewLogger("farm-chaincode")

	cfg, err := config.GetChaincodeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	params, err := fhe.NewParameters(cfg.FHE.LogN, cfg.FHE.PlaintextModulus)
	if err != nil {
		log.Fatal().Err(err).Msg("error building FHE parameters")
	}

	contract := chaincode.NewFarmContract(fhe.NewEvaluator(params), cfg.Attestation.Issuer, cfg.RequestTTL, log)

	cc, err := contractapi.NewChaincode(contract)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chaincode")
	}
	cc.Info.Title = "go-farm-twin"
	cc.Info.Version = cfg.App.Version

	if err = cc.Start(); err != nil {
		log.Fatal().Err(err).Msg("error starting chaincode")
	}
}
