package service

import (
	"github.com/MKhiriev/go-farm-twin/internal/adapter"
)

type ClientServices struct {
	AuthService    ClientAuthService
	FarmService    ClientFarmService
	RecordsService ClientRecordsService
	WatchJob       ClientEventWatchJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions SessionStore, encryptor Encryptor) *ClientServices {
	farmSvc := NewClientFarmService(serverAdapter, encryptor)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, sessions),
		FarmService:    farmSvc,
		RecordsService: NewClientRecordsService(serverAdapter),
		WatchJob:       NewClientEventWatchJob(farmSvc),
	}
}
