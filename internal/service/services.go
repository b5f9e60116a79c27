package service

import (
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/crypto"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

// Services is the contract host's service set.
type Services struct {
	AuthService           AuthService
	AppInfoService        AppInfoService
	ReadingService        ReadingService
	TwinService           TwinService
	RecommendationService RecommendationService
	AggregateService      AggregateService
	CallbackService       CallbackService
	OracleFeedService     OracleFeedService
	EventService          EventService
	DataService           DataService
	MaintenanceService    MaintenanceService
}

// NewServices wires every service of the contract host around contract.
func NewServices(contract *Contract, ledger store.Ledger, hasher crypto.PasswordHasher,
	cfg config.App, buildInfo models.AppBuildInfo) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:           NewAuthService(ledger, hasher, cfg),
		AppInfoService:        appInfo,
		ReadingService:        NewReadingService(contract),
		TwinService:           NewTwinService(contract),
		RecommendationService: NewRecommendationService(contract),
		AggregateService:      NewAggregateService(contract),
		CallbackService:       NewCallbackService(contract),
		OracleFeedService:     NewOracleFeedService(contract),
		EventService:          NewEventService(contract),
		DataService:           NewDataService(contract),
		MaintenanceService:    NewMaintenanceService(contract),
	}, nil
}
