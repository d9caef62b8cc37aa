package app

import (
	"psup/internal/adapters"
	"psup/internal/ports"
)

// Service holds the workflow's collaborators. Registry is optional: when
// nil a gallery adapter is built per request from the request's endpoint
// and retry settings.
type Service struct {
	Inventory ports.InventoryPort
	Registry  ports.RegistryPort
	Upgrader  ports.UpgraderPort
	Console   ports.ConfirmPort
	Reporter  ports.ReporterPort
	Pins      ports.PinsPort
}

func NewService() Service {
	console := adapters.NewConsoleAdapter()
	return Service{
		Inventory: adapters.NewPSModuleInventoryAdapter(),
		Upgrader:  adapters.NewPSModuleUpgraderAdapter(),
		Console:   console,
		Reporter:  console,
		Pins:      adapters.NewPinsFileAdapter(),
	}
}

func (s Service) registry(req CheckRequest) ports.RegistryPort {
	if s.Registry != nil {
		return s.Registry
	}
	return adapters.NewGalleryRegistryAdapter(req.Source, req.Scheme, req.TimeoutSec, req.Retries, req.RetryDelayMs)
}
