package signals

import (
	"context"

	"github.com/maniartech/signals"
)

// DriverRegisteredData is emitted when a driver is added to a registry
type DriverRegisteredData struct {
	Name string
}

// DatasourceResolvedData is emitted after a datasource was turned into a connection URL
type DatasourceResolvedData struct {
	Name   string
	Driver string
	// URL has its password masked
	URL string
}

// Signal definitions using generics
var DriverRegistered = signals.New[DriverRegisteredData]()
var DatasourceResolved = signals.New[DatasourceResolvedData]()

// EmitDriverRegistered emits a signal when a driver is registered
func EmitDriverRegistered(ctx context.Context, name string) {
	DriverRegistered.Emit(ctx, DriverRegisteredData{
		Name: name,
	})
}

// EmitDatasourceResolved emits a signal when a datasource URL was built
func EmitDatasourceResolved(ctx context.Context, data DatasourceResolvedData) {
	DatasourceResolved.Emit(ctx, data)
}

// OnDriverRegistered registers a handler for driver registration events
func OnDriverRegistered(handler func(ctx context.Context, data DriverRegisteredData), key ...string) {
	if len(key) > 0 {
		DriverRegistered.AddListener(handler, key[0])
	} else {
		DriverRegistered.AddListener(handler)
	}
}

// OnDatasourceResolved registers a handler for resolved datasource events
func OnDatasourceResolved(handler func(ctx context.Context, data DatasourceResolvedData), key ...string) {
	if len(key) > 0 {
		DatasourceResolved.AddListener(handler, key[0])
	} else {
		DatasourceResolved.AddListener(handler)
	}
}

// OffDatasourceResolved removes the handler registered under key
func OffDatasourceResolved(key string) {
	DatasourceResolved.RemoveListener(key)
}

// OffDriverRegistered removes the handler registered under key
func OffDriverRegistered(key string) {
	DriverRegistered.RemoveListener(key)
}
