// Package adapters wires bounded contexts together without direct imports
// between their service layers.
package adapters

import (
	"context"

	enqservice "autohaus_backend/internal/enquiries/service"
	vehservice "autohaus_backend/internal/vehicles/service"

	"github.com/google/uuid"
)

// VehicleSnapshotAdapter lets the enquiry intake freeze listing fields at
// submission time without depending on the vehicles context directly.
type VehicleSnapshotAdapter struct {
	vehicles *vehservice.Service
}

// NewVehicleSnapshotAdapter creates the adapter.
func NewVehicleSnapshotAdapter(vehicles *vehservice.Service) *VehicleSnapshotAdapter {
	return &VehicleSnapshotAdapter{vehicles: vehicles}
}

// Snapshot resolves a listing into the fields embedded in an enquiry. The
// listed price is captured even when a special price is advertised; the
// snapshot records what the vehicle is worth, not the current promotion.
func (a *VehicleSnapshotAdapter) Snapshot(ctx context.Context, id uuid.UUID) (enqservice.VehicleSnapshot, error) {
	vehicle, err := a.vehicles.Snapshot(ctx, id)
	if err != nil {
		return enqservice.VehicleSnapshot{}, err
	}

	return enqservice.VehicleSnapshot{
		Make:  vehicle.Make,
		Model: vehicle.Model,
		Year:  vehicle.Year,
		Price: vehicle.Price,
	}, nil
}

var _ enqservice.VehicleSnapshotReader = (*VehicleSnapshotAdapter)(nil)
