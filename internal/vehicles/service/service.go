// Package service implements vehicle listing use cases on top of the
// repository.
package service

import (
	"context"
	"time"

	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/internal/vehicles/transport"
	"autohaus_backend/platform/apperr"
	"autohaus_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	defaultPageSize  = 12
	featuredPageSize = 6
	dateFormat       = "2006-01-02"
)

// Service exposes vehicle listing operations.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates the vehicle service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns listings matching the browse filters.
func (s *Service) List(ctx context.Context, req transport.ListVehiclesRequest) (transport.VehicleListResponse, error) {
	params := repository.ListParams{
		Make:      req.Make,
		PriceMin:  req.PriceMin,
		PriceMax:  req.PriceMax,
		YearMin:   req.YearMin,
		YearMax:   req.YearMax,
		KmMin:     req.KmMin,
		KmMax:     req.KmMax,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}

	vehicles, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.VehicleListResponse{}, s.storeErr("list vehicles", "failed to list vehicles", err)
	}

	items := make([]transport.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, toResponse(v))
	}

	totalPages := total / params.PageSize
	if total%params.PageSize != 0 {
		totalPages++
	}

	return transport.VehicleListResponse{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Featured returns the newest featured listings for the home page.
func (s *Service) Featured(ctx context.Context) ([]transport.VehicleResponse, error) {
	vehicles, err := s.repo.ListFeatured(ctx, featuredPageSize)
	if err != nil {
		return nil, s.storeErr("list featured vehicles", "failed to list featured vehicles", err)
	}

	items := make([]transport.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, toResponse(v))
	}
	return items, nil
}

// Get returns one listing by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.VehicleResponse, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.VehicleResponse{}, s.storeErr("get vehicle", "failed to load vehicle", err)
	}
	return toResponse(vehicle), nil
}

// Snapshot captures the listing fields embedded into an enquiry at
// submission time.
func (s *Service) Snapshot(ctx context.Context, id uuid.UUID) (transport.VehicleResponse, error) {
	return s.Get(ctx, id)
}

// Create inserts a staff-managed listing.
func (s *Service) Create(ctx context.Context, req transport.SaveVehicleRequest) (transport.VehicleResponse, error) {
	created, err := s.repo.Create(ctx, fromSaveRequest(req))
	if err != nil {
		return transport.VehicleResponse{}, s.storeErr("create vehicle", "failed to create vehicle", err)
	}
	return toResponse(created), nil
}

// Update fully replaces a staff-managed listing.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.SaveVehicleRequest) (transport.VehicleResponse, error) {
	updated, err := s.repo.Update(ctx, id, fromSaveRequest(req))
	if err != nil {
		return transport.VehicleResponse{}, s.storeErr("update vehicle", "failed to update vehicle", err)
	}
	return toResponse(updated), nil
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeErr("delete vehicle", "failed to delete vehicle", err)
	}
	return nil
}

// storeErr passes typed errors through untouched and hides everything
// else behind an internal error so driver details never reach a client.
func (s *Service) storeErr(op, message string, err error) error {
	if apperr.GetKind(err) != apperr.KindUnknown {
		return err
	}
	s.log.DatabaseError(op, err)
	return apperr.Internal(message)
}

func fromSaveRequest(req transport.SaveVehicleRequest) repository.Vehicle {
	return repository.Vehicle{
		StockNumber:      req.StockNumber,
		Make:             &req.Make,
		Model:            &req.Model,
		Badge:            req.Badge,
		Series:           req.Series,
		Body:             req.Body,
		Color:            req.Color,
		InteriorColour:   req.InteriorColour,
		Price:            req.Price,
		SpecialPrice:     req.SpecialPrice,
		Year:             req.Year,
		Odometer:         req.Odometer,
		FuelType:         req.FuelType,
		GearType:         req.GearType,
		Drive:            req.Drive,
		EngineSize:       req.EngineSize,
		Cylinders:        req.Cylinders,
		DoorNum:          req.DoorNum,
		Seats:            req.Seats,
		StandardFeatures: req.StandardFeatures,
		OptionalFeatures: req.OptionalFeatures,
		AdvDescription:   req.AdvDescription,
		ShortDescription: req.ShortDescription,
		VideoLink:        req.VideoLink,
		Warranty:         req.Warranty,
		IsDemo:           req.IsDemo,
		IsSpecial:        req.IsSpecial,
		IsPrestiged:      req.IsPrestiged,
		IsUsed:           req.IsUsed,
		Featured:         req.Featured,
		Images:           req.Images,
	}
}

func toResponse(v repository.Vehicle) transport.VehicleResponse {
	images := v.Images
	if images == nil {
		images = []string{}
	}

	return transport.VehicleResponse{
		ID:                v.ID,
		StockNumber:       v.StockNumber,
		Make:              v.Make,
		Model:             v.Model,
		Badge:             v.Badge,
		Series:            v.Series,
		Body:              v.Body,
		Color:             v.Color,
		InteriorColour:    v.InteriorColour,
		Price:             v.Price,
		SpecialPrice:      v.SpecialPrice,
		Year:              v.Year,
		Odometer:          v.Odometer,
		IsMiles:           v.IsMiles,
		FuelType:          v.FuelType,
		GearType:          v.GearType,
		GearCount:         v.GearCount,
		Drive:             v.Drive,
		EngineSize:        v.EngineSize,
		EngineMake:        v.EngineMake,
		EnginePower:       v.EnginePower,
		PowerKW:           v.PowerKW,
		PowerHP:           v.PowerHP,
		Cylinders:         v.Cylinders,
		DoorNum:           v.DoorNum,
		Seats:             v.Seats,
		WheelSize:         v.WheelSize,
		Wheels:            v.Wheels,
		AxleConfiguration: v.AxleConfiguration,
		GCM:               v.GCM,
		GVM:               v.GVM,
		Tare:              v.Tare,
		TowBallWeight:     v.TowBallWeight,
		SleepingCapacity:  v.SleepingCapacity,
		StandardFeatures:  v.StandardFeatures,
		OptionalFeatures:  v.OptionalFeatures,
		AdvDescription:    v.AdvDescription,
		ShortDescription:  v.ShortDescription,
		StockType:         v.StockType,
		StockStatus:       v.StockStatus,
		RegoState:         v.RegoState,
		RegoExpiry:        formatDate(v.RegoExpiry),
		BuildDate:         formatDate(v.BuildDate),
		ComplianceDate:    formatDate(v.ComplianceDate),
		VideoLink:         v.VideoLink,
		Warranty:          v.Warranty,
		IsDemo:            v.IsDemo,
		IsSpecial:         v.IsSpecial,
		IsPrestiged:       v.IsPrestiged,
		IsUsed:            v.IsUsed,
		IsDAP:             v.IsDAP,
		Featured:          v.Featured,
		Toilet:            v.Toilet,
		Shower:            v.Shower,
		AirConditioning:   v.AirConditioning,
		Fridge:            v.Fridge,
		Stereo:            v.Stereo,
		GPS:               v.GPS,
		Images:            images,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateFormat)
	return &formatted
}
