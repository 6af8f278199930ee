package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autohaus_backend/platform/apperr"
)

const vehicleNotFoundMessage = "vehicle not found"

// vehicleColumns lists every mapped column in a fixed order. The insert,
// update, and select statements are all generated from this list so the
// column order can never drift between them.
var vehicleColumns = []string{
	"stock_number", "make", "model", "badge", "rego_num", "vin",
	"price", "special_price", "year", "odometer",
	"body", "color", "interior_colour", "engine_size", "engine_make",
	"engine_number", "engine_power", "power_kw", "power_hp", "cylinders",
	"gear_type", "gear_count", "fuel_type", "drive", "door_num", "seats",
	"wheel_size", "wheels", "axle_configuration",
	"gcm", "gvm", "tare", "towball_weight", "sleeping_capacity",
	"standard_features", "optional_features", "adv_description", "short_description",
	"yard_code", "series", "nvic", "redbook_code", "serial_number",
	"stock_type", "stock_status", "rego_state", "video_link", "warranty",
	"is_demo", "is_special", "is_prestiged", "is_used", "is_dap", "is_miles",
	"featured", "toilet", "shower", "air_conditioning", "fridge", "stereo", "gps",
	"rego_expiry", "build_date", "compliance_date", "images",
}

// colFeatured is staff-managed through the admin API. The feed never
// carries it, so the import update path must leave it untouched.
const colFeatured = "featured"

var (
	insertSQL     = buildInsertSQL()
	updateSQL     = buildUpdateSQL()
	feedUpdateSQL = buildFeedUpdateSQL()
	selectSQL     = "SELECT id, " + strings.Join(vehicleColumns, ", ") + ", created_at, updated_at FROM vehicles"
)

func buildInsertSQL() string {
	placeholders := make([]string, 0, len(vehicleColumns)+1)
	placeholders = append(placeholders, "$1")
	for i := range vehicleColumns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
	}
	return fmt.Sprintf(
		"INSERT INTO vehicles (id, %s, created_at, updated_at) VALUES (%s, now(), now())",
		strings.Join(vehicleColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func buildUpdateSQL() string {
	assignments := make([]string, 0, len(vehicleColumns))
	for i, col := range vehicleColumns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+2))
	}
	return fmt.Sprintf(
		"UPDATE vehicles SET %s, updated_at = now() WHERE id = $1",
		strings.Join(assignments, ", "),
	)
}

// buildFeedUpdateSQL generates the update used by the import path. It
// replaces every feed column but skips the featured flag.
func buildFeedUpdateSQL() string {
	assignments := make([]string, 0, len(vehicleColumns)-1)
	idx := 2
	for _, col := range vehicleColumns {
		if col == colFeatured {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, idx))
		idx++
	}
	return fmt.Sprintf(
		"UPDATE vehicles SET %s, updated_at = now() WHERE id = $1",
		strings.Join(assignments, ", "),
	)
}

// vehicleArgs returns the bind arguments for v in vehicleColumns order.
func vehicleArgs(v Vehicle) []any {
	return []any{
		v.StockNumber, v.Make, v.Model, v.Badge, v.RegoNum, v.VIN,
		v.Price, v.SpecialPrice, v.Year, v.Odometer,
		v.Body, v.Color, v.InteriorColour, v.EngineSize, v.EngineMake,
		v.EngineNumber, v.EnginePower, v.PowerKW, v.PowerHP, v.Cylinders,
		v.GearType, v.GearCount, v.FuelType, v.Drive, v.DoorNum, v.Seats,
		v.WheelSize, v.Wheels, v.AxleConfiguration,
		v.GCM, v.GVM, v.Tare, v.TowBallWeight, v.SleepingCapacity,
		v.StandardFeatures, v.OptionalFeatures, v.AdvDescription, v.ShortDescription,
		v.YardCode, v.Series, v.NVIC, v.RedbookCode, v.SerialNumber,
		v.StockType, v.StockStatus, v.RegoState, v.VideoLink, v.Warranty,
		v.IsDemo, v.IsSpecial, v.IsPrestiged, v.IsUsed, v.IsDAP, v.IsMiles,
		v.Featured, v.Toilet, v.Shower, v.AirConditioning, v.Fridge, v.Stereo, v.GPS,
		v.RegoExpiry, v.BuildDate, v.ComplianceDate, v.Images,
	}
}

// feedArgs returns the bind arguments for the feed update, skipping the
// featured flag to match feedUpdateSQL.
func feedArgs(v Vehicle) []any {
	args := vehicleArgs(v)
	filtered := make([]any, 0, len(args)-1)
	for i, col := range vehicleColumns {
		if col == colFeatured {
			continue
		}
		filtered = append(filtered, args[i])
	}
	return filtered
}

func scanVehicle(row pgx.Row) (Vehicle, error) {
	var v Vehicle
	err := row.Scan(
		&v.ID,
		&v.StockNumber, &v.Make, &v.Model, &v.Badge, &v.RegoNum, &v.VIN,
		&v.Price, &v.SpecialPrice, &v.Year, &v.Odometer,
		&v.Body, &v.Color, &v.InteriorColour, &v.EngineSize, &v.EngineMake,
		&v.EngineNumber, &v.EnginePower, &v.PowerKW, &v.PowerHP, &v.Cylinders,
		&v.GearType, &v.GearCount, &v.FuelType, &v.Drive, &v.DoorNum, &v.Seats,
		&v.WheelSize, &v.Wheels, &v.AxleConfiguration,
		&v.GCM, &v.GVM, &v.Tare, &v.TowBallWeight, &v.SleepingCapacity,
		&v.StandardFeatures, &v.OptionalFeatures, &v.AdvDescription, &v.ShortDescription,
		&v.YardCode, &v.Series, &v.NVIC, &v.RedbookCode, &v.SerialNumber,
		&v.StockType, &v.StockStatus, &v.RegoState, &v.VideoLink, &v.Warranty,
		&v.IsDemo, &v.IsSpecial, &v.IsPrestiged, &v.IsUsed, &v.IsDAP, &v.IsMiles,
		&v.Featured, &v.Toilet, &v.Shower, &v.AirConditioning, &v.Fridge, &v.Stereo, &v.GPS,
		&v.RegoExpiry, &v.BuildDate, &v.ComplianceDate, &v.Images,
		&v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// Repo implements the vehicle repository against Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vehicle repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new vehicle listing.
func (r *Repo) Create(ctx context.Context, v Vehicle) (Vehicle, error) {
	v.ID = uuid.New()
	args := append([]any{v.ID}, vehicleArgs(v)...)
	if _, err := r.pool.Exec(ctx, insertSQL, args...); err != nil {
		return Vehicle{}, fmt.Errorf("create vehicle: %w", err)
	}
	return r.GetByID(ctx, v.ID)
}

// Update replaces every mapped column of an existing listing.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, v Vehicle) (Vehicle, error) {
	args := append([]any{id}, vehicleArgs(v)...)
	result, err := r.pool.Exec(ctx, updateSQL, args...)
	if err != nil {
		return Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	if result.RowsAffected() == 0 {
		return Vehicle{}, apperr.NotFound(vehicleNotFoundMessage)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a listing.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM vehicles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(vehicleNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a listing by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Vehicle, error) {
	row := r.pool.QueryRow(ctx, selectSQL+" WHERE id = $1", id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, apperr.NotFound(vehicleNotFoundMessage)
		}
		return Vehicle{}, fmt.Errorf("get vehicle by id: %w", err)
	}
	return v, nil
}

// GetByStockNumber retrieves a listing by exact, case-sensitive stock number.
func (r *Repo) GetByStockNumber(ctx context.Context, stockNumber string) (Vehicle, error) {
	row := r.pool.QueryRow(ctx, selectSQL+" WHERE stock_number = $1", stockNumber)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, apperr.NotFound(vehicleNotFoundMessage)
		}
		return Vehicle{}, fmt.Errorf("get vehicle by stock number: %w", err)
	}
	return v, nil
}

// Upsert persists a mapped vehicle, replacing any prior record sharing the
// same stock number. Matching is exact-match on stock_number; a record
// without a stock number is always inserted as new. The featured flag is
// not part of the feed and survives the replace.
func (r *Repo) Upsert(ctx context.Context, v Vehicle) (UpsertResult, error) {
	if v.StockNumber == nil {
		created, err := r.Create(ctx, v)
		if err != nil {
			return UpsertResult{}, err
		}
		return UpsertResult{ID: created.ID, Inserted: true}, nil
	}

	var existingID uuid.UUID
	err := r.pool.QueryRow(ctx,
		"SELECT id FROM vehicles WHERE stock_number = $1", *v.StockNumber,
	).Scan(&existingID)
	if errors.Is(err, pgx.ErrNoRows) {
		created, createErr := r.Create(ctx, v)
		if createErr != nil {
			return UpsertResult{}, createErr
		}
		return UpsertResult{ID: created.ID, Inserted: true}, nil
	}
	if err != nil {
		return UpsertResult{}, fmt.Errorf("find vehicle by stock number: %w", err)
	}

	args := append([]any{existingID}, feedArgs(v)...)
	if _, err := r.pool.Exec(ctx, feedUpdateSQL, args...); err != nil {
		return UpsertResult{}, fmt.Errorf("update vehicle from feed: %w", err)
	}
	return UpsertResult{ID: existingID, Inserted: false}, nil
}

// List returns listings matching the filters plus the total match count.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Vehicle, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if params.Make != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("make = $%d", argIdx))
		args = append(args, params.Make)
		argIdx++
	}
	if params.PriceMin != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price >= $%d", argIdx))
		args = append(args, *params.PriceMin)
		argIdx++
	}
	if params.PriceMax != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argIdx))
		args = append(args, *params.PriceMax)
		argIdx++
	}
	if params.YearMin != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("year >= $%d", argIdx))
		args = append(args, *params.YearMin)
		argIdx++
	}
	if params.YearMax != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("year <= $%d", argIdx))
		args = append(args, *params.YearMax)
		argIdx++
	}
	if params.KmMin != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("odometer >= $%d", argIdx))
		args = append(args, *params.KmMin)
		argIdx++
	}
	if params.KmMax != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("odometer <= $%d", argIdx))
		args = append(args, *params.KmMax)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vehicles WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}

	sortColumn := "created_at"
	switch params.SortBy {
	case "price":
		sortColumn = "price"
	case "year":
		sortColumn = "year"
	case "odometer":
		sortColumn = "odometer"
	}

	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	offset := (params.Page - 1) * params.PageSize
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s %s NULLS LAST LIMIT $%d OFFSET $%d",
		selectSQL, whereClause, sortColumn, sortOrder, argIdx, argIdx+1,
	)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return vehicles, total, nil
}

// ListFeatured returns the newest featured listings for the home page.
func (r *Repo) ListFeatured(ctx context.Context, limit int) ([]Vehicle, error) {
	query := selectSQL + " WHERE featured = TRUE ORDER BY created_at DESC LIMIT $1"
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]Vehicle, 0, limit)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return vehicles, nil
}
