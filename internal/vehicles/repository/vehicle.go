package repository

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is one dealership listing. Every imported column is nullable in
// the feed, so optionality is encoded with pointer fields; boolean flags
// default to false when the source value is absent or unrecognized.
type Vehicle struct {
	ID uuid.UUID

	StockNumber *string
	Make        *string
	Model       *string
	Badge       *string
	RegoNum     *string
	VIN         *string

	Price        *float64
	SpecialPrice *float64
	Year         *int
	Odometer     *float64

	Body              *string
	Color             *string
	InteriorColour    *string
	EngineSize        *string
	EngineMake        *string
	EngineNumber      *string
	EnginePower       *float64
	PowerKW           *float64
	PowerHP           *float64
	Cylinders         *int
	GearType          *string
	GearCount         *int
	FuelType          *string
	Drive             *string
	DoorNum           *int
	Seats             *int
	WheelSize         *string
	Wheels            *string
	AxleConfiguration *string

	GCM              *float64
	GVM              *float64
	Tare             *float64
	TowBallWeight    *float64
	SleepingCapacity *int

	StandardFeatures *string
	OptionalFeatures *string
	AdvDescription   *string
	ShortDescription *string

	YardCode     *string
	Series       *string
	NVIC         *string
	RedbookCode  *string
	SerialNumber *string
	StockType    *string
	StockStatus  *string
	RegoState    *string
	VideoLink    *string
	Warranty     *string

	IsDemo          bool
	IsSpecial       bool
	IsPrestiged     bool
	IsUsed          bool
	IsDAP           bool
	IsMiles         bool
	Featured        bool
	Toilet          bool
	Shower          bool
	AirConditioning bool
	Fridge          bool
	Stereo          bool
	GPS             bool

	RegoExpiry     *time.Time
	BuildDate      *time.Time
	ComplianceDate *time.Time

	Images []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpsertResult reports the identity of the persisted row and whether the
// operation inserted a new listing or replaced an existing one.
type UpsertResult struct {
	ID       uuid.UUID
	Inserted bool
}

// ListParams filters and paginates vehicle listings.
type ListParams struct {
	Make      string
	PriceMin  *float64
	PriceMax  *float64
	YearMin   *int
	YearMax   *int
	KmMin     *float64
	KmMax     *float64
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
