package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SaveVehicleRequest is the admin payload for creating or fully replacing a
// listing. Feed-only catalogue columns are managed by the importer; this
// surface covers the fields staff maintain by hand.
type SaveVehicleRequest struct {
	StockNumber      *string  `json:"stockNumber,omitempty" validate:"omitempty,max=50"`
	Make             string   `json:"make" validate:"required,min=1,max=100"`
	Model            string   `json:"model" validate:"required,min=1,max=100"`
	Badge            *string  `json:"badge,omitempty" validate:"omitempty,max=100"`
	Series           *string  `json:"series,omitempty" validate:"omitempty,max=100"`
	Body             *string  `json:"body,omitempty" validate:"omitempty,max=100"`
	Color            *string  `json:"color,omitempty" validate:"omitempty,max=100"`
	InteriorColour   *string  `json:"interiorColour,omitempty" validate:"omitempty,max=100"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	SpecialPrice     *float64 `json:"specialPrice,omitempty" validate:"omitempty,gte=0"`
	Year             *int     `json:"year,omitempty" validate:"omitempty,gte=1000,lte=9999"`
	Odometer         *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	FuelType         *string  `json:"fuelType,omitempty" validate:"omitempty,max=50"`
	GearType         *string  `json:"gearType,omitempty" validate:"omitempty,max=50"`
	Drive            *string  `json:"drive,omitempty" validate:"omitempty,max=50"`
	EngineSize       *string  `json:"engineSize,omitempty" validate:"omitempty,max=50"`
	Cylinders        *int     `json:"cylinders,omitempty" validate:"omitempty,gte=0"`
	DoorNum          *int     `json:"doorNum,omitempty" validate:"omitempty,gte=0"`
	Seats            *int     `json:"seats,omitempty" validate:"omitempty,gte=0"`
	StandardFeatures *string  `json:"standardFeatures,omitempty"`
	OptionalFeatures *string  `json:"optionalFeatures,omitempty"`
	AdvDescription   *string  `json:"advDescription,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty" validate:"omitempty,max=500"`
	VideoLink        *string  `json:"videoLink,omitempty" validate:"omitempty,max=500"`
	Warranty         *string  `json:"warranty,omitempty" validate:"omitempty,max=500"`
	IsDemo           bool     `json:"isDemo"`
	IsSpecial        bool     `json:"isSpecial"`
	IsPrestiged      bool     `json:"isPrestiged"`
	IsUsed           bool     `json:"isUsed"`
	Featured         bool     `json:"featured"`
	Images           []string `json:"images,omitempty" validate:"omitempty,dive,url"`
}

// ListVehiclesRequest carries the browse filters.
type ListVehiclesRequest struct {
	Make      string   `form:"make" validate:"max=100"`
	PriceMin  *float64 `form:"priceMin" validate:"omitempty,gte=0"`
	PriceMax  *float64 `form:"priceMax" validate:"omitempty,gte=0"`
	YearMin   *int     `form:"yearMin" validate:"omitempty,gte=1000"`
	YearMax   *int     `form:"yearMax" validate:"omitempty,lte=9999"`
	KmMin     *float64 `form:"kmMin" validate:"omitempty,gte=0"`
	KmMax     *float64 `form:"kmMax" validate:"omitempty,gte=0"`
	Page      int      `form:"page" validate:"min=0"`
	PageSize  int      `form:"pageSize" validate:"min=0,max=100"`
	SortBy    string   `form:"sortBy" validate:"omitempty,oneof=createdAt price year odometer"`
	SortOrder string   `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs

type VehicleResponse struct {
	ID                uuid.UUID `json:"id"`
	StockNumber       *string   `json:"stockNumber,omitempty"`
	Make              *string   `json:"make,omitempty"`
	Model             *string   `json:"model,omitempty"`
	Badge             *string   `json:"badge,omitempty"`
	Series            *string   `json:"series,omitempty"`
	Body              *string   `json:"body,omitempty"`
	Color             *string   `json:"color,omitempty"`
	InteriorColour    *string   `json:"interiorColour,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	SpecialPrice      *float64  `json:"specialPrice,omitempty"`
	Year              *int      `json:"year,omitempty"`
	Odometer          *float64  `json:"odometer,omitempty"`
	IsMiles           bool      `json:"isMiles"`
	FuelType          *string   `json:"fuelType,omitempty"`
	GearType          *string   `json:"gearType,omitempty"`
	GearCount         *int      `json:"gearCount,omitempty"`
	Drive             *string   `json:"drive,omitempty"`
	EngineSize        *string   `json:"engineSize,omitempty"`
	EngineMake        *string   `json:"engineMake,omitempty"`
	EnginePower       *float64  `json:"enginePower,omitempty"`
	PowerKW           *float64  `json:"powerKw,omitempty"`
	PowerHP           *float64  `json:"powerHp,omitempty"`
	Cylinders         *int      `json:"cylinders,omitempty"`
	DoorNum           *int      `json:"doorNum,omitempty"`
	Seats             *int      `json:"seats,omitempty"`
	WheelSize         *string   `json:"wheelSize,omitempty"`
	Wheels            *string   `json:"wheels,omitempty"`
	AxleConfiguration *string   `json:"axleConfiguration,omitempty"`
	GCM               *float64  `json:"gcm,omitempty"`
	GVM               *float64  `json:"gvm,omitempty"`
	Tare              *float64  `json:"tare,omitempty"`
	TowBallWeight     *float64  `json:"towBallWeight,omitempty"`
	SleepingCapacity  *int      `json:"sleepingCapacity,omitempty"`
	StandardFeatures  *string   `json:"standardFeatures,omitempty"`
	OptionalFeatures  *string   `json:"optionalFeatures,omitempty"`
	AdvDescription    *string   `json:"advDescription,omitempty"`
	ShortDescription  *string   `json:"shortDescription,omitempty"`
	StockType         *string   `json:"stockType,omitempty"`
	StockStatus       *string   `json:"stockStatus,omitempty"`
	RegoState         *string   `json:"regoState,omitempty"`
	RegoExpiry        *string   `json:"regoExpiry,omitempty"`
	BuildDate         *string   `json:"buildDate,omitempty"`
	ComplianceDate    *string   `json:"complianceDate,omitempty"`
	VideoLink         *string   `json:"videoLink,omitempty"`
	Warranty          *string   `json:"warranty,omitempty"`
	IsDemo            bool      `json:"isDemo"`
	IsSpecial         bool      `json:"isSpecial"`
	IsPrestiged       bool      `json:"isPrestiged"`
	IsUsed            bool      `json:"isUsed"`
	IsDAP             bool      `json:"isDap"`
	Featured          bool      `json:"featured"`
	Toilet            bool      `json:"toilet"`
	Shower            bool      `json:"shower"`
	AirConditioning   bool      `json:"airConditioning"`
	Fridge            bool      `json:"fridge"`
	Stereo            bool      `json:"stereo"`
	GPS               bool      `json:"gps"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type VehicleListResponse struct {
	Items      []VehicleResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
