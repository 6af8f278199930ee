// Package importer implements the CSV inventory import pipeline: mapping
// raw feed rows to vehicle records and driving the upsert over a file.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"autohaus_backend/internal/vehicles/repository"
)

// Row is one raw feed record keyed by header column name.
type Row map[string]string

// dateLayouts are tried in order when parsing free-form feed dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// MapRow converts one feed row into a vehicle record. String and numeric
// columns degrade to absent on bad input; a corrupt date or images column
// is a data-quality defect and fails the whole row.
func MapRow(row Row) (repository.Vehicle, error) {
	regoExpiry, err := optDate(row, "RegoExpiry")
	if err != nil {
		return repository.Vehicle{}, err
	}
	buildDate, err := optDate(row, "BuildDate")
	if err != nil {
		return repository.Vehicle{}, err
	}
	complianceDate, err := optDate(row, "ComplianceDate")
	if err != nil {
		return repository.Vehicle{}, err
	}
	images, err := imageList(row)
	if err != nil {
		return repository.Vehicle{}, err
	}

	return repository.Vehicle{
		StockNumber: optString(row, "StockNumber"),
		Make:        optString(row, "Make"),
		Model:       optString(row, "Model"),
		Badge:       optString(row, "Badge"),
		RegoNum:     optString(row, "RegoNum"),
		VIN:         optString(row, "VIN"),

		Price:        optFloat(row, "Price"),
		SpecialPrice: optFloat(row, "SpecialPrice"),
		Year:         optInt(row, "Year"),
		Odometer:     optFloat(row, "Odometer"),

		Body:              optString(row, "Body"),
		Color:             optString(row, "Color"),
		InteriorColour:    optString(row, "InteriorColour"),
		EngineSize:        optString(row, "EngineSize"),
		EngineMake:        optString(row, "EngineMake"),
		EngineNumber:      optString(row, "EngineNumber"),
		EnginePower:       optFloat(row, "EnginePower"),
		PowerKW:           optFloat(row, "PowerkW"),
		PowerHP:           optFloat(row, "Powerhp"),
		Cylinders:         optInt(row, "Cylinders"),
		GearType:          optString(row, "GearType"),
		GearCount:         optInt(row, "GearCount"),
		FuelType:          optString(row, "FuelType"),
		Drive:             optString(row, "Drive"),
		DoorNum:           optInt(row, "DoorNum"),
		Seats:             optInt(row, "Seats"),
		WheelSize:         optString(row, "WheelSize"),
		Wheels:            optString(row, "Wheels"),
		AxleConfiguration: optString(row, "AxleConfiguration"),

		GCM:              optFloat(row, "GCM"),
		GVM:              optFloat(row, "GVM"),
		Tare:             optFloat(row, "Tare"),
		TowBallWeight:    optFloat(row, "TowBallWeight"),
		SleepingCapacity: optInt(row, "SleepingCapacity"),

		StandardFeatures: optString(row, "StandardFeatures"),
		OptionalFeatures: optString(row, "OptionalFeatures"),
		AdvDescription:   optString(row, "AdvDescription"),
		ShortDescription: optString(row, "ShortDescription"),

		YardCode:     optString(row, "YardCode"),
		Series:       optString(row, "Series"),
		NVIC:         optString(row, "NVIC"),
		RedbookCode:  optString(row, "RedbookCode"),
		SerialNumber: optString(row, "SerialNumber"),
		StockType:    optString(row, "StockType"),
		StockStatus:  optString(row, "StockStatus"),
		RegoState:    optString(row, "RegoState"),
		VideoLink:    optString(row, "VideoLink"),
		Warranty:     optString(row, "Warranty"),

		IsDemo:          flag(row, "IsDemo"),
		IsSpecial:       flag(row, "IsSpecial"),
		IsPrestiged:     flag(row, "IsPrestiged"),
		IsUsed:          flag(row, "IsUsed"),
		IsDAP:           flag(row, "IsDAP"),
		IsMiles:         flag(row, "IsMiles"),
		Toilet:          flag(row, "Toilet"),
		Shower:          flag(row, "Shower"),
		AirConditioning: flag(row, "AirConditioning"),
		Fridge:          flag(row, "Fridge"),
		Stereo:          flag(row, "Stereo"),
		GPS:             flag(row, "GPS"),

		RegoExpiry:     regoExpiry,
		BuildDate:      buildDate,
		ComplianceDate: complianceDate,

		Images: images,
	}, nil
}

// optString passes a raw value through; empty or absent yields nil, never "".
func optString(row Row, column string) *string {
	value, ok := row[column]
	if !ok || value == "" {
		return nil
	}
	return &value
}

// optFloat accepts the value only if it parses as a number.
func optFloat(row Row, column string) *float64 {
	value, ok := row[column]
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// optInt accepts the value only if it parses as an integer.
func optInt(row Row, column string) *int {
	value, ok := row[column]
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &parsed
}

// flag resolves a boolean column. Truthy tokens are 1, true, yes, and y
// (case-insensitive); anything else, including an absent column, is false.
func flag(row Row, column string) bool {
	switch strings.ToLower(strings.TrimSpace(row[column])) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// optDate parses a non-empty date value against the permissive layout list.
func optDate(row Row, column string) (*time.Time, error) {
	value, ok := row[column]
	if !ok || strings.TrimSpace(value) == "" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("column %s: unparseable date %q", column, trimmed)
}

// imageList decodes the Images column, a JSON array of URL strings.
func imageList(row Row) ([]string, error) {
	value, ok := row["Images"]
	if !ok || value == "" {
		return nil, nil
	}

	var images []string
	if err := json.Unmarshal([]byte(value), &images); err != nil {
		return nil, fmt.Errorf("column Images: invalid JSON array: %w", err)
	}
	return images, nil
}
