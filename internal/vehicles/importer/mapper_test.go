package importer

import (
	"strings"
	"testing"
	"time"
)

func TestMapRow_NumericGuard(t *testing.T) {
	vehicle, err := MapRow(Row{
		"StockNumber": "A100",
		"Price":       "42000",
		"Odometer":    "not a number",
		"Year":        "twenty",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vehicle.Price == nil || *vehicle.Price != 42000 {
		t.Fatalf("expected price 42000, got %v", vehicle.Price)
	}
	if vehicle.Odometer != nil {
		t.Fatalf("expected non-numeric odometer to be absent, got %v", *vehicle.Odometer)
	}
	if vehicle.Year != nil {
		t.Fatalf("expected non-numeric year to be absent, got %v", *vehicle.Year)
	}
}

func TestMapRow_EmptyStringsBecomeAbsent(t *testing.T) {
	vehicle, err := MapRow(Row{
		"StockNumber": "A100",
		"Badge":       "",
		"Price":       "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vehicle.Badge != nil {
		t.Fatalf("expected empty badge to be absent, got %q", *vehicle.Badge)
	}
	if vehicle.Price != nil {
		t.Fatalf("expected empty price to be absent, got %v", *vehicle.Price)
	}
}

func TestMapRow_FlagTokens(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Y", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tc := range cases {
		vehicle, err := MapRow(Row{"IsUsed": tc.value})
		if err != nil {
			t.Fatalf("value %q: unexpected error: %v", tc.value, err)
		}
		if vehicle.IsUsed != tc.want {
			t.Fatalf("value %q: expected IsUsed=%v, got %v", tc.value, tc.want, vehicle.IsUsed)
		}
	}
}

func TestMapRow_AbsentFlagDefaultsFalse(t *testing.T) {
	vehicle, err := MapRow(Row{"StockNumber": "A100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.Featured || vehicle.IsDemo || vehicle.GPS {
		t.Fatal("expected absent flags to default to false")
	}
}

func TestMapRow_DateLayouts(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2025-06-30", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"30/06/2025", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"30 Jun 2025", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		vehicle, err := MapRow(Row{"RegoExpiry": tc.value})
		if err != nil {
			t.Fatalf("value %q: unexpected error: %v", tc.value, err)
		}
		if vehicle.RegoExpiry == nil || !vehicle.RegoExpiry.Equal(tc.want) {
			t.Fatalf("value %q: expected %v, got %v", tc.value, tc.want, vehicle.RegoExpiry)
		}
	}
}

func TestMapRow_UnparseableDateFailsRow(t *testing.T) {
	_, err := MapRow(Row{"BuildDate": "sometime next year"})
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
	if !strings.Contains(err.Error(), "BuildDate") {
		t.Fatalf("expected error to name the column, got %v", err)
	}
}

func TestMapRow_Images(t *testing.T) {
	vehicle, err := MapRow(Row{
		"Images": `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicle.Images) != 2 || vehicle.Images[0] != "https://cdn.example.com/a.jpg" {
		t.Fatalf("unexpected images: %v", vehicle.Images)
	}
}

func TestMapRow_InvalidImagesJSONFailsRow(t *testing.T) {
	_, err := MapRow(Row{"Images": "not json"})
	if err == nil {
		t.Fatal("expected error for invalid images JSON")
	}
}
