package repository

import (
	"fmt"
	"strings"
	"testing"
)

func TestFeedUpdateLeavesFeaturedFlagAlone(t *testing.T) {
	if strings.Contains(feedUpdateSQL, colFeatured) {
		t.Fatalf("feed update must not touch the featured flag: %s", feedUpdateSQL)
	}
	if !strings.Contains(updateSQL, colFeatured+" = ") {
		t.Fatal("admin update should replace the featured flag")
	}
}

func TestFeedUpdateArgsMatchStatement(t *testing.T) {
	got := len(feedArgs(Vehicle{}))
	want := len(vehicleColumns) - 1
	if got != want {
		t.Fatalf("expected %d feed args, got %d", want, got)
	}

	// $1 is the row id; the last placeholder must line up with the final
	// feed column.
	last := fmt.Sprintf("$%d", want+1)
	if !strings.Contains(feedUpdateSQL, last) {
		t.Fatalf("expected final placeholder %s in feed update", last)
	}
	if strings.Contains(feedUpdateSQL, fmt.Sprintf("$%d", want+2)) {
		t.Fatal("feed update has more placeholders than args")
	}
}

func TestGeneratedStatementsShareColumnOrder(t *testing.T) {
	if len(vehicleArgs(Vehicle{})) != len(vehicleColumns) {
		t.Fatalf("vehicleArgs must produce one argument per column, got %d for %d columns",
			len(vehicleArgs(Vehicle{})), len(vehicleColumns))
	}
	for _, col := range vehicleColumns {
		if !strings.Contains(insertSQL, col) {
			t.Fatalf("insert statement missing column %s", col)
		}
		if !strings.Contains(selectSQL, col) {
			t.Fatalf("select statement missing column %s", col)
		}
	}
}
