package format

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("bare_date_pins_utc", func(t *testing.T) {
		d, err := ParseDate("2025-12-05")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Location() != time.UTC {
			t.Errorf("expected UTC location, got %v", d.Location())
		}
		if d.Display() != "05/12/2025" {
			t.Errorf("expected 05/12/2025, got %s", d.Display())
		}
	})

	t.Run("display_independent_of_host_timezone", func(t *testing.T) {
		// A bare date must not shift backward a day when the host runs
		// in a negative-UTC-offset zone.
		saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
		d, err := ParseDate("2025-12-05")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inLocal := Date{d.In(saoPaulo)}
		if inLocal.Display() != "05/12/2025" {
			t.Errorf("expected 05/12/2025 regardless of zone, got %s", inLocal.Display())
		}
	})

	t.Run("rfc3339_normalized_to_utc", func(t *testing.T) {
		d, err := ParseDate("2025-01-01T22:30:00-03:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 22:30 on Jan 1 at -03:00 is 01:30 on Jan 2 UTC.
		if d.Month() != 1 || d.Year() != 2025 {
			t.Errorf("expected January 2025, got %d/%d", d.Month(), d.Year())
		}
		if d.Display() != "02/01/2025" {
			t.Errorf("expected 02/01/2025, got %s", d.Display())
		}
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		if _, err := ParseDate("05/12/2025"); err == nil {
			t.Error("expected error for non-ISO date")
		}
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("unmarshal_bare_date", func(t *testing.T) {
		var d Date
		if err := d.UnmarshalJSON([]byte(`"2025-11-30"`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Display() != "30/11/2025" {
			t.Errorf("expected 30/11/2025, got %s", d.Display())
		}
	})

	t.Run("unmarshal_null", func(t *testing.T) {
		var d Date
		if err := d.UnmarshalJSON([]byte("null")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Error("expected zero date for null")
		}
	})
}

func TestMonthName(t *testing.T) {
	cases := map[int]string{
		1:  "Janeiro",
		2:  "Fevereiro",
		3:  "Março",
		4:  "Abril",
		5:  "Maio",
		6:  "Junho",
		7:  "Julho",
		8:  "Agosto",
		9:  "Setembro",
		10: "Outubro",
		11: "Novembro",
		12: "Dezembro",
	}
	for month, want := range cases {
		if got := MonthName(month); got != want {
			t.Errorf("MonthName(%d) = %q, want %q", month, got, want)
		}
	}
	if got := MonthName(0); got != "" {
		t.Errorf("MonthName(0) = %q, want empty", got)
	}
	if got := MonthName(13); got != "" {
		t.Errorf("MonthName(13) = %q, want empty", got)
	}
}

func TestTimeRange(t *testing.T) {
	start := time.Date(2025, 12, 5, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 5, 18, 30, 0, 0, time.UTC)
	if got := TimeRange(start, end); got != "14:00 - 18:30" {
		t.Errorf("expected 14:00 - 18:30, got %s", got)
	}
}
