package caldate

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"valid date", "2026-08-24", Date{2026, time.August, 24}, false},
		{"first of year", "2024-01-01", Date{2024, time.January, 1}, false},
		{"leap day", "2024-02-29", Date{2024, time.February, 29}, false},
		{"leap day in non-leap year", "2023-02-29", Date{}, true},
		{"month out of range", "2024-13-01", Date{}, true},
		{"missing padding", "2024-1-1", Date{}, true},
		{"garbage", "yesterday", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	d := Date{2026, time.March, 5}
	if got := d.String(); got != "2026-03-05" {
		t.Errorf("String() = %q, want %q", got, "2026-03-05")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2026-08-24", "2000-02-29", "1999-12-31"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if d.String() != s {
			t.Errorf("round trip %q -> %q", s, d.String())
		}
	}
}

func TestPrev(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"mid month", "2026-08-24", "2026-08-23"},
		{"month boundary", "2026-08-01", "2026-07-31"},
		{"year boundary", "2026-01-01", "2025-12-31"},
		{"march into leap february", "2024-03-01", "2024-02-29"},
		{"march into non-leap february", "2023-03-01", "2023-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.from).Prev()
			if got.String() != tt.want {
				t.Errorf("Prev(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		from string
		n    int
		want string
	}{
		{"zero", "2026-08-24", 0, "2026-08-24"},
		{"back 29 days crosses month", "2026-08-24", -29, "2026-07-26"},
		{"back across year", "2026-01-15", -30, "2025-12-16"},
		{"forward across leap day", "2024-02-28", 2, "2024-03-01"},
		{"back a full year of days", "2025-06-15", -365, "2024-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.from).Add(tt.n)
			if got.String() != tt.want {
				t.Errorf("Add(%s, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

// Walking backward one day at a time must visit every calendar day exactly once.
func TestPrevIsDense(t *testing.T) {
	d := MustParse("2024-03-05")
	seen := map[string]bool{}
	for i := 0; i < 40; i++ {
		if seen[d.String()] {
			t.Fatalf("date %s visited twice", d)
		}
		seen[d.String()] = true
		d = d.Prev()
	}
	if d.String() != "2024-01-25" {
		t.Errorf("after 40 steps back from 2024-03-05 got %s, want 2024-01-25", d)
	}
}
