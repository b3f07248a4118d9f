package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:45", 585, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
		{"09:00:00", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMinutesApart(t *testing.T) {
	if got := MinutesApart(540, 585); got != 45 {
		t.Errorf("MinutesApart(540, 585) = %d, want 45", got)
	}
	if got := MinutesApart(585, 540); got != 45 {
		t.Errorf("MinutesApart(585, 540) = %d, want 45", got)
	}
	// 23:30 vs 00:10 must not wrap around midnight
	if got := MinutesApart(1410, 10); got != 1400 {
		t.Errorf("MinutesApart(1410, 10) = %d, want 1400", got)
	}
}
