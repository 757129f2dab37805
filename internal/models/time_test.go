package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"zone-less with micros", `"2025-03-01T10:30:00.123456"`, time.Date(2025, 3, 1, 10, 30, 0, 123456000, time.UTC)},
		{"zone-less seconds", `"2025-03-01T10:30:00"`, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2025-03-01T10:30:00Z"`, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2025-03-01T10:30:00+03:00"`, time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if !ts.Equal(tt.want) {
				t.Errorf("got %v, want %v", ts.Time, tt.want)
			}
		})
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("garbage timestamp did not error")
	}
}

func TestTimestampMarshal(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2025-03-01T10:30:00Z"` {
		t.Errorf("got %s", out)
	}

	out, err = json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("zero marshals to %s, want null", out)
	}
}
