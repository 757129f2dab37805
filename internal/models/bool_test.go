package models

import (
	"encoding/json"
	"testing"
)

func TestIntBoolUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want IntBool
	}{
		{"1", true},
		{"0", false},
		{"true", true},
		{"false", false},
		{"null", false},
	}

	for _, tt := range tests {
		var b IntBool
		if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if b != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, b, tt.want)
		}
	}

	var b IntBool
	if err := json.Unmarshal([]byte(`"yes"`), &b); err == nil {
		t.Error("garbage boolean did not error")
	}
}

func TestIntBoolMarshal(t *testing.T) {
	out, err := json.Marshal(IntBool(true))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "true" {
		t.Errorf("got %s", out)
	}
}

func TestIntBoolScan(t *testing.T) {
	var b IntBool
	if err := b.Scan(int64(1)); err != nil || !bool(b) {
		t.Errorf("Scan(1) = %v, %v", b, err)
	}
	if err := b.Scan(int64(0)); err != nil || bool(b) {
		t.Errorf("Scan(0) = %v, %v", b, err)
	}
	if err := b.Scan(true); err != nil || !bool(b) {
		t.Errorf("Scan(true) = %v, %v", b, err)
	}
}
