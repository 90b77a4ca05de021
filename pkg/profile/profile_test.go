package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

func TestCountString(t *testing.T) {
	if got := Known(42).String(); got != "42" {
		t.Errorf("Known(42).String() = %q, want %q", got, "42")
	}
	if got := Unknown.String(); got != "N/A" {
		t.Errorf("Unknown.String() = %q, want %q", got, "N/A")
	}
}

func TestCountJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Count
	}{
		{"number", `7`, Known(7)},
		{"zero", `0`, Known(0)},
		{"null", `null`, Unknown},
		{"string", `"N/A"`, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			if err := json.Unmarshal([]byte(tt.in), &c); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
			}
			if c != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, c, tt.want)
			}
		})
	}

	data, err := json.Marshal(Data{Username: "ada", TotalCommits: Unknown})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back Data
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back.TotalCommits.Known {
		t.Error("unknown commit count should survive a JSON round trip")
	}
}

func TestRecentActivity(t *testing.T) {
	d := Data{Activity: []Day{{Count: 1}, {Count: 2}, {Count: 3}, {Count: 4}}}

	if got := d.RecentActivity(2); len(got) != 2 || got[0].Count != 3 || got[1].Count != 4 {
		t.Errorf("RecentActivity(2) = %v, want [{3} {4}]", got)
	}
	if got := d.RecentActivity(10); len(got) != 4 {
		t.Errorf("RecentActivity(10) len = %d, want 4", len(got))
	}
	if got := d.RecentActivity(0); got != nil {
		t.Errorf("RecentActivity(0) = %v, want nil", got)
	}
}

func TestTotalWeight(t *testing.T) {
	d := Data{TopLanguages: []Language{{"Go", 3}, {"Rust", 1}}}
	if got := d.TotalWeight(); got != 4 {
		t.Errorf("TotalWeight() = %d, want 4", got)
	}
}

func TestSample(t *testing.T) {
	d := Sample("ada")
	if d.Username != "ada" {
		t.Errorf("Username = %q, want %q", d.Username, "ada")
	}
	if len(d.Activity) != 196 {
		t.Errorf("len(Activity) = %d, want 196", len(d.Activity))
	}
	active := 0
	for _, day := range d.Activity {
		if day.Count > 0 {
			active++
		}
	}
	if active == 0 {
		t.Error("sample activity should contain active days")
	}
}

func TestSampleSource(t *testing.T) {
	var src Source = SampleSource{}
	d, err := src.Fetch(context.Background(), "ada")
	if err != nil {
		t.Fatal(err)
	}
	if d.Username != "ada" || d.TotalCommits != Known(450) {
		t.Errorf("Fetch = %+v", d)
	}

	if _, err := src.Fetch(context.Background(), "../ada"); !errors.Is(err, errors.ErrCodeInvalidUsername) {
		t.Errorf("err = %v, want INVALID_USERNAME", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Fetch(ctx, "ada"); err == nil {
		t.Error("canceled context not reported")
	}
}
