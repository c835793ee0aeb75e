package store

import (
	"testing"

	"github.com/ewei/lexikid/internal/catalog"
)

func TestParseRequirement(t *testing.T) {
	req, err := ParseRequirement(`{"kind": "learned_count", "threshold": 10}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Kind != "learned_count" || req.Threshold != 10 {
		t.Errorf("requirement = %+v", req)
	}
}

func TestParseRequirementRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `kind=learned_count`},
		{"missing kind", `{"threshold": 10}`},
		{"missing threshold", `{"kind": "learned_count"}`},
		{"empty kind", `{"kind": "", "threshold": 10}`},
		{"zero threshold", `{"kind": "learned_count", "threshold": 0}`},
		{"fractional threshold", `{"kind": "learned_count", "threshold": 1.5}`},
		{"extra field", `{"kind": "learned_count", "threshold": 1, "bonus": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRequirement(tt.raw); err == nil {
				t.Errorf("expected error for %s", tt.raw)
			}
		})
	}
}

func TestSeedRequirementsAllParse(t *testing.T) {
	for _, a := range catalog.SeedAchievements() {
		if _, err := ParseRequirement(a.Requirement); err != nil {
			t.Errorf("achievement %q: %v", a.ID, err)
		}
	}
}
