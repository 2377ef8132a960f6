package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestConfigValidator_RangeFloat(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0, false},
		{0.5, false},
		{1, false},
		{-0.01, true},
		{1.01, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := NewConfigValidator("SolverConfig").RangeFloat("PatienceRatio", tt.value, 0, 1).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("RangeFloat(%v): expected error=%v, got %v", tt.value, tt.wantErr, err)
		}
		if err != nil && !strings.HasPrefix(err.Error(), "SolverConfig.PatienceRatio:") {
			t.Errorf("Expected field prefix, got %v", err)
		}
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	err := NewConfigValidator("Config").OneOf("Format", "yaml", "text", "json").Validate()
	if err == nil {
		t.Fatal("Expected error for value outside allowed set")
	}
	if !strings.Contains(err.Error(), `"yaml" is not one of text, json`) {
		t.Errorf("Unexpected message: %v", err)
	}

	if err := NewConfigValidator("Config").OneOf("Format", "json", "text", "json").Validate(); err != nil {
		t.Errorf("Expected no error for allowed value, got %v", err)
	}
}

func TestConfigValidator_CustomAndWhen(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0

	err := NewConfigValidator("Config").
		When(false, func(v *ConfigValidator) { calls++ }).
		When(true, func(v *ConfigValidator) {
			v.Custom("MetricsOut", func() error { return sentinel })
		}).
		Validate()

	if calls != 0 {
		t.Errorf("Expected skipped checks not to run, ran %d", calls)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected custom error to wrap sentinel, got %v", err)
	}
	if err == nil || !strings.HasPrefix(err.Error(), "Config.MetricsOut") {
		t.Errorf("Expected field prefix, got %v", err)
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	cv := NewConfigValidator("SolverConfig")
	if err := cv.Validate(); err != nil {
		t.Errorf("Expected nil for no errors, got %v", err)
	}

	sentinel := errors.New("boom")
	cv.OneOf("Modularity", "louvain", "pairwise", "newman").
		Custom("Extra", func() error { return sentinel })

	err := cv.Validate()
	if err == nil || !strings.Contains(err.Error(), "2 invalid fields") {
		t.Fatalf("Expected combined error, got %v", err)
	}
	if !strings.Contains(err.Error(), "SolverConfig.Modularity") || !errors.Is(err, sentinel) {
		t.Errorf("Expected every failure in combined error, got %v", err)
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "text"); got != "text" {
		t.Errorf("Expected default, got %q", got)
	}
	if got := DefaultOr("json", "text"); got != "json" {
		t.Errorf("Expected value, got %q", got)
	}
	if got := DefaultOr(0.0, 0.001); got != 0.001 {
		t.Errorf("Expected default, got %v", got)
	}
}
