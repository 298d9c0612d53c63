package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.PaceUnit != "min/km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "min/km")
	}
	if cfg.Calculator.DefaultEvent != "5k" {
		t.Errorf("Calculator.DefaultEvent = %q, want %q", cfg.Calculator.DefaultEvent, "5k")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:   "empty config is valid",
			config: Config{},
		},
		{
			name:   "defaults are valid",
			config: DefaultConfig(),
		},
		{
			name: "min/mi pace unit",
			config: Config{
				Display: DisplayConfig{PaceUnit: "min/mi"},
			},
		},
		{
			name: "marathon default event",
			config: Config{
				Calculator: CalculatorConfig{DefaultEvent: "marathon"},
			},
		},
		{
			name: "bad pace unit",
			config: Config{
				Display: DisplayConfig{PaceUnit: "min/furlong"},
			},
			expectError: true,
			errContains: "pace_unit",
		},
		{
			name: "bad default event",
			config: Config{
				Calculator: CalculatorConfig{DefaultEvent: "ultra"},
			},
			expectError: true,
			errContains: "default_event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
