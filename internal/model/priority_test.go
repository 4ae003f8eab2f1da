package model

import "testing"

func TestPriorityString(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityCritical, "CRITICAL"},
		{PriorityHigh, "HIGH"},
		{PriorityMedium, "MEDIUM"},
		{PriorityLow, "LOW"},
		{PriorityIdle, "IDLE"},
		{Priority(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.priority.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriorityOrdering(t *testing.T) {
	// Arbitration compares priorities numerically: lower value wins.
	if PriorityCritical >= PriorityHigh {
		t.Error("CRITICAL should outrank HIGH")
	}
	if PriorityHigh >= PriorityMedium {
		t.Error("HIGH should outrank MEDIUM")
	}
	if PriorityMedium >= PriorityLow {
		t.Error("MEDIUM should outrank LOW")
	}
	if PriorityLow >= PriorityIdle {
		t.Error("LOW should outrank IDLE")
	}
}
