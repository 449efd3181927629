package entities

import (
	"strings"
	"testing"
)

func TestEstimateBreakdown_ReconcileWarnings(t *testing.T) {
	t.Run("consistent breakdown", func(t *testing.T) {
		b := EstimateBreakdown{
			Parts:      []PartItem{{Name: "brake pads", UnitPrice: 40, Quantity: 2, Total: 80}},
			PartsTotal: 80,
			Labor:      LaborCharge{Hours: 1.5, HourlyRate: 100, Total: 150},
			ShopFees:   10,
			Tax:        24,
			Total:      264,
		}
		if warnings := b.ReconcileWarnings(); len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
	})

	t.Run("sub-cent rounding tolerated", func(t *testing.T) {
		b := EstimateBreakdown{
			PartsTotal: 80.004,
			Labor:      LaborCharge{Total: 150},
			Tax:        24,
			Total:      254,
		}
		if warnings := b.ReconcileWarnings(); len(warnings) != 0 {
			t.Fatalf("expected rounding tolerance, got %v", warnings)
		}
	})

	t.Run("parts mismatch", func(t *testing.T) {
		b := EstimateBreakdown{
			Parts:      []PartItem{{Name: "filter", Total: 30}, {Name: "oil", Total: 45}},
			PartsTotal: 100,
			Labor:      LaborCharge{Total: 50},
			Total:      150,
		}
		warnings := b.ReconcileWarnings()
		if len(warnings) != 1 || !strings.Contains(warnings[0], "parts") {
			t.Fatalf("expected one parts warning, got %v", warnings)
		}
	})

	t.Run("grand total mismatch", func(t *testing.T) {
		b := EstimateBreakdown{
			PartsTotal: 80,
			Labor:      LaborCharge{Total: 150},
			Tax:        24,
			Total:      300,
		}
		warnings := b.ReconcileWarnings()
		if len(warnings) != 1 || !strings.Contains(warnings[0], "total") {
			t.Fatalf("expected one total warning, got %v", warnings)
		}
	})
}

func TestCostEstimate_EffectiveBreakdown(t *testing.T) {
	original := EstimateBreakdown{Total: 100}
	modified := EstimateBreakdown{Total: 140}

	e := CostEstimate{Breakdown: original}
	if got := e.EffectiveBreakdown(); got.Total != 100 {
		t.Fatalf("expected producer breakdown, got %+v", got)
	}

	e.IsModified = true
	e.ModifiedBreakdown = &modified
	if got := e.EffectiveBreakdown(); got.Total != 140 {
		t.Fatalf("expected modified breakdown, got %+v", got)
	}
}

func TestCostEstimate_CanShareWithMechanic(t *testing.T) {
	cases := []struct {
		status  EstimateStatus
		allowed bool
	}{
		{EstimateStatusDraft, true},
		{EstimateStatusApproved, true},
		{EstimateStatusPendingMechanic, false},
		{EstimateStatusPendingCustomer, false},
		{EstimateStatusCustomerApproved, false},
		{EstimateStatusMechanicRejected, false},
	}
	for _, tc := range cases {
		e := CostEstimate{Status: tc.status}
		if got := e.CanShareWithMechanic(); got != tc.allowed {
			t.Fatalf("CanShareWithMechanic from %s = %v, want %v", tc.status, got, tc.allowed)
		}
	}
}

func TestEstimateStatus_IsTerminal(t *testing.T) {
	terminal := []EstimateStatus{
		EstimateStatusCustomerApproved,
		EstimateStatusRejected,
		EstimateStatusMechanicRejected,
		EstimateStatusCustomerRejected,
	}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s terminal", s)
		}
	}
	for _, s := range []EstimateStatus{EstimateStatusDraft, EstimateStatusPendingMechanic, EstimateStatusPendingCustomer, EstimateStatusMechanicApproved} {
		if s.IsTerminal() {
			t.Fatalf("expected %s non-terminal", s)
		}
	}
}
