package request

import (
	"testing"

	"mecanica_workflow/internal/domain/entities"
)

func TestReviewEstimateRequest_ToCommand(t *testing.T) {
	t.Run("decision is trimmed and lowered", func(t *testing.T) {
		r := ReviewEstimateRequest{Decision: "  Modify "}
		cmd := r.ToCommand("est-1")
		if cmd.EstimateID != "est-1" {
			t.Fatalf("unexpected estimate id: %q", cmd.EstimateID)
		}
		if cmd.Decision != entities.ReviewDecisionModify {
			t.Fatalf("unexpected decision: %q", cmd.Decision)
		}
	})

	t.Run("modified breakdown carried over", func(t *testing.T) {
		r := ReviewEstimateRequest{
			Decision: "modify",
			ModifiedBreakdown: &BreakdownRequest{
				Parts:      []PartItemRequest{{Name: "brake pads", UnitPrice: 40, Quantity: 2, Total: 80}},
				PartsTotal: 80,
				Labor:      LaborChargeRequest{Hours: 2, HourlyRate: 100, Total: 200},
				Tax:        20,
				Total:      300,
			},
		}
		cmd := r.ToCommand("est-1")
		if cmd.ModifiedBreakdown == nil {
			t.Fatal("expected a breakdown on the command")
		}
		if cmd.ModifiedBreakdown.Total != 300 || len(cmd.ModifiedBreakdown.Parts) != 1 {
			t.Fatalf("unexpected breakdown: %+v", cmd.ModifiedBreakdown)
		}
		if cmd.ModifiedBreakdown.Parts[0].Name != "brake pads" {
			t.Fatalf("unexpected part: %+v", cmd.ModifiedBreakdown.Parts[0])
		}
	})

	t.Run("absent breakdown stays nil", func(t *testing.T) {
		cmd := ReviewEstimateRequest{Decision: "approve"}.ToCommand("est-1")
		if cmd.ModifiedBreakdown != nil {
			t.Fatalf("expected nil breakdown, got %+v", cmd.ModifiedBreakdown)
		}
	})
}

func TestRespondReviewRequest_ToCommand(t *testing.T) {
	cmd := RespondReviewRequest{Decision: "REJECT", CustomerNotes: "too expensive"}.ToCommand("est-2")
	if cmd.Decision != entities.ReviewDecisionReject {
		t.Fatalf("unexpected decision: %q", cmd.Decision)
	}
	if cmd.CustomerNotes != "too expensive" || cmd.EstimateID != "est-2" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}
