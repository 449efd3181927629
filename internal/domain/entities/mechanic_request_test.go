package entities

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusQueued, RequestStatusAssigned, true},
		{RequestStatusQueued, RequestStatusResponded, false},
		{RequestStatusQueued, RequestStatusClosed, true},
		{RequestStatusAssigned, RequestStatusResponded, true},
		{RequestStatusAssigned, RequestStatusQueued, false},
		{RequestStatusAssigned, RequestStatusClosed, true},
		{RequestStatusResponded, RequestStatusClosed, true},
		{RequestStatusResponded, RequestStatusAssigned, false},
		{RequestStatusClosed, RequestStatusQueued, false},
		{RequestStatusClosed, RequestStatusAssigned, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestUrgency_Valid(t *testing.T) {
	for _, u := range []Urgency{UrgencyLow, UrgencyNormal, UrgencyHigh} {
		if !u.Valid() {
			t.Fatalf("expected %s valid", u)
		}
	}
	if Urgency("critical").Valid() {
		t.Fatalf("unexpected urgency accepted")
	}
}
