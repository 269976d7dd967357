package request

import (
	"errors"
	"testing"
)

func TestAssignJobRequest_Validate(t *testing.T) {
	t.Run("empty helper list", func(t *testing.T) {
		r := AssignJobRequest{MainDriverID: "drv-1"}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("helper list at the cap", func(t *testing.T) {
		r := AssignJobRequest{MainDriverID: "drv-1", HelperIDs: make([]string, MaxHelperIDs)}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("helper list over the cap", func(t *testing.T) {
		r := AssignJobRequest{MainDriverID: "drv-1", HelperIDs: make([]string, MaxHelperIDs+1)}
		if err := r.Validate(); !errors.Is(err, ErrTooManyHelpers) {
			t.Fatalf("expected ErrTooManyHelpers, got %v", err)
		}
	})
}
