package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("workspace not found"), KindNotFound},
		{"validation", Validation("name is required"), KindValidation},
		{"wrapped", fmt.Errorf("outer: %w", Conflict("duplicate")), KindConflict},
		{"upstream", Upstream("failed to search arxiv", errors.New("status 503")), KindUpstream},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("failed to save paper", cause)

	if err.Error() != "failed to save paper: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause is not reachable via errors.Is")
	}

	bare := Unauthorized("invalid credentials")
	if bare.Error() != "invalid credentials" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("handler: %w", Embedding("embedding backend unavailable", errors.New("timeout")))

	if !IsKind(err, KindEmbedding) {
		t.Error("IsKind should match through wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind matched the wrong kind")
	}
}
