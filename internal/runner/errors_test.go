package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestNewFileReadError verifies FileReadError creation and Error() formatting.
func TestNewFileReadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewFileReadError("poem.txt", cause)

	if err.Path != "poem.txt" {
		t.Errorf("Path = %q, want %q", err.Path, "poem.txt")
	}
	if err.Err != cause {
		t.Error("Err not set to the underlying cause")
	}

	for _, want := range []string{"poem.txt", "permission denied"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, want it to contain %q", err.Error(), want)
		}
	}
}

// TestFileReadErrorUnwrap verifies the cause is reachable through errors.Is.
func TestFileReadErrorUnwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := NewFileReadError("poem.txt", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want true for underlying cause")
	}
}

// TestIsFileReadError verifies detection through wrapping.
func TestIsFileReadError(t *testing.T) {
	base := NewFileReadError("poem.txt", errors.New("no such file"))

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "direct FileReadError", err: base, want: true},
		{name: "wrapped FileReadError", err: fmt.Errorf("running search: %w", base), want: true},
		{name: "unrelated error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFileReadError(tt.err); got != tt.want {
				t.Errorf("IsFileReadError() = %v, want %v", got, tt.want)
			}
		})
	}
}
