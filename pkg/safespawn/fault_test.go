package safespawn

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// explodingRenderer panics from its own String method, exercising the
// normalizer's guarantee that rendering never faults.
type explodingRenderer struct{}

func (explodingRenderer) String() string {
	panic("render failure")
}

// TestFaultMessageNormalization verifies the payload normalization order:
// string payloads verbatim, everything else through a non-failing render.
func TestFaultMessageNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "string literal returned verbatim",
			value: "boom",
			want:  "boom",
		},
		{
			name:  "runtime-built string returned verbatim",
			value: fmt.Sprintf("value %d", 42),
			want:  "value 42",
		},
		{
			name:  "error payload rendered through its message",
			value: errors.New("kaboom"),
			want:  "kaboom",
		},
		{
			name:  "integer payload rendered generically",
			value: 7,
			want:  "7",
		},
		{
			name:  "struct payload rendered generically",
			value: struct{ Code int }{Code: 3},
			want:  "{3}",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := FaultMessage(testCase.value); got != testCase.want {
				t.Fatalf("FaultMessage = %q, want %q", got, testCase.want)
			}
		})
	}
}

// TestFaultMessagePanickingRendererFallsBack verifies that a payload whose
// formatting method panics still yields a non-empty message without
// propagating the panic.
func TestFaultMessagePanickingRendererFallsBack(t *testing.T) {
	t.Parallel()

	message := FaultMessage(explodingRenderer{})
	if message == "" {
		t.Fatal("message is empty, want non-empty fallback rendering")
	}
	if !strings.Contains(message, "PANIC") {
		t.Fatalf("message = %q, want fmt panic diagnostic", message)
	}
}

// TestFaultStringIsTotal verifies that String tolerates a nil receiver and
// delegates to payload normalization otherwise.
func TestFaultStringIsTotal(t *testing.T) {
	t.Parallel()

	var missing *Fault
	if missing.String() == "" {
		t.Fatal("nil fault rendering is empty, want placeholder")
	}

	fault := &Fault{Value: "boom"}
	if fault.String() != "boom" {
		t.Fatalf("fault string = %q, want %q", fault.String(), "boom")
	}
}
