// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "parse figfile",
			},
			expected: "failed to parse figfile",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "parse figfile",
				Resource:  "./figfile.cue",
			},
			expected: "failed to parse figfile: ./figfile.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "load config",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to load config: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "parse figfile",
				Resource:  "./figfile.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to parse figfile: ./figfile.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "emit directives",
		Resource:    "figfile.cue",
		Suggestions: []string{"Run 'figgo check' first", "Fix the offending value"},
		Cause:       errors.New("value \"baz\" is not assignable"),
	}

	short := err.Format(false)
	if !strings.Contains(short, "• Run 'figgo check' first") {
		t.Errorf("Format(false) missing suggestions: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) includes the error chain: %q", short)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing the error chain: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("emit directives").
		WithResource("out.txt").
		WithSuggestion("Check permissions on the output path").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with operation set")
	}
	if err.Operation != "emit directives" || err.Resource != "out.txt" {
		t.Errorf("built error = %+v", err)
	}
	if !err.HasSuggestions() {
		t.Error("suggestions were dropped")
	}
	if !errors.Is(err, cause) {
		t.Error("cause was dropped")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "noop") != nil {
		t.Error("wrapping nil should return nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "load config")
	if err == nil || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation lost the cause: %v", err)
	}
}
