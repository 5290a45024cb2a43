// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		FigfileNotFoundId,
		FigfileParseErrorId,
		ValueNotAllowedId,
		ConfigLoadFailedId,
		EmissionFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if FigfileNotFoundId != 1 {
		t.Errorf("FigfileNotFoundId = %d, want 1", FigfileNotFoundId)
	}
}

func TestGet(t *testing.T) {
	issue := Get(FigfileNotFoundId)
	if issue == nil {
		t.Fatal("Get(FigfileNotFoundId) returned nil")
	}
	if issue.Id() != FigfileNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), FigfileNotFoundId)
	}

	if Get(Id(999)) != nil {
		t.Error("Get(unknown) should return nil")
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(FigfileParseErrorId)
	if issue == nil {
		t.Fatal("Get(FigfileParseErrorId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}
	if !strings.Contains(string(msg), "Failed to parse figfile") {
		t.Error("MarkdownMsg() should contain the parse-error headline")
	}
}

func TestValues(t *testing.T) {
	values := Values()
	if len(values) != 5 {
		t.Errorf("Values() returned %d issues, want 5", len(values))
	}
	for _, issue := range values {
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", issue.Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	// render uses glamour; stub it to keep the test hermetic.
	origRender := render
	render = func(in string, _ string) (string, error) { return in, nil }
	t.Cleanup(func() { render = origRender })

	out, err := Get(ValueNotAllowedId).Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Activation value not allowed") {
		t.Errorf("rendered output missing headline: %q", out)
	}
}
