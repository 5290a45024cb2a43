// SPDX-License-Identifier: MPL-2.0

package fig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// emittedLines splits the captured sink into its non-empty lines.
func emittedLines(sink *strings.Builder) []string {
	out := strings.TrimSuffix(sink.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestDeclareRejectsInvalidName(t *testing.T) {
	e := NewEmitter(&strings.Builder{})

	if _, err := e.Declare("bad name"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Declare(\"bad name\") error = %v, want ErrInvalidName", err)
	}
	if _, err := e.Declare(""); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Declare(\"\") error = %v, want ErrInvalidName", err)
	}
}

func TestOneOfSetEmitsBothLines(t *testing.T) {
	var sink strings.Builder
	e := NewEmitter(&sink)

	d, err := e.Declare("custom_cfg")
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	c, err := d.AssignedOneOf("foo", "bar")
	if err != nil {
		t.Fatalf("AssignedOneOf: %v", err)
	}
	if err := c.Set("foo"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := []string{
		`cargo::rustc-check-cfg=cfg(custom_cfg, values("foo", "bar"))`,
		`cargo::rustc-cfg=custom_cfg="foo"`,
	}
	if got := emittedLines(&sink); !reflect.DeepEqual(got, want) {
		t.Errorf("emitted lines = %q, want %q", got, want)
	}
}

func TestOneOfSetRejectsValueOutsideSet(t *testing.T) {
	var sink strings.Builder
	e := NewEmitter(&sink)

	d, _ := e.Declare("custom_cfg")
	c, _ := d.AssignedOneOf("foo", "bar")

	err := c.Set("baz")
	if err == nil {
		t.Fatal("Set(\"baz\") succeeded, want ValueNotAllowedError")
	}

	var notAllowed *ValueNotAllowedError
	if !errors.As(err, &notAllowed) {
		t.Fatalf("error type = %T, want *ValueNotAllowedError", err)
	}
	if notAllowed.Value == nil || *notAllowed.Value != "baz" {
		t.Errorf("rejected value = %v, want \"baz\"", notAllowed.Value)
	}
	if want := []string{"foo", "bar"}; !reflect.DeepEqual(notAllowed.Allowed, want) {
		t.Errorf("allowed set = %q, want %q", notAllowed.Allowed, want)
	}
	if notAllowed.Predicate != "custom_cfg" {
		t.Errorf("predicate = %q, want custom_cfg", notAllowed.Predicate)
	}
	if sink.Len() != 0 {
		t.Errorf("rejected activation emitted %q, want nothing", sink.String())
	}
}

func TestBooleanShortcutEmitsNoneRegistration(t *testing.T) {
	var sink strings.Builder
	e := NewEmitter(&sink)

	d, err := e.Declare("telemetry")
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	if err := d.Set(); err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := []string{
		"cargo::rustc-check-cfg=cfg(telemetry, values(none()))",
		"cargo::rustc-cfg=telemetry",
	}
	if got := emittedLines(&sink); !reflect.DeepEqual(got, want) {
		t.Errorf("emitted lines = %q, want %q", got, want)
	}
}

func TestAssignedOneOfValueSetRules(t *testing.T) {
	e := NewEmitter(&strings.Builder{})

	t.Run("empty set", func(t *testing.T) {
		d, _ := e.Declare("cfg_a")
		if _, err := d.AssignedOneOf(); !errors.Is(err, ErrEmptyValueSet) {
			t.Errorf("AssignedOneOf() error = %v, want ErrEmptyValueSet", err)
		}
	})

	t.Run("duplicate value", func(t *testing.T) {
		d, _ := e.Declare("cfg_b")
		_, err := d.AssignedOneOf("a", "a")
		if !errors.Is(err, ErrDuplicateValue) {
			t.Fatalf("AssignedOneOf(a, a) error = %v, want ErrDuplicateValue", err)
		}
		var dup *DuplicateValueError
		if !errors.As(err, &dup) || dup.Value != "a" {
			t.Errorf("duplicate error = %#v, want Value \"a\"", err)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		d, _ := e.Declare("cfg_c")
		c, err := d.AssignedOneOf("z", "a", "m")
		if err != nil {
			t.Fatalf("AssignedOneOf: %v", err)
		}
		if want := []string{"z", "a", "m"}; !reflect.DeepEqual(c.Constraint().Allowed(), want) {
			t.Errorf("allowed set = %q, want %q", c.Constraint().Allowed(), want)
		}
	})

	t.Run("failed constraint leaves predicate declared", func(t *testing.T) {
		d, _ := e.Declare("cfg_d")
		if _, err := d.AssignedOneOf(); err == nil {
			t.Fatal("AssignedOneOf() succeeded, want error")
		}
		// The declared state was not consumed, so a valid retry works.
		if _, err := d.AssignedOneOf("ok"); err != nil {
			t.Errorf("retry after failed constraint: %v", err)
		}
	})
}

func TestNoneOrOneOf(t *testing.T) {
	t.Run("set none", func(t *testing.T) {
		var sink strings.Builder
		d, _ := NewEmitter(&sink).Declare("level")
		c, err := d.AssignedNoneOrOneOf("low", "high")
		if err != nil {
			t.Fatalf("AssignedNoneOrOneOf: %v", err)
		}
		if err := c.SetNone(); err != nil {
			t.Fatalf("SetNone: %v", err)
		}
		want := []string{
			`cargo::rustc-check-cfg=cfg(level, values(none(), "low", "high"))`,
			"cargo::rustc-cfg=level",
		}
		if got := emittedLines(&sink); !reflect.DeepEqual(got, want) {
			t.Errorf("emitted lines = %q, want %q", got, want)
		}
	})

	t.Run("set member", func(t *testing.T) {
		var sink strings.Builder
		d, _ := NewEmitter(&sink).Declare("level")
		c, _ := d.AssignedNoneOrOneOf("low", "high")
		if err := c.Set("high"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if got := emittedLines(&sink); got[1] != `cargo::rustc-cfg=level="high"` {
			t.Errorf("activation line = %q", got[1])
		}
	})
}

func TestAssignedAny(t *testing.T) {
	var sink strings.Builder
	d, _ := NewEmitter(&sink).Declare("vendor")
	c := d.AssignedAny()

	if err := c.SetNone(); !errors.Is(err, ErrValueNotAllowed) {
		t.Fatalf("SetNone under any constraint: error = %v, want ErrValueNotAllowed", err)
	}
	if err := c.Set("acme"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := []string{
		"cargo::rustc-check-cfg=cfg(vendor, values(any()))",
		`cargo::rustc-cfg=vendor="acme"`,
	}
	if got := emittedLines(&sink); !reflect.DeepEqual(got, want) {
		t.Errorf("emitted lines = %q, want %q", got, want)
	}
}

func TestSetNoneUnderOneOfRejected(t *testing.T) {
	var sink strings.Builder
	d, _ := NewEmitter(&sink).Declare("mode")
	c, _ := d.AssignedOneOf("fast", "slow")

	err := c.SetNone()
	var notAllowed *ValueNotAllowedError
	if !errors.As(err, &notAllowed) {
		t.Fatalf("SetNone error = %v, want *ValueNotAllowedError", err)
	}
	if notAllowed.Value != nil {
		t.Errorf("rejected value = %q, want nil", *notAllowed.Value)
	}
	if sink.Len() != 0 {
		t.Errorf("rejected activation emitted %q, want nothing", sink.String())
	}
}

func TestSetTwicePanics(t *testing.T) {
	var sink strings.Builder
	d, _ := NewEmitter(&sink).Declare("custom_cfg")
	c, _ := d.AssignedOneOf("foo", "bar")
	if err := c.Set("foo"); err != nil {
		t.Fatalf("first Set: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("second Set did not panic")
		}
	}()
	_ = c.Set("bar")
}

func TestConstrainTwicePanics(t *testing.T) {
	d, _ := NewEmitter(&strings.Builder{}).Declare("custom_cfg")
	if _, err := d.AssignedOneOf("foo"); err != nil {
		t.Fatalf("AssignedOneOf: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("second transition on consumed Declared did not panic")
		}
	}()
	d.AssignedAny()
}

// failingWriter fails every write with a fixed error.
type failingWriter struct{ err error }

func (w *failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteFailureSurfacesAsEmitError(t *testing.T) {
	cause := fmt.Errorf("broken pipe")
	d, _ := NewEmitter(&failingWriter{err: cause}).Declare("custom_cfg")

	err := d.Set()
	if !errors.Is(err, ErrEmit) {
		t.Fatalf("Set error = %v, want ErrEmit", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Set error does not wrap the I/O cause: %v", err)
	}
	var emitErr *EmitError
	if !errors.As(err, &emitErr) || emitErr.Predicate != "custom_cfg" {
		t.Errorf("emit error = %#v, want predicate custom_cfg", err)
	}
}

func TestIndependentPredicatesEmitInCallOrder(t *testing.T) {
	var sink strings.Builder
	e := NewEmitter(&sink)

	first, _ := e.Declare("first")
	second, _ := e.Declare("second")
	if err := second.Set(); err != nil {
		t.Fatalf("Set second: %v", err)
	}
	if err := first.Set(); err != nil {
		t.Fatalf("Set first: %v", err)
	}

	lines := emittedLines(&sink)
	if len(lines) != 4 {
		t.Fatalf("emitted %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "second") || !strings.Contains(lines[2], "first") {
		t.Errorf("emission order does not follow activation order: %q", lines)
	}
}
