package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidHexDigit,
				Format: "text",
				Detail: "byte 3 is not a hex digit",
			},
			contains: []string{"[decode]", "invalid_hex_digit", "(text)", "byte 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseQuery,
				Kind:  KindNoHeader,
			},
			contains: []string{"[query]", "no_header"},
		},
		{
			name:     "sentinel",
			err:      ErrEmptyArchive,
			contains: []string{"empty_archive"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindIO,
				Detail: "stream error",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[encode]", "io", "stream error", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := IO(PhaseDecode, "binary", io.ErrClosedPipe)

	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("errors.Is did not reach cause")
	}
	if !errors.Is(errors.Unwrap(err), io.ErrClosedPipe) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := EmptyArchive("binary", 2, 4)

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindEmptyArchive}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindEmptyArchive}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindBadArchiveInformation}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrEmptyArchive) {
		t.Error("errors.Is should match phase-less sentinel")
	}
	if errors.Is(err, io.EOF) {
		t.Error("errors.Is should not match unrelated error")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []*Error{
		ErrEmptyArchive,
		ErrBadArchiveInformation,
		ErrNoHeader,
		ErrInvalidHexDigit,
		ErrIO,
		ErrInvalidInput,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if got := errors.Is(a, b); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, got)
			}
		}
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidHexDigit).
		Format("text").
		Value(byte('g')).
		Cause(cause).
		Detail("byte %d is %q", 4, 'g').
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidHexDigit {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidHexDigit)
	}
	if err.Format != "text" {
		t.Errorf("Format = %v, want 'text'", err.Format)
	}
	if err.Value != byte('g') {
		t.Errorf("Value = %v, want 'g'", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "byte 4 is 'g'" {
		t.Errorf("Detail = %v, want \"byte 4 is 'g'\"", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("EmptyArchive", func(t *testing.T) {
		err := EmptyArchive("binary", 2, 4)
		if err.Kind != KindEmptyArchive || err.Phase != PhaseDecode {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "2 of 4") {
			t.Errorf("Detail = %v, should contain counts", err.Detail)
		}
	})

	t.Run("BadArchiveInformation", func(t *testing.T) {
		prefix := []byte("xyz")
		err := BadArchiveInformation("binary", prefix)
		prefix[0] = 'q'
		if err.Kind != KindBadArchiveInformation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindBadArchiveInformation)
		}
		if v, ok := err.Value.([]byte); !ok || string(v) != "xyz" {
			t.Errorf("Value = %v, want copy of prefix", err.Value)
		}
	})

	t.Run("NoHeader", func(t *testing.T) {
		err := NoHeader("version")
		if err.Kind != KindNoHeader || err.Phase != PhaseQuery {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "version") {
			t.Errorf("Detail = %v, should name accessor", err.Detail)
		}
	})

	t.Run("InvalidHexDigit", func(t *testing.T) {
		err := InvalidHexDigit(3, 'G')
		if err.Kind != KindInvalidHexDigit || err.Format != "text" {
			t.Errorf("got %v/%v", err.Kind, err.Format)
		}
		if err.Value != byte('G') {
			t.Errorf("Value = %v, want 'G'", err.Value)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "unknown format")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})
}

func TestKindOf(t *testing.T) {
	wrapped := IO(PhaseDecode, "text", EmptyArchive("text", 0, 5))
	if got := KindOf(wrapped); got != KindIO {
		t.Errorf("KindOf = %v, want %v", got, KindIO)
	}
	if got := KindOf(io.EOF); got != "" {
		t.Errorf("KindOf(io.EOF) = %v, want empty", got)
	}
}
