package archive

import (
	"bytes"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pmed/yas/errors"
	"github.com/pmed/yas/header"
)

func TestOpenFormatSelectsView(t *testing.T) {
	for _, f := range []header.Format{header.FormatBinary, header.FormatText, header.FormatJSON} {
		var buf bytes.Buffer
		out, err := OpenOutputFormat(&buf, f)
		if err != nil {
			t.Fatalf("OpenOutputFormat(%v): %v", f, err)
		}
		if out.ArchiveType() != f {
			t.Errorf("output ArchiveType() = %v, want %v", out.ArchiveType(), f)
		}

		in, err := OpenInputFormat(&buf, f)
		if err != nil {
			t.Fatalf("OpenInputFormat(%v): %v", f, err)
		}
		if in.ArchiveType() != f {
			t.Errorf("input ArchiveType() = %v, want %v", in.ArchiveType(), f)
		}
		if in.HeaderSize() != out.HeaderSize() {
			t.Errorf("%v HeaderSize in/out = %d/%d", f, in.HeaderSize(), out.HeaderSize())
		}
	}
}

func TestOpenFormatUnknown(t *testing.T) {
	if _, err := OpenInputFormat(bytes.NewReader(nil), header.Format(6)); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("OpenInputFormat error = %v, want invalid input", err)
	}
	var buf bytes.Buffer
	if _, err := OpenOutputFormat(&buf, header.Format(6)); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("OpenOutputFormat error = %v, want invalid input", err)
	}
}

func TestOpenInputFormatReturnsNilViewOnError(t *testing.T) {
	in, err := OpenInputFormat(bytes.NewReader([]byte("ya")), header.FormatBinary)
	if err == nil {
		t.Fatal("expected error")
	}
	if in != nil {
		t.Errorf("view = %v, want nil", in)
	}
}

func TestViewsLogHeaderNegotiation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	if _, err := OpenOutput[Text](&buf); err != nil {
		t.Fatalf("OpenOutput: %v", err)
	}
	if _, err := OpenInput[Text](&buf); err != nil {
		t.Fatalf("OpenInput: %v", err)
	}
	if _, err := OpenInput[Binary](bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error")
	}

	if n := logs.FilterMessage("wrote archive header").Len(); n != 1 {
		t.Errorf("write entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("read archive header").Len(); n != 1 {
		t.Errorf("read entries = %d, want 1", n)
	}
	failed := logs.FilterMessage("read archive header failed").All()
	if len(failed) != 1 {
		t.Fatalf("failure entries = %d, want 1", len(failed))
	}
	if got := failed[0].ContextMap()["format"]; got != "binary" {
		t.Errorf("format field = %v, want binary", got)
	}
}
