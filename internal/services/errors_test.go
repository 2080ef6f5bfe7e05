package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("connection reset")
	err := Wrap(ErrTransient, "oracle", "disambiguate", "request failed", base)

	if !errors.Is(err, ErrTransient) {
		t.Error("expected ErrTransient marker")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped cause to survive")
	}
	want := "transient failure: oracle: disambiguate: request failed: connection reset"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "store", "put", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Error("nil marker should default to ErrTransient")
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrContract, "", "", "", nil)
	if err.Error() != "contract violation: service failure" {
		t.Errorf("Error() = %q", err.Error())
	}
}
