package core

import (
	"errors"
	"testing"
)

func TestFetchError(t *testing.T) {
	innerErr := errors.New("connection refused")
	err := &FetchError{ProjectID: "p1", Version: "latest", Err: innerErr}

	expected := "fetch icons for project p1@latest: connection refused"
	if err.Error() != expected {
		t.Errorf("FetchError.Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, innerErr) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestWriteError(t *testing.T) {
	innerErr := errors.New("permission denied")
	err := &WriteError{ProjectID: "p1", IconID: "i9", Path: "plasmic/x.tsx", Err: innerErr}

	expected := "write icon i9 of project p1 to plasmic/x.tsx: permission denied"
	if err.Error() != expected {
		t.Errorf("WriteError.Error() = %q, want %q", err.Error(), expected)
	}

	var target *WriteError
	if !errors.As(error(err), &target) || target.IconID != "i9" {
		t.Error("errors.As should match *WriteError")
	}

	if !errors.Is(err, innerErr) {
		t.Error("errors.Is should find the inner error")
	}
}
