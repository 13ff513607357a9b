package main

import (
	"errors"
	"testing"
)

func TestEbitenImplementsVideoOutput(t *testing.T) {
	eo := &EbitenOutput{}
	if _, ok := any(eo).(VideoOutput); !ok {
		t.Fatal("expected EbitenOutput to implement VideoOutput")
	}
}

func TestNewVideoOutputUnknownBackend(t *testing.T) {
	_, err := NewVideoOutput(99, nil, View{}, 0.5, DisplayConfig{})
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
	var videoErr *VideoError
	if !errors.As(err, &videoErr) {
		t.Fatalf("expected a *VideoError, got %T", err)
	}
}

func TestVideoErrorFormatting(t *testing.T) {
	plain := &VideoError{Operation: "swap", Details: "no back buffer"}
	if plain.Error() != "video swap failed: no back buffer" {
		t.Fatalf("unexpected message: %q", plain.Error())
	}

	wrapped := &VideoError{Operation: "start", Details: "window", Err: errors.New("boom")}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Fatal("expected wrapped error to unwrap")
	}
}
