package weberr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestResponseExtraction(t *testing.T) {
	base := errors.New("boom")

	err := Wrap(base, WithResponse("payload", http.StatusConflict))

	body, status, ok := Response(err)
	if !ok {
		t.Fatal("expected a response to be attached")
	}
	if body != "payload" || status != http.StatusConflict {
		t.Errorf("got body %v status %d", body, status)
	}

	if !errors.Is(err, base) {
		t.Error("wrapping must preserve the error chain")
	}
}

func TestResponseSurvivesWrapping(t *testing.T) {
	err := Wrap(errors.New("boom"), WithResponse("payload", http.StatusBadRequest))
	wrapped := fmt.Errorf("outer context: %w", err)

	_, status, ok := Response(wrapped)
	if !ok || status != http.StatusBadRequest {
		t.Errorf("expected the response through the wrap, got ok=%v status=%d", ok, status)
	}
}

func TestResponseAbsent(t *testing.T) {
	if _, _, ok := Response(errors.New("plain")); ok {
		t.Error("a plain error must carry no response")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(errors.New("missing"))

	body, status, ok := Response(err)
	if !ok || status != http.StatusNotFound {
		t.Fatalf("expected a 404 response, got ok=%v status=%d", ok, status)
	}
	if _, isErr := body.(*ErrorResponse); !isErr {
		t.Errorf("expected an *ErrorResponse body, got %T", body)
	}
}
