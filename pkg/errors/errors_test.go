package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCanvas, "invalid canvas size: %s", "foo")

	if err.Code != ErrCodeInvalidCanvas {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidCanvas)
	}
	if err.Message != "invalid canvas size: foo" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Error("Cause should be nil")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := Wrap(ErrCodeInternal, cause, "adapt %s failed", "1080x1080")

	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeFormatNotFound, "no format 1x1")
	if got, want := err.Error(), "FORMAT_NOT_FOUND: no format 1x1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(ErrCodeInternal, stderrors.New("boom"), "context")
	if got, want := wrapped.Error(), "INTERNAL_ERROR: context: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidChannel, "bad channel")

	if !Is(err, ErrCodeInvalidChannel) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Matching through a wrapping chain.
	chained := fmt.Errorf("outer: %w", err)
	if !Is(chained, ErrCodeInvalidChannel) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidColor, "x")); got != ErrCodeInvalidColor {
		t.Errorf("GetCode = %s", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidCanvas, "invalid canvas size")
	if got := UserMessage(err); got != "invalid canvas size" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("raw")); got != "raw" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
