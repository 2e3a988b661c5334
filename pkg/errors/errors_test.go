package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDate, "activity %s: bad date", "A1")

	if err.Code != ErrCodeInvalidDate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDate)
	}
	if err.Message != "activity A1: bad date" {
		t.Errorf("Message = %v", err.Message)
	}
	if got, want := err.Error(), "INVALID_DATE: activity A1: bad date"; got != want {
		t.Errorf("Error() = %v, want %v", got, want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidSchedule, cause, "decode failed")

	if err.Code != ErrCodeInvalidSchedule {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSchedule)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeEmptySchedule, "empty"), ErrCodeEmptySchedule, true},
		{"different code", New(ErrCodeEmptySchedule, "empty"), ErrCodeInvalidDate, false},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(ErrCodeInvalidDate, "bad")), ErrCodeInvalidDate, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidDate, false},
		{"nil", nil, ErrCodeInvalidDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDate, "activity A1: bad date")
	if got := UserMessage(err); got != "activity A1: bad date" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsData(t *testing.T) {
	dataCodes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidSchedule, ErrCodeInvalidActivity,
		ErrCodeInvalidDate, ErrCodeEmptySchedule,
	}
	for _, code := range dataCodes {
		if !IsData(New(code, "x")) {
			t.Errorf("IsData(%v) = false, want true", code)
		}
	}

	otherCodes := []Code{ErrCodeInternal, ErrCodeFileNotFound, ErrCodeUnsupported}
	for _, code := range otherCodes {
		if IsData(New(code, "x")) {
			t.Errorf("IsData(%v) = true, want false", code)
		}
	}
	if IsData(errors.New("plain")) {
		t.Error("IsData(plain) = true, want false")
	}
}
