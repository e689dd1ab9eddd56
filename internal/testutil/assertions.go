package testutil

import (
	"errors"
	"testing"
	"time"

	apperrors "pembukuan/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationError checks that err is a client-input AppError.
func AssertValidationError(t *testing.T, err error) {
	t.Helper()

	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertSameDay checks that got falls on the same calendar day as want.
func AssertSameDay(t *testing.T, want, got time.Time) {
	t.Helper()

	wy, wm, wd := want.Date()
	gy, gm, gd := got.Date()
	if wy != gy || wm != gm || wd != gd {
		t.Errorf("expected date %04d-%02d-%02d, got %04d-%02d-%02d", wy, wm, wd, gy, gm, gd)
	}
}
