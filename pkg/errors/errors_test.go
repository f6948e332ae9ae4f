// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/tikotako/takonsole/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unsupported_style",
			code:    errors.ErrUnsupportedStyle,
			message: "style 0x3 has no escape mapping",
			wantStr: "[UNSUPPORTED_STYLE] style 0x3 has no escape mapping",
		},
		{
			name:    "not_active",
			code:    errors.ErrNotActive,
			message: "console is not allocated",
			wantStr: "[NOT_ACTIVE] console is not allocated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSetFont, "font %q size %d rejected", "Consolas", 14)
	if err.Message != `font "Consolas" size 14 rejected` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrAlloc, "cannot acquire console")

		if err.Code != errors.ErrAlloc {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrAlloc)
		}
		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[ALLOC] cannot acquire console: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should see the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrAlloc, "x"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrAlloc, "x %d", 1); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnsupportedStyle, "bad style").
		WithDetail("style", 0x3)

	if err.Details["style"] != 0x3 {
		t.Errorf("WithDetail() style = %v, want %v", err.Details["style"], 0x3)
	}
	if got := errors.GetErrorDetails(err); got["style"] != 0x3 {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails(plain) = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotActive, "error 1")
	err2 := errors.New(errors.ErrNotActive, "error 2")
	err3 := errors.New(errors.ErrWrite, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotActive, "x"), errors.ErrNotActive, true},
		{"different_code", errors.New(errors.ErrNotActive, "x"), errors.ErrWrite, false},
		{"wrapped_in_fmt", fmt.Errorf("outer: %w", errors.New(errors.ErrFree, "x")), errors.ErrFree, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrNotActive, false},
		{"nil_error", nil, errors.ErrNotActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrWrite, "x")); got != errors.ErrWrite {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrWrite)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}
