package wire

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWrapField(t *testing.T) {
	tests := []struct {
		name         string
		buildError   func() error
		expectedPath string
		expectedMsg  string
		target       error
	}{
		{
			name: "single field error",
			buildError: func() error {
				return WrapField(io.ErrUnexpectedEOF, "latitude")
			},
			expectedPath: "latitude",
			expectedMsg:  "unexpected EOF",
			target:       io.ErrUnexpectedEOF,
		},
		{
			name: "nested field error",
			buildError: func() error {
				err := WrapField(ErrRequiredFieldMissing, "latitude")
				err = WrapField(err, "target_location")
				err = WrapField(err, "input")
				return err
			},
			expectedPath: "input.target_location.latitude",
			expectedMsg:  "required field is not set",
			target:       ErrRequiredFieldMissing,
		},
		{
			name: "deeply nested error - no repetition",
			buildError: func() error {
				err := WrapField(ErrVarintOverflow, "id")
				err = WrapField(err, "author")
				err = WrapField(err, "post")
				err = WrapField(err, "comments")
				return err
			},
			expectedPath: "comments.post.author.id",
			expectedMsg:  "varint overflow",
			target:       ErrVarintOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buildError()

			// Check that it's a FieldError
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %T", err)
			}

			actualPath := strings.Join(fieldErr.FieldPath, ".")
			if actualPath != tt.expectedPath {
				t.Errorf("expected path %q, got %q", tt.expectedPath, actualPath)
			}

			errMsg := err.Error()
			if !strings.Contains(errMsg, tt.expectedPath) {
				t.Errorf("error message should contain path %q, got: %s", tt.expectedPath, errMsg)
			}
			if !strings.Contains(errMsg, tt.expectedMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.expectedMsg, errMsg)
			}
			if strings.Count(errMsg, "error at proto path") != 1 {
				t.Errorf("path prefix should appear exactly once: %s", errMsg)
			}

			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestWrapFieldNil(t *testing.T) {
	if err := WrapField(nil, "field"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestFieldErrorWithoutPath(t *testing.T) {
	err := &FieldError{Err: ErrInvalidFieldID}
	if err.Error() != ErrInvalidFieldID.Error() {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}
