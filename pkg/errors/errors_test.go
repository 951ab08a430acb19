package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("MetadataFor(%s).HTTPStatus = %d, want %d", tc.code, got, tc.status)
		}
	}

	if got := MetadataFor("SOMETHING_ELSE").HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("unknown codes default to internal, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("socket closed")
	err := Wrap(CodeDependency, cause, "notify send")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped error must unwrap to its cause")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code: %s", err.Code())
	}
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	t.Parallel()

	inner := New(CodeNotFound, "good not found")
	outer := fmt.Errorf("loading good: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error through fmt wrapping")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code: %s", typed.Code())
	}
}

func TestAsPlainError(t *testing.T) {
	t.Parallel()

	if typed := As(stdErrors.New("plain")); typed != nil {
		t.Fatal("plain errors must not convert")
	}
	if typed := As(nil); typed != nil {
		t.Fatal("nil must not convert")
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()

	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"name": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details type: %T", err.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected details: %+v", details)
	}
}
