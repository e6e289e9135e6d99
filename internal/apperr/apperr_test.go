package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := Conflict("category name already exists")
	if KindOf(err) != KindConflict {
		t.Fatalf("KindOf: expected %q, got %q", KindConflict, KindOf(err))
	}
	wrapped := fmt.Errorf("create category: %w", err)
	if !IsConflict(wrapped) {
		t.Fatalf("IsConflict: expected true for wrapped error")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("KindOf: expected empty kind for plain error")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("recipe not found"), http.StatusNotFound},
		{InvalidArgument("title is required"), http.StatusBadRequest},
		{Conflict("ingredient in use"), http.StatusConflict},
		{InvalidState("only draft recipes can be published"), http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v)=%d, want %d", tc.err, got, tc.want)
		}
	}
}
