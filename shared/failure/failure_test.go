package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"grandhotel/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("checkout must be after checkin")), wantCode: http.StatusBadRequest, wantMsg: "checkout must be after checkin"},
		{name: "bad request from string", err: failure.BadRequestFromString("missing -room"), wantCode: http.StatusBadRequest, wantMsg: "missing -room"},
		{name: "unauthorized", err: failure.Unauthorized("admin login required"), wantCode: http.StatusUnauthorized, wantMsg: "admin login required"},
		{name: "forbidden", err: failure.Forbidden("admin login is disabled"), wantCode: http.StatusForbidden, wantMsg: "admin login is disabled"},
		{name: "not found", err: failure.NotFound("coupon"), wantCode: http.StatusNotFound, wantMsg: "coupon"},
		{name: "conflict", err: failure.Conflict("booking cannot move from Cancelled to CheckedIn"), wantCode: http.StatusConflict, wantMsg: "booking cannot move from Cancelled to CheckedIn"},
		{name: "internal", err: failure.InternalError(errors.New("session store down")), wantCode: http.StatusInternalServerError, wantMsg: "session store down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestPredefined(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.Equal(t, http.StatusForbidden, failure.GuestBlacklisted.Code)
}

func TestFailure_Is(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", failure.GuestBlacklisted)

	assert.ErrorIs(t, wrapped, failure.GuestBlacklisted)
	assert.NotErrorIs(t, wrapped, failure.ForbiddenError)
	assert.ErrorIs(t, failure.Forbidden(failure.GuestBlacklisted.Message), failure.GuestBlacklisted)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.New(http.StatusConflict, "taken"), want: http.StatusConflict},
		{name: "wrapped failure", err: fmt.Errorf("save coupon: %w", failure.NotFound("coupon")), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
