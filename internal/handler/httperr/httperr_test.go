package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"guidely/internal/infra"
	"guidely/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation("bad date"), want: http.StatusBadRequest},
		{name: "forbidden", err: errs.Mark(errs.New("nope"), errs.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: errs.Mark(errs.New("gone"), errs.ErrNotFound), want: http.StatusNotFound},
		{name: "slot taken", err: errs.Mark(errs.New("taken"), errs.ErrSlotUnavailable), want: http.StatusConflict},
		{name: "bad transition", err: errs.Mark(errs.New("late"), errs.ErrInvalidStateTransition), want: http.StatusConflict},
		{name: "upstream", err: errs.Mark(errs.New("payments down"), errs.ErrUpstreamFailure), want: http.StatusBadGateway},
		{name: "wrapped category", err: errs.Wrap(errs.Validation("bad"), "parse"), want: http.StatusBadRequest},
		{name: "repository conflict", err: infra.WrapRepoErr("insert", errors.New("23P01"), infra.KindConflict), want: http.StatusConflict},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestAbort_HidesUncategorisedMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "categorised", err: errs.Validation("days must be between 1 and 60"), status: http.StatusBadRequest, message: "days must be between 1 and 60"},
		{name: "internal", err: errors.New("pq: connection reset"), status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Abort(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
		})
	}
}
