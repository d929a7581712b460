package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/services"
)

func TestSendServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "invalid kind", err: services.ErrInvalidVoteKind, wantStatus: http.StatusBadRequest, wantBody: "INVALID_VOTE_KIND"},
		{name: "wrapped not found", err: fmt.Errorf("vote: %w", services.ErrPostNotFound), wantStatus: http.StatusNotFound, wantBody: "POST_NOT_FOUND"},
		{name: "duplicate", err: services.ErrDuplicateVote, wantStatus: http.StatusConflict, wantBody: "DUPLICATE_VOTE"},
		{name: "not enough diamonds", err: services.ErrInsufficientDiamonds, wantStatus: http.StatusConflict, wantBody: "INSUFFICIENT_DIAMONDS"},
		{name: "cooldown", err: services.ErrUploadCooldown, wantStatus: http.StatusTooManyRequests, wantBody: "UPLOAD_COOLDOWN"},
		{name: "store failure", err: errors.New("failed to lock stats: connection reset"), wantStatus: http.StatusInternalServerError, wantBody: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return sendServiceError(c, tt.err, "test")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.wantBody)
			assert.NotContains(t, string(body), "connection reset")
		})
	}
}

func TestSendServiceErrorRetryAfter(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return sendServiceError(c, &services.PreconditionError{
			Kind:       services.KindUploadCooldown,
			Message:    "wait",
			RetryAfter: 90*time.Minute + 500*time.Millisecond,
		}, "upload")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "5401", resp.Header.Get(fiber.HeaderRetryAfter))
}
