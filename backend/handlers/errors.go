package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SzerokiGeralt/MemeSwipe/backend/utils"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/services"
)

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindInvalidVoteKind, services.KindSelfVote:
		return fiber.StatusBadRequest
	case services.KindUserNotFound, services.KindPostNotFound, services.KindQuestNotFound, services.KindItemNotFound:
		return fiber.StatusNotFound
	case services.KindDuplicateVote, services.KindAlreadyClaimed, services.KindNotYetComplete,
		services.KindAlreadyOwned, services.KindInsufficientDiamonds:
		return fiber.StatusConflict
	case services.KindUploadCooldown:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusBadRequest
	}
}

// sendServiceError maps engine rejections to 4xx with their kind as the code. Anything
// else is a store failure and is reported as a bare 500.
func sendServiceError(c *fiber.Ctx, err error, op string) error {
	if pe, ok := services.AsPrecondition(err); ok {
		code := strings.ToUpper(string(pe.Kind))
		status := statusFor(pe.Kind)
		if status == fiber.StatusTooManyRequests {
			return utils.SendTooManyRequests(c, code, pe.Message, pe.RetryAfter)
		}
		return utils.SendError(c, status, code, pe.Message, nil)
	}

	slog.Error("Request failed",
		slog.String("type", "error"),
		slog.String("operation", op),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return utils.SendInternalServerError(c, "Internal Server Error")
}
