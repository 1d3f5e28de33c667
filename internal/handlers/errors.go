package handlers

import (
	"errors"

	"auramart/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps business error kinds onto HTTP statuses so every kind
// surfaces distinctly: not-found vs. conflict vs. bad-request vs.
// payment-required vs. upstream failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProductNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrDiscountNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound),
		errors.Is(err, apperrors.ErrCartNotFound),
		errors.Is(err, apperrors.ErrWishlistNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrInsufficientStock),
		errors.Is(err, apperrors.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrDiscountNotValid),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidOrderItems):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrPaymentNotCompleted):
		return fiber.StatusPaymentRequired
	case errors.Is(err, apperrors.ErrGateway):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the error with the status its kind maps to.
func respondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
