package apperrors

import "errors"

// Business error kinds. Services wrap these with fmt.Errorf("...: %w", Err...)
// so callers can branch with errors.Is while keeping contextual messages.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDiscountNotFound = errors.New("discount not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrWishlistNotFound = errors.New("wishlist not found")

	// ErrDuplicate signals a uniqueness conflict (discount code, wishlist item,
	// username/email).
	ErrDuplicate = errors.New("already exists")

	// ErrInsufficientStock is returned when a requested quantity exceeds the
	// available stock. The wrapping message names the product and shortfall.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDiscountNotValid signals a discount outside its validity window.
	ErrDiscountNotValid = errors.New("discount not currently valid")

	// ErrInvalidStatus signals an unrecognized order status label.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidOrderItems signals an order request with no items or a
	// non-positive quantity.
	ErrInvalidOrderItems = errors.New("invalid order items")

	// ErrInvalidTransition signals a recognized status that is not reachable
	// from the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPaymentNotCompleted signals a payment intent the gateway does not
	// report as succeeded. The caller may retry after completing payment.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrGateway signals a failure of the external payment gateway itself,
	// distinct from business errors so callers can choose to retry.
	ErrGateway = errors.New("payment gateway error")
)
