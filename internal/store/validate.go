package store

import (
	"fmt"
	"strings"

	"kashmeeri-backend/internal/models"
)

// ValidationError carries every field-level violation found in an order
// document. Handlers render the Fields slice verbatim in the errors array.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Fields, "; ")
}

// ValidateOrder checks an order document against the schema rules and
// returns one message per violated constraint. It runs against the fully
// merged document, so both Create and Replace share it. Defaults are not
// applied here; a zero quantity or empty status is legal input and gets
// defaulted later.
func ValidateOrder(o *models.Order) []string {
	var violations []string

	if strings.TrimSpace(o.BillingDetails.Name) == "" {
		violations = append(violations, "billingDetails.name is required")
	}
	if strings.TrimSpace(o.BillingDetails.Phone) == "" {
		violations = append(violations, "billingDetails.phone is required")
	}
	if strings.TrimSpace(o.BillingDetails.Address) == "" {
		violations = append(violations, "billingDetails.address is required")
	}

	if len(o.OrderedProducts) == 0 {
		violations = append(violations, "orderedProducts must contain at least one item")
	}
	for i, p := range o.OrderedProducts {
		if strings.TrimSpace(p.Category) == "" {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.category is required", i))
		}
		if strings.TrimSpace(p.Name) == "" {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.name is required", i))
		}
		if p.Price < 0 {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.price must not be negative", i))
		}
		if strings.TrimSpace(p.Size) == "" {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.size is required", i))
		}
		if strings.TrimSpace(p.Color) == "" {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.color is required", i))
		}
		if p.Quantity < 0 {
			violations = append(violations, fmt.Sprintf("orderedProducts.%d.quantity must not be negative", i))
		}
	}

	if !models.ValidShippingType(o.ShippingInfo.Type) {
		violations = append(violations, fmt.Sprintf(
			"shippingInfo.type must be %q or %q", models.ShippingInsideDhaka, models.ShippingOutsideDhaka))
	}

	if o.Status != "" && !models.ValidStatus(o.Status) {
		violations = append(violations, statusViolation(o.Status))
	}

	return violations
}

func statusViolation(status string) string {
	return fmt.Sprintf("status %q is not one of Pending, Processing, Shipped, Delivered, Cancelled", status)
}
