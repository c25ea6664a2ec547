package store

import (
	"strings"
	"testing"

	"kashmeeri-backend/internal/models"
)

func validOrder() models.Order {
	return models.Order{
		BillingDetails: models.BillingDetails{Name: "A", Phone: "1", Address: "X"},
		OrderedProducts: []models.OrderedProduct{
			{Category: "Panjabi", Name: "Shirt", Price: 500, Size: "M", Color: "Blue"},
		},
		ShippingInfo: models.ShippingInfo{Type: models.ShippingInsideDhaka, Cost: 60},
		Summary:      models.OrderSummary{Subtotal: 500, Total: 560},
	}
}

func TestValidateOrderAcceptsCompleteOrder(t *testing.T) {
	order := validOrder()
	if violations := ValidateOrder(&order); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateOrderMissingBillingFields(t *testing.T) {
	order := validOrder()
	order.BillingDetails = models.BillingDetails{}

	violations := ValidateOrder(&order)
	if len(violations) != 3 {
		t.Fatalf("expected 3 billing violations, got %v", violations)
	}
	for _, field := range []string{"billingDetails.name", "billingDetails.phone", "billingDetails.address"} {
		if !containsSubstring(violations, field) {
			t.Fatalf("expected a violation mentioning %s, got %v", field, violations)
		}
	}
}

func TestValidateOrderEmptyProducts(t *testing.T) {
	order := validOrder()
	order.OrderedProducts = nil

	violations := ValidateOrder(&order)
	if !containsSubstring(violations, "orderedProducts must contain at least one item") {
		t.Fatalf("expected empty-products violation, got %v", violations)
	}
}

func TestValidateOrderItemConstraints(t *testing.T) {
	order := validOrder()
	order.OrderedProducts = []models.OrderedProduct{
		{Category: "", Name: "", Price: -1, Size: "", Color: ""},
	}

	violations := ValidateOrder(&order)
	for _, field := range []string{
		"orderedProducts.0.category",
		"orderedProducts.0.name",
		"orderedProducts.0.price",
		"orderedProducts.0.size",
		"orderedProducts.0.color",
	} {
		if !containsSubstring(violations, field) {
			t.Fatalf("expected a violation mentioning %s, got %v", field, violations)
		}
	}
}

func TestValidateOrderShippingType(t *testing.T) {
	order := validOrder()
	order.ShippingInfo.Type = "Inside Chittagong"

	violations := ValidateOrder(&order)
	if !containsSubstring(violations, "shippingInfo.type") {
		t.Fatalf("expected shipping type violation, got %v", violations)
	}
}

func TestValidateOrderStatusEnum(t *testing.T) {
	order := validOrder()
	order.Status = "Returned"

	violations := ValidateOrder(&order)
	if !containsSubstring(violations, `status "Returned"`) {
		t.Fatalf("expected status violation, got %v", violations)
	}

	order.Status = ""
	if violations := ValidateOrder(&order); len(violations) != 0 {
		t.Fatalf("empty status should be legal before defaulting, got %v", violations)
	}

	order.Status = models.StatusShipped
	if violations := ValidateOrder(&order); len(violations) != 0 {
		t.Fatalf("expected Shipped to be accepted, got %v", violations)
	}
}

func containsSubstring(violations []string, substr string) bool {
	for _, v := range violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
