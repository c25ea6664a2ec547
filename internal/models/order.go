package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. There is no transition graph: any status may follow any other.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// Shipping zones accepted by shippingInfo.type.
const (
	ShippingInsideDhaka  = "Inside Dhaka"
	ShippingOutsideDhaka = "Outside Dhaka"
)

// DefaultPaymentMethod is applied when summary.paymentMethod is omitted.
const DefaultPaymentMethod = "Cash On Delivery"

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidShippingType reports whether t is an accepted shipping zone.
func ValidShippingType(t string) bool {
	return t == ShippingInsideDhaka || t == ShippingOutsideDhaka
}

// BillingDetails captures the buyer's contact information for an order.
type BillingDetails struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

// OrderedProduct is a single line item within an order.
type OrderedProduct struct {
	Category string  `bson:"category" json:"category"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Size     string  `bson:"size" json:"size"`
	Color    string  `bson:"color" json:"color"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// ShippingInfo holds the delivery zone and its cost.
type ShippingInfo struct {
	Type string  `bson:"type" json:"type"`
	Cost float64 `bson:"cost" json:"cost"`
}

// OrderSummary holds the price breakdown of an order.
type OrderSummary struct {
	Subtotal      float64 `bson:"subtotal" json:"subtotal"`
	Total         float64 `bson:"total" json:"total"`
	PaymentMethod string  `bson:"paymentMethod" json:"paymentMethod"`
}

// Order defines the persisted order document.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BillingDetails  BillingDetails     `bson:"billingDetails" json:"billingDetails"`
	OrderedProducts []OrderedProduct   `bson:"orderedProducts" json:"orderedProducts"`
	ShippingInfo    ShippingInfo       `bson:"shippingInfo" json:"shippingInfo"`
	Summary         OrderSummary       `bson:"summary" json:"summary"`
	Status          string             `bson:"status" json:"status"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
