package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kashmeeri-backend/internal/models"
)

// Tagged error kinds. Handlers map these onto HTTP statuses instead of
// inspecting error strings.
var (
	ErrNotFound  = errors.New("order not found")
	ErrInvalidID = errors.New("invalid order id")
)

// OrderStore owns the orders collection and the schema rules applied to it.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{col: db.Collection("orders")}
}

// Create validates the candidate order, applies defaults and inserts it.
// Validation failures are reported before any write is attempted.
func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	if violations := ValidateOrder(o); len(violations) > 0 {
		return &ValidationError{Fields: violations}
	}

	applyCreateDefaults(o, time.Now().UTC())

	res, err := s.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return nil
}

func applyCreateDefaults(o *models.Order, now time.Time) {
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = now
	}
	if o.Summary.PaymentMethod == "" {
		o.Summary.PaymentMethod = models.DefaultPaymentMethod
	}
	for i := range o.OrderedProducts {
		if o.OrderedProducts[i].Quantity == 0 {
			o.OrderedProducts[i].Quantity = 1
		}
	}
	o.CreatedAt = now
	o.UpdatedAt = now
}

// ListFiltered returns orders whose orderDate falls within the optional
// bounds, newest first. The end bound is inclusive of its whole calendar
// day: filtering runs against orderDate < end + 24h.
func (s *OrderStore) ListFiltered(ctx context.Context, start, end *time.Time) ([]models.Order, error) {
	filter := dateFilter(start, end)

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func dateFilter(start, end *time.Time) bson.M {
	if start == nil && end == nil {
		return bson.M{}
	}

	bounds := bson.M{}
	if start != nil {
		bounds["$gte"] = *start
	}
	if end != nil {
		bounds["$lt"] = end.AddDate(0, 0, 1)
	}
	return bson.M{"orderDate": bounds}
}

// UpdateStatus overwrites the status of a single order atomically and
// returns the updated document.
func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if status == "" {
		return nil, &ValidationError{Fields: []string{"status is required"}}
	}
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Fields: []string{statusViolation(status)}}
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// OrderPatch is the field set accepted by Replace. Nil sections are left
// untouched; supplied sections overwrite the stored ones wholesale, which
// matches a $set of the request body's top-level keys.
type OrderPatch struct {
	BillingDetails  *models.BillingDetails  `json:"billingDetails"`
	OrderedProducts []models.OrderedProduct `json:"orderedProducts"`
	ShippingInfo    *models.ShippingInfo    `json:"shippingInfo"`
	Summary         *models.OrderSummary    `json:"summary"`
	Status          *string                 `json:"status"`
	OrderDate       *time.Time              `json:"orderDate"`
}

// Replace merges the patch onto the stored order, re-validates the merged
// document with the Create rules and writes only the supplied fields.
// orderDate is never altered unless the patch carries it.
func (s *OrderStore) Replace(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var existing models.Order
	err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status == "" {
		return nil, &ValidationError{Fields: []string{"status is required"}}
	}

	merged, set := mergePatch(existing, patch)
	if violations := ValidateOrder(&merged); len(violations) > 0 {
		return nil, &ValidationError{Fields: violations}
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func mergePatch(existing models.Order, patch OrderPatch) (models.Order, bson.M) {
	set := bson.M{}

	if patch.BillingDetails != nil {
		existing.BillingDetails = *patch.BillingDetails
		set["billingDetails"] = existing.BillingDetails
	}
	if patch.OrderedProducts != nil {
		items := make([]models.OrderedProduct, len(patch.OrderedProducts))
		copy(items, patch.OrderedProducts)
		for i := range items {
			if items[i].Quantity == 0 {
				items[i].Quantity = 1
			}
		}
		existing.OrderedProducts = items
		set["orderedProducts"] = items
	}
	if patch.ShippingInfo != nil {
		existing.ShippingInfo = *patch.ShippingInfo
		set["shippingInfo"] = existing.ShippingInfo
	}
	if patch.Summary != nil {
		summary := *patch.Summary
		if summary.PaymentMethod == "" {
			summary.PaymentMethod = models.DefaultPaymentMethod
		}
		existing.Summary = summary
		set["summary"] = summary
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
		set["status"] = existing.Status
	}
	if patch.OrderDate != nil {
		existing.OrderDate = *patch.OrderDate
		set["orderDate"] = existing.OrderDate
	}

	return existing, set
}

// Delete removes an order permanently and returns the removed id for
// confirmation. A second delete of the same id reports ErrNotFound.
func (s *OrderStore) Delete(ctx context.Context, id string) (string, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", ErrInvalidID
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return "", err
	}
	if res.DeletedCount == 0 {
		return "", ErrNotFound
	}
	return id, nil
}
