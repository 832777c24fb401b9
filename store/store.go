package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"tastytwist-api/models"
)

var (
	ErrNotFound           = errors.New("document not found")
	ErrDuplicateCartEntry = errors.New("already added, update quantity instead")
	ErrStaleStatus        = errors.New("claimed status does not match stored status")
	ErrBadID              = errors.New("malformed object id")
)

// Destination selects between the carts and favorites collections.
type Destination string

const (
	DestCart     Destination = "carts"
	DestFavorite Destination = "favorites"
)

// ParseDestination normalizes the items/item query parameter, which the
// frontend sends in both singular and plural forms.
func ParseDestination(q string) (Destination, error) {
	switch q {
	case "carts", "cart":
		return DestCart, nil
	case "favorites", "favorite":
		return DestFavorite, nil
	}
	return "", errors.New("unknown destination '" + q + "'")
}

// Opposite returns the other collection, used by the cart/favorite move.
func (d Destination) Opposite() Destination {
	if d == DestCart {
		return DestFavorite
	}
	return DestCart
}

// UserStore resolves identities and drives the seller-onboarding workflow.
type UserStore interface {
	// GetRole returns the role/status projection; unknown emails yield zero values.
	GetRole(ctx context.Context, email string) (models.RoleInfo, error)
	// UpsertUser inserts patch for a new email. For an existing user only a
	// "Requested" status patch is applied; otherwise the stored record is
	// returned untouched as the second result.
	UpsertUser(ctx context.Context, email string, patch models.User) (*mongo.UpdateResult, *models.User, error)
	SetStatus(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error)
	// PromoteToSeller promotes the pending application for email: the staged
	// restaurant moves into the restaurants collection, the request is removed
	// and the user becomes a seller, all in one transaction.
	PromoteToSeller(ctx context.Context, email string) error
	RejectApplication(ctx context.Context, email string) error
	ListSellerRequests(ctx context.Context) ([]models.RequestedRestaurant, error)
}

// CatalogStore covers restaurants and their menus.
type CatalogStore interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, email string) (*models.Restaurant, error)
	SubmitApplication(ctx context.Context, app models.RequestedRestaurant) (*mongo.InsertOneResult, error)
	UpdateRestaurant(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error)
	ListMenu(ctx context.Context, email string, f MenuFilter) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error)
	EditMenuItem(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error)
	DeleteMenuItem(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// SelectionStore maintains per-user carts and favorites.
type SelectionStore interface {
	// AddSelection inserts the entry. For the cart destination it first checks
	// the (email, menuId) pair and returns ErrDuplicateCartEntry on a hit.
	AddSelection(ctx context.Context, entry models.SelectionEntry, dest Destination) (*mongo.InsertOneResult, error)
	ListSelections(ctx context.Context, email string, dest Destination) ([]models.SelectionEntry, error)
	ListSelectedByIDs(ctx context.Context, ids []string) ([]models.SelectionEntry, error)
	UpdateCartCount(ctx context.Context, id string, count int) (*mongo.UpdateResult, error)
	// MoveSelection removes id from the source collection and inserts payload
	// into the opposite one inside a single transaction.
	MoveSelection(ctx context.Context, id string, from Destination, payload models.SelectionEntry) error
	DeleteSelection(ctx context.Context, id string, dest Destination) (*mongo.DeleteResult, error)
}

// OrderStore is the order lifecycle manager.
type OrderStore interface {
	// PlaceOrder atomically retires the referenced cart entries and persists
	// the order snapshot.
	PlaceOrder(ctx context.Context, order *models.Order, cartIDs []string) (*mongo.InsertOneResult, error)
	ListOrders(ctx context.Context, email string, asSeller bool) ([]models.OrderSummary, error)
	// AdvanceStatus re-reads the persisted status, verifies the caller's claim
	// when one is supplied, and applies the fixed transition table.
	AdvanceStatus(ctx context.Context, id string, claimed models.OrderStatus) (models.OrderStatus, error)
	// CancelWithFeedback marks the order cancelled and records the synthetic
	// feedback in one transaction. The order document is retained.
	CancelWithFeedback(ctx context.Context, id string, fb models.Feedback) error
}

// FeedbackStore lists and records feedback and computes seller statistics.
type FeedbackStore interface {
	ListFeedback(ctx context.Context, f FeedbackFilter) ([]models.Feedback, error)
	// RecordFeedback inserts the feedback and flags the source order.
	RecordFeedback(ctx context.Context, orderID string, fb models.Feedback) (*mongo.InsertOneResult, error)
	DeleteFeedback(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SellerStats(ctx context.Context, email string) (*models.SellerStats, error)
	OrderStatsByCategory(ctx context.Context, email string) ([]models.CategoryStat, error)
}

// ExtrasStore covers addresses, reviews, FAQs and coupons.
type ExtrasStore interface {
	GetAddress(ctx context.Context, email string) (*models.Address, error)
	SaveAddress(ctx context.Context, addr models.Address) (*mongo.InsertOneResult, error)
	ReplaceAddress(ctx context.Context, email string, addr models.Address) (*mongo.UpdateResult, error)
	UpdateAddressEmail(ctx context.Context, email, newEmail string) (*mongo.UpdateResult, error)
	ListReviews(ctx context.Context) ([]map[string]any, error)
	ListFAQs(ctx context.Context) ([]map[string]any, error)
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, c models.Coupon) (*mongo.InsertOneResult, error)
	EditCoupon(ctx context.Context, id string, patch map[string]any) (*mongo.UpdateResult, error)
}
