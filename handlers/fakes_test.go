package handlers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tastytwist-api/models"
	"tastytwist-api/statemachine"
	"tastytwist-api/store"
)

// fakeSelectionStore keeps carts and favorites in memory and enforces the same
// duplicate rule as the Mongo implementation.
type fakeSelectionStore struct {
	mu        sync.Mutex
	carts     map[string]models.SelectionEntry
	favorites map[string]models.SelectionEntry
}

func newFakeSelectionStore() *fakeSelectionStore {
	return &fakeSelectionStore{
		carts:     map[string]models.SelectionEntry{},
		favorites: map[string]models.SelectionEntry{},
	}
}

func (f *fakeSelectionStore) bucket(dest store.Destination) map[string]models.SelectionEntry {
	if dest == store.DestFavorite {
		return f.favorites
	}
	return f.carts
}

func (f *fakeSelectionStore) AddSelection(_ context.Context, entry models.SelectionEntry, dest store.Destination) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dest == store.DestCart {
		for _, e := range f.carts {
			if e.Email == entry.Email && e.MenuID == entry.MenuID {
				return nil, store.ErrDuplicateCartEntry
			}
		}
	}
	id := primitive.NewObjectID()
	entry.ID = id
	f.bucket(dest)[id.Hex()] = entry
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (f *fakeSelectionStore) ListSelections(_ context.Context, email string, dest store.Destination) ([]models.SelectionEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SelectionEntry
	for _, e := range f.bucket(dest) {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSelectionStore) ListSelectedByIDs(_ context.Context, ids []string) ([]models.SelectionEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SelectionEntry
	for _, id := range ids {
		if e, ok := f.carts[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSelectionStore) UpdateCartCount(_ context.Context, id string, count int) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.carts[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	e.Count = count
	f.carts[id] = e
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeSelectionStore) MoveSelection(_ context.Context, id string, from store.Destination, payload models.SelectionEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	src := f.bucket(from)
	if _, ok := src[id]; !ok {
		return store.ErrNotFound
	}
	delete(src, id)
	f.bucket(from.Opposite())[id] = payload
	return nil
}

func (f *fakeSelectionStore) DeleteSelection(_ context.Context, id string, dest store.Destination) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bucket := f.bucket(dest)
	if _, ok := bucket[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(bucket, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// fakeOrderStore mirrors the lifecycle semantics: placement consumes cart
// entries, status advances follow the real transition table.
type fakeOrderStore struct {
	mu        sync.Mutex
	carts     *fakeSelectionStore
	orders    map[string]*models.Order
	feedbacks []models.Feedback
}

func newFakeOrderStore(carts *fakeSelectionStore) *fakeOrderStore {
	return &fakeOrderStore{carts: carts, orders: map[string]*models.Order{}}
}

func (f *fakeOrderStore) PlaceOrder(_ context.Context, order *models.Order, cartIDs []string) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts.mu.Lock()
	for _, id := range cartIDs {
		delete(f.carts.carts, id)
	}
	f.carts.mu.Unlock()
	id := primitive.NewObjectID()
	order.ID = id
	f.orders[id.Hex()] = order
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (f *fakeOrderStore) ListOrders(_ context.Context, email string, asSeller bool) ([]models.OrderSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.OrderSummary
	for _, o := range f.orders {
		match := o.Email == email
		if asSeller {
			match = o.SellerEmail == email
		}
		if match {
			out = append(out, models.OrderSummary{
				ID:            o.ID,
				TransactionID: o.TransactionID,
				Total:         o.Total,
				OrderID:       o.OrderID,
				Status:        o.Status,
				Date:          o.Date,
				EstimatedDate: o.EstimatedDate,
				IsFeedback:    o.IsFeedback,
				CartItems:     o.CartItems,
			})
		}
	}
	return out, nil
}

func (f *fakeOrderStore) AdvanceStatus(_ context.Context, id string, claimed models.OrderStatus) (models.OrderStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return "", store.ErrNotFound
	}
	if claimed != "" && claimed != order.Status {
		return "", store.ErrStaleStatus
	}
	next, err := statemachine.Next(order.Status)
	if err != nil {
		return "", err
	}
	order.Status = next
	return next, nil
}

func (f *fakeOrderStore) CancelWithFeedback(_ context.Context, id string, fb models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return store.ErrNotFound
	}
	if !statemachine.CanCancel(order.Status) {
		return statemachine.ErrInvalidTransition
	}
	fb.Cancel = true
	f.feedbacks = append(f.feedbacks, fb)
	order.Status = models.StatusCancelled
	return nil
}

// fakeFeedbackStore records the filter it was called with and serves canned
// results.
type fakeFeedbackStore struct {
	lastFilter store.FeedbackFilter
	feedbacks  []models.Feedback
	stats      *models.SellerStats
	catStats   []models.CategoryStat
}

func (f *fakeFeedbackStore) ListFeedback(_ context.Context, filter store.FeedbackFilter) ([]models.Feedback, error) {
	f.lastFilter = filter
	return f.feedbacks, nil
}

func (f *fakeFeedbackStore) RecordFeedback(_ context.Context, _ string, fb models.Feedback) (*mongo.InsertOneResult, error) {
	f.feedbacks = append(f.feedbacks, fb)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeFeedbackStore) DeleteFeedback(_ context.Context, _ string) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeFeedbackStore) SellerStats(_ context.Context, _ string) (*models.SellerStats, error) {
	return f.stats, nil
}

func (f *fakeFeedbackStore) OrderStatsByCategory(_ context.Context, _ string) ([]models.CategoryStat, error) {
	return f.catStats, nil
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/carts-favorite", h.AddSelection)
	r.GET("/carts-favorite/:email", h.ListSelections)
	r.POST("/move-carts-favorite/:id", h.MoveSelection)
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders/:email", h.ListOrders)
	r.PATCH("/orders/:id", h.AdvanceStatus)
	r.DELETE("/orders/:id", h.CancelOrder)
	r.GET("/feedbacks", h.ListFeedback)
	r.GET("/seller/stats/:email", h.SellerStats)
	return r
}
