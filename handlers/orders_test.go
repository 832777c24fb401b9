package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tastytwist-api/models"
	"tastytwist-api/store"
)

func seedCart(t *testing.T, selections *fakeSelectionStore, email string, menuIDs ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(menuIDs))
	for _, menuID := range menuIDs {
		res, err := selections.AddSelection(context.Background(), models.SelectionEntry{
			Email: email, MenuID: menuID, SellerEmail: "chef@x.com", Name: menuID, Price: 10, Count: 1,
		}, store.DestCart)
		require.NoError(t, err)
		ids = append(ids, res.InsertedID.(primitive.ObjectID).Hex())
	}
	return ids
}

func TestPlaceOrderConsumesCartEntries(t *testing.T) {
	selections := newFakeSelectionStore()
	orders := newFakeOrderStore(selections)
	h := &Handler{Selections: selections, Orders: orders}
	r := newTestRouter(h)

	cartIDs := seedCart(t, selections, "a@b.com", "m1", "m2", "m3")

	w := postJSON(t, r, "/orders", PlaceOrderRequest{
		CartID:      cartIDs,
		Email:       "a@b.com",
		SellerEmail: "chef@x.com",
		CartItems: []models.OrderLine{
			{Name: "m1", Price: 10, Count: 1, MenuID: "m1", SellerEmail: "chef@x.com"},
			{Name: "m2", Price: 10, Count: 1, MenuID: "m2", SellerEmail: "chef@x.com"},
			{Name: "m3", Price: 10, Count: 1, MenuID: "m3", SellerEmail: "chef@x.com"},
		},
		Total:         30,
		TransactionID: "tx-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// All three referenced entries are gone and exactly one order exists.
	assert.Empty(t, selections.carts)
	require.Len(t, orders.orders, 1)
	for _, o := range orders.orders {
		assert.Equal(t, models.StatusProcessing, o.Status)
		assert.NotEmpty(t, o.OrderID)
		assert.Len(t, o.CartItems, 3)
		assert.True(t, o.EstimatedDate.After(o.Date))
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	h := &Handler{Orders: newFakeOrderStore(newFakeSelectionStore())}
	r := newTestRouter(h)

	w := postJSON(t, r, "/orders", PlaceOrderRequest{Email: "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func placeTestOrder(t *testing.T, orders *fakeOrderStore, status models.OrderStatus) string {
	t.Helper()
	order := &models.Order{Email: "a@b.com", SellerEmail: "chef@x.com", Status: status, Total: 30}
	res, err := orders.PlaceOrder(context.Background(), order, nil)
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name       string
		current    models.OrderStatus
		claim      string
		wantCode   int
		wantStatus models.OrderStatus
	}{
		{"processing to shipped", models.StatusProcessing, "processing", http.StatusOK, models.StatusShipped},
		{"shipped to delivered", models.StatusShipped, "shipped", http.StatusOK, models.StatusDelivered},
		{"no claim uses stored status", models.StatusProcessing, "", http.StatusOK, models.StatusShipped},
		{"stale claim rejected", models.StatusShipped, "processing", http.StatusConflict, models.StatusShipped},
		{"delivered is terminal", models.StatusDelivered, "delivered", http.StatusUnprocessableEntity, models.StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := newFakeOrderStore(newFakeSelectionStore())
			h := &Handler{Orders: orders}
			r := newTestRouter(h)
			id := placeTestOrder(t, orders, tt.current)

			req := httptest.NewRequest(http.MethodPatch, "/orders/"+id+"?status="+tt.claim, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantStatus, orders.orders[id].Status)
		})
	}
}

func TestCancelOrderKeepsHistoryAndRecordsFeedback(t *testing.T) {
	orders := newFakeOrderStore(newFakeSelectionStore())
	h := &Handler{Orders: orders}
	r := newTestRouter(h)
	id := placeTestOrder(t, orders, models.StatusProcessing)

	req := httptest.NewRequest(http.MethodDelete,
		"/orders/"+id+"?name=Alice&reason=out+of+stock&menuId=m1&sellerEmail=chef@x.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusCancelled, orders.orders[id].Status, "order document is retained")
	require.Len(t, orders.feedbacks, 1)
	fb := orders.feedbacks[0]
	assert.True(t, fb.Cancel)
	assert.Equal(t, "out of stock", fb.Reason)
	assert.Equal(t, "chef@x.com", fb.SellerEmail)
}

func TestCancelDeliveredOrderRejected(t *testing.T) {
	orders := newFakeOrderStore(newFakeSelectionStore())
	h := &Handler{Orders: orders}
	r := newTestRouter(h)
	id := placeTestOrder(t, orders, models.StatusDelivered)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id+"?reason=too+late", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, models.StatusDelivered, orders.orders[id].Status)
	assert.Empty(t, orders.feedbacks)
}

func TestListOrdersByRole(t *testing.T) {
	orders := newFakeOrderStore(newFakeSelectionStore())
	_, err := orders.PlaceOrder(context.Background(), &models.Order{Email: "a@b.com", SellerEmail: "chef@x.com", Status: models.StatusProcessing}, nil)
	require.NoError(t, err)
	_, err = orders.PlaceOrder(context.Background(), &models.Order{Email: "chef@x.com", SellerEmail: "other@x.com", Status: models.StatusProcessing}, nil)
	require.NoError(t, err)

	h := &Handler{Orders: orders}
	r := newTestRouter(h)

	get := func(path string) []models.OrderSummary {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var got []models.OrderSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		return got
	}

	assert.Len(t, get("/orders/chef@x.com?person=seller"), 1, "seller view filters by sellerEmail")
	assert.Len(t, get("/orders/chef@x.com?person=buyer"), 1, "buyer view filters by buyer email")
	assert.Len(t, get("/orders/a@b.com"), 1)
}
