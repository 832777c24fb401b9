package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseMenuFilterPriceBounds(t *testing.T) {
	tests := []struct {
		name      string
		min, max  string
		wantRange bool
	}{
		{"both numeric", "5", "20", true},
		{"decimal bounds", "5.5", "19.99", true},
		{"min not numeric", "cheap", "20", false},
		{"max not numeric", "5", "expensive", false},
		{"both empty", "", "", false},
		{"only min given", "5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseMenuFilter("", "", tt.min, tt.max)
			if tt.wantRange {
				require.NotNil(t, f.MinPrice)
				require.NotNil(t, f.MaxPrice)
			} else {
				assert.Nil(t, f.MinPrice)
				assert.Nil(t, f.MaxPrice)
			}
		})
	}
}

func TestMenuFilterQuery(t *testing.T) {
	t.Run("category narrows the query", func(t *testing.T) {
		f := ParseMenuFilter("pizza", "", "", "")
		q := f.Query("chef@x.com")
		assert.Equal(t, "chef@x.com", q["email"])
		assert.Equal(t, "pizza", q["category"])
	})

	t.Run("popular pseudo-category applies no narrowing", func(t *testing.T) {
		f := ParseMenuFilter("popular", "", "", "")
		q := f.Query("chef@x.com")
		_, ok := q["category"]
		assert.False(t, ok)
	})

	t.Run("empty category applies no narrowing", func(t *testing.T) {
		q := ParseMenuFilter("", "", "", "").Query("chef@x.com")
		_, ok := q["category"]
		assert.False(t, ok)
	})

	t.Run("price range uses strict bounds", func(t *testing.T) {
		f := ParseMenuFilter("", "", "5", "20")
		q := f.Query("chef@x.com")
		require.Contains(t, q, "price")
		price := q["price"].(bson.M)
		assert.Equal(t, 5.0, price["$gt"])
		assert.Equal(t, 20.0, price["$lt"])
	})

	t.Run("unparsable bound skips the range entirely", func(t *testing.T) {
		q := ParseMenuFilter("", "", "abc", "20").Query("chef@x.com")
		_, ok := q["price"]
		assert.False(t, ok)
	})
}

func TestMenuFilterSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, ParseMenuFilter("", "", "", "").Sort(),
		"default sort is price descending")
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, ParseMenuFilter("", "asc", "", "").Sort())
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, ParseMenuFilter("", "desc", "", "").Sort())
}

func TestFeedbackFilterMode(t *testing.T) {
	assert.Equal(t, FeedbackBySeller, FeedbackFilter{SellerEmail: "s@x.com"}.Mode())
	assert.Equal(t, FeedbackByMenu, FeedbackFilter{MenuID: "m1"}.Mode())
	assert.Equal(t, FeedbackPaged, FeedbackFilter{Page: 2, Size: 10}.Mode())
	assert.Equal(t, FeedbackBySeller, FeedbackFilter{SellerEmail: "s@x.com", MenuID: "m1"}.Mode(),
		"seller filter takes precedence over menu filter")
}

func TestParseDestination(t *testing.T) {
	for _, q := range []string{"carts", "cart"} {
		d, err := ParseDestination(q)
		require.NoError(t, err)
		assert.Equal(t, DestCart, d)
	}
	for _, q := range []string{"favorites", "favorite"} {
		d, err := ParseDestination(q)
		require.NoError(t, err)
		assert.Equal(t, DestFavorite, d)
	}
	_, err := ParseDestination("wishlist")
	assert.Error(t, err)

	assert.Equal(t, DestFavorite, DestCart.Opposite())
	assert.Equal(t, DestCart, DestFavorite.Opposite())
}
