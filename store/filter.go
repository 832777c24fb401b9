package store

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// CategoryPopular is a pseudo-category: the frontend sends it for the
// "popular" tab and it must not narrow the query.
const CategoryPopular = "popular"

// MenuFilter is the explicit optional-filter set for menu queries. A nil price
// bound means "not given"; the range applies only when both bounds are set.
type MenuFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	Ascending bool
}

// ParseMenuFilter builds a MenuFilter from raw query parameters. A price bound
// that fails to parse as a number disables range filtering entirely.
func ParseMenuFilter(category, order, minPrice, maxPrice string) MenuFilter {
	f := MenuFilter{Category: category, Ascending: order == "asc"}

	minV, errMin := strconv.ParseFloat(minPrice, 64)
	maxV, errMax := strconv.ParseFloat(maxPrice, 64)
	if errMin == nil && errMax == nil {
		f.MinPrice = &minV
		f.MaxPrice = &maxV
	}
	return f
}

// Query renders the filter into a Mongo query document for the given owner.
func (f MenuFilter) Query(email string) bson.M {
	q := bson.M{"email": email}
	if f.Category != "" && f.Category != CategoryPopular {
		q["category"] = f.Category
	}
	if f.MinPrice != nil && f.MaxPrice != nil {
		// Bounds are exclusive on both ends.
		q["price"] = bson.M{"$gt": *f.MinPrice, "$lt": *f.MaxPrice}
	}
	return q
}

// Sort renders the price sort direction, descending unless asked otherwise.
func (f MenuFilter) Sort() bson.D {
	dir := -1
	if f.Ascending {
		dir = 1
	}
	return bson.D{{Key: "price", Value: dir}}
}

// FeedbackMode selects exactly one of the three feedback listing shapes.
type FeedbackMode int

const (
	FeedbackBySeller FeedbackMode = iota
	FeedbackByMenu
	FeedbackPaged
)

// FeedbackFilter carries the mutually exclusive feedback query parameters.
type FeedbackFilter struct {
	SellerEmail string
	MenuID      string
	Page        int64
	Size        int64
}

// Mode picks the listing shape; the seller filter wins over the menu filter
// when both are present.
func (f FeedbackFilter) Mode() FeedbackMode {
	switch {
	case f.SellerEmail != "":
		return FeedbackBySeller
	case f.MenuID != "":
		return FeedbackByMenu
	default:
		return FeedbackPaged
	}
}
