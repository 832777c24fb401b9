package routes

import (
	"github.com/gin-gonic/gin"

	"tastytwist-api/handlers"
	"tastytwist-api/middleware"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	{
		// Session cookies
		r.POST("/jwt", h.IssueToken)
		r.POST("/logout", h.Logout)

		// Identity
		r.GET("/users/:email", h.GetRole)
		r.PUT("/users/:email", h.UpsertUser)

		// Browsing (no auth needed)
		r.GET("/restaurants", h.ListRestaurants)
		r.GET("/menu/:email", h.GetMenu)
		r.GET("/reviews", h.ListReviews)
		r.GET("/faqs", h.ListFAQs)
		r.GET("/coupons", h.ListCoupons)
		r.GET("/feedbacks", h.ListFeedback)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		// Seller onboarding & admin workflow
		auth.POST("/requested/restaurants", h.SubmitRestaurantApplication)
		auth.PATCH("/restaurants/:id", h.UpdateRestaurant)
		auth.GET("/seller-request", h.ListSellerRequests)
		auth.PATCH("/user/status/:email", h.SetUserStatus)

		// Menu management
		auth.POST("/menu", h.AddMenuItem)
		auth.PATCH("/menu/edit/:id", h.EditMenuItem)
		auth.DELETE("/menu/:id", h.DeleteMenuItem)

		// Carts & favorites
		auth.POST("/carts-favorite", h.AddSelection)
		auth.GET("/carts-favorite/:email", h.ListSelections)
		auth.DELETE("/carts-favorite/:id", h.DeleteSelection)
		auth.POST("/move-carts-favorite/:id", h.MoveSelection)
		auth.PATCH("/carts/:id", h.UpdateCartCount)
		auth.GET("/select-carts/:ids", h.ListSelectedCarts)

		// Orders
		auth.GET("/orders/:email", h.ListOrders)
		auth.POST("/orders", h.PlaceOrder)
		auth.PATCH("/orders/:id", h.AdvanceStatus)
		auth.DELETE("/orders/:id", h.CancelOrder)

		// Addresses
		auth.GET("/address/:email", h.GetAddress)
		auth.POST("/address", h.SaveAddress)
		auth.PUT("/address/:email", h.ReplaceAddress)
		auth.PATCH("/email/:email", h.UpdateAddressEmail)

		// Feedback & stats
		auth.POST("/feedback/:id", h.RecordFeedback)
		auth.DELETE("/delete-feedback/:id", h.DeleteFeedback)
		auth.GET("/seller/stats/:email", h.SellerStats)
		auth.GET("/order-stats/:email", h.OrderStatsByCategory)

		// Coupons (management)
		auth.POST("/coupons", h.CreateCoupon)
		auth.PATCH("/coupons/:id", h.EditCoupon)

		// Integrations
		auth.POST("/create-payment-intent", h.CreatePaymentIntent)
		auth.POST("/send-mail", h.SendMail)
	}
}
