package handlers

import (
	"errors"
	"net/http"

	"tastytwist-api/gateway"
	"tastytwist-api/store"
)

// Handler carries every dependency the HTTP layer needs. All of them are
// interfaces so tests can swap in fakes.
type Handler struct {
	Users      store.UserStore
	Catalog    store.CatalogStore
	Selections store.SelectionStore
	Orders     store.OrderStore
	Feedback   store.FeedbackStore
	Extras     store.ExtrasStore
	Payments   gateway.PaymentGateway
	Mail       gateway.MailSender
}

func New(s *store.Mongo, payments gateway.PaymentGateway, mail gateway.MailSender) *Handler {
	return &Handler{
		Users:      s,
		Catalog:    s,
		Selections: s,
		Orders:     s,
		Feedback:   s,
		Extras:     s,
		Payments:   payments,
		Mail:       mail,
	}
}

// storeErrStatus maps store sentinels onto HTTP status codes; anything
// unrecognized is a server fault with the caller-provided message.
func storeErrStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, store.ErrBadID):
		return http.StatusBadRequest, "Malformed id"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, store.ErrDuplicateCartEntry):
		return http.StatusConflict, store.ErrDuplicateCartEntry.Error()
	case errors.Is(err, store.ErrStaleStatus):
		return http.StatusConflict, store.ErrStaleStatus.Error()
	default:
		return http.StatusInternalServerError, fallback
	}
}
