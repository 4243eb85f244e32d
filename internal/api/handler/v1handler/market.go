package v1handler

import (
	"net/http"
	"sattva/internal/marketplace"
	"sattva/pkg/domain"
)

// ListProducts lists the products of the marketplace.
func (h Handler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	products, err := h.deps.Marketplace.Products(r.Context(), marketplace.ProductQuery{
		Search:       q.Get("search"),
		Region:       q.Get("region"),
		Herb:         q.Get("herb"),
		VerifiedOnly: q.Get("verified") == "true",
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	if products == nil {
		products = []domain.Product{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"products": products, "total": len(products)})

	return nil
}

// GetProduct returns a product with the provenance of its batch.
func (h Handler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.deps.Marketplace.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, product)

	return nil
}

// ListOrders lists the orders of the caller.
func (h Handler) ListOrders(w http.ResponseWriter, r *http.Request) error {
	orders, err := h.deps.Marketplace.Orders(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"orders": orders})

	return nil
}

// PlaceOrder orders a product for the caller.
func (h Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) error {
	var req marketplace.NewOrder
	if err := decode(w, r, &req); err != nil {
		return err
	}

	order, err := h.deps.Marketplace.PlaceOrder(r.Context(), GetUserIDFromContext(r.Context()), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, map[string]any{"order": order})

	return nil
}

// GetProfile returns the consumer profile of the caller.
func (h Handler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	profile, err := h.deps.Marketplace.Profile(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"profile": profile})

	return nil
}

// UpdateProfile replaces the editable fields of the caller's profile.
func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	var req marketplace.ProfileUpdate
	if err := decode(w, r, &req); err != nil {
		return err
	}

	profile, err := h.deps.Marketplace.UpdateProfile(r.Context(), GetUserIDFromContext(r.Context()), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"profile": profile})

	return nil
}
