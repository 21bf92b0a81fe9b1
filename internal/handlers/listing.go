package handlers

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListingManager serves the marketplace listing endpoints.
type ListingManager interface {
	Search(ctx context.Context, f models.ListingFilter) ([]models.ListingView, models.Pagination, error)
	Get(ctx context.Context, id, viewerID uuid.UUID) (*models.ListingDB, error)
	Create(ctx context.Context, sellerID uuid.UUID, in models.ListingInput) (*models.ListingDB, error)
	Update(ctx context.Context, sellerID, id uuid.UUID, in models.ListingInput) (*models.ListingDB, error)
	MarkSold(ctx context.Context, sellerID, id uuid.UUID) (*models.ListingDB, error)
	Delete(ctx context.Context, sellerID, id uuid.UUID) error
}

// ListingListResponse is one page of listings.
// swagger:model ListingListResponse
type ListingListResponse struct {
	Listings   []models.ListingView `json:"listings"`
	Pagination models.Pagination    `json:"pagination"`
}

// ListingResponse wraps a single listing.
// swagger:model ListingResponse
type ListingResponse struct {
	Listing models.ListingView `json:"listing"`
}

func optionalFloat(q url.Values, key string) (*float64, bool) {
	raw := q.Get(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// parseListingFilter reads the search query string shared by the public and
// admin listing endpoints.
func parseListingFilter(q url.Values) (models.ListingFilter, string) {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	f := models.ListingFilter{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Condition:   models.Condition(q.Get("condition")),
		Status:      models.ListingStatus(q.Get("status")),
		SortBy:      models.ListingSort(q.Get("sortBy")),
		Ascending:   q.Get("sortOrder") == "asc",
		Page:        page,
		Limit:       limit,
	}

	var ok bool
	if f.MinPrice, ok = optionalFloat(q, "minPrice"); !ok {
		return f, "invalid minPrice"
	}
	if f.MaxPrice, ok = optionalFloat(q, "maxPrice"); !ok {
		return f, "invalid maxPrice"
	}
	if raw := q.Get("isExchangeable"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, "invalid isExchangeable"
		}
		f.IsExchangeable = &v
	}
	if raw := q.Get("sellerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, "invalid sellerId"
		}
		f.SellerID = &id
	}
	return f, ""
}

func listingID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// NewListListingsHandler returns an HTTP handler searching active listings.
// @Summary Search listings
// @Tags listings
// @Produce json
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param search query string false "Title or description fragment"
// @Param category query string false "Category"
// @Param subcategory query string false "Subcategory"
// @Param condition query string false "Condition" Enums(NEW, LIKE_NEW, VERY_GOOD, GOOD, FAIR, FOR_PARTS)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param isExchangeable query bool false "Open to exchange"
// @Param sellerId query string false "Seller id"
// @Param sortBy query string false "Sort column" Enums(createdAt, price, title)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} handlers.ListingListResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /listings [get]
func NewListListingsHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, problem := parseListingFilter(r.URL.Query())
		if problem != "" {
			writeError(w, http.StatusBadRequest, problem)
			return
		}

		listings, pagination, err := svc.Search(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "search_listings")
			return
		}
		writeJSON(w, http.StatusOK, ListingListResponse{Listings: listings, Pagination: pagination})
	}
}

// NewGetListingHandler returns an HTTP handler for a single listing.
// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /listings/{id} [get]
func NewGetListingHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		listing, err := svc.Get(r.Context(), id, identity.UserID)
		if err != nil {
			writeServiceError(w, err, "get_listing")
			return
		}
		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing.View()})
	}
}

// NewCreateListingHandler returns an HTTP handler publishing a listing.
// @Summary Create listing
// @Description Image URLs must come from the caller's own uploads.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ListingInput true "Listing"
// @Success 201 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /listings [post]
func NewCreateListingHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var in models.ListingInput
		if !decodeJSON(r, &in) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		listing, err := svc.Create(r.Context(), identity.UserID, in)
		if err != nil {
			writeServiceError(w, err, "create_listing")
			return
		}
		writeJSON(w, http.StatusCreated, ListingResponse{Listing: listing.View()})
	}
}

// NewUpdateListingHandler returns an HTTP handler editing the caller's listing.
// @Summary Update listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param body body models.ListingInput true "Listing"
// @Success 200 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /listings/{id} [put]
func NewUpdateListingHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		var in models.ListingInput
		if !decodeJSON(r, &in) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		listing, err := svc.Update(r.Context(), identity.UserID, id, in)
		if err != nil {
			writeServiceError(w, err, "update_listing")
			return
		}
		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing.View()})
	}
}

// NewMarkSoldHandler returns an HTTP handler flagging the caller's listing as sold.
// @Summary Mark listing sold
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.ListingResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /listings/{id}/sold [patch]
func NewMarkSoldHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		listing, err := svc.MarkSold(r.Context(), identity.UserID, id)
		if err != nil {
			writeServiceError(w, err, "mark_sold")
			return
		}
		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing.View()})
	}
}

// NewDeleteListingHandler returns an HTTP handler removing the caller's listing.
// @Summary Delete listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /listings/{id} [delete]
func NewDeleteListingHandler(svc ListingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		if err := svc.Delete(r.Context(), identity.UserID, id); err != nil {
			writeServiceError(w, err, "delete_listing")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Listing deleted"})
	}
}
