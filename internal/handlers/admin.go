package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserAdministrator serves the moderation endpoints.
type UserAdministrator interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserView, models.Pagination, error)
	SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error)
	SuspendUser(ctx context.Context, actorID, userID uuid.UUID, reason string) (*models.UserDB, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
	Stats(ctx context.Context) (*models.Stats, error)
}

// ListingModerator serves the listing moderation endpoints.
type ListingModerator interface {
	AdminSearch(ctx context.Context, f models.ListingFilter) ([]models.ListingView, models.Pagination, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.ListingDB, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

// UserListResponse is one page of users.
// swagger:model UserListResponse
type UserListResponse struct {
	Users      []models.UserView `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// NewListUsersHandler returns an HTTP handler listing users page by page.
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param search query string false "Username or email fragment"
// @Success 200 {object} handlers.UserListResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/users [get]
func NewListUsersHandler(svc UserAdministrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		users, pagination, err := svc.ListUsers(r.Context(), models.UserFilter{
			Search: q.Get("search"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			writeServiceError(w, err, "list_users")
			return
		}

		writeJSON(w, http.StatusOK, UserListResponse{Users: users, Pagination: pagination})
	}
}

// SetAdminRequest toggles the admin flag.
// swagger:model SetAdminRequest
type SetAdminRequest struct {
	// required: true
	IsAdmin *bool `json:"isAdmin"`
}

// NewSetAdminHandler returns an HTTP handler granting or revoking admin rights.
// @Summary Set admin flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param body body handlers.SetAdminRequest true "New flag"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/users/{id}/admin [patch]
func NewSetAdminHandler(svc UserAdministrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req SetAdminRequest
		if !decodeJSON(r, &req) || req.IsAdmin == nil {
			writeError(w, http.StatusBadRequest, "isAdmin is required")
			return
		}

		user, err := svc.SetAdmin(r.Context(), userID, *req.IsAdmin)
		if err != nil {
			writeServiceError(w, err, "set_admin")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user.View()})
	}
}

// NewStatsHandler returns an HTTP handler with dashboard counters.
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/stats [get]
func NewStatsHandler(svc UserAdministrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeServiceError(w, err, "stats")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// SuspendUserRequest carries the moderator's reason.
// swagger:model SuspendUserRequest
type SuspendUserRequest struct {
	Reason string `json:"reason"`
}

// NewSuspendUserHandler returns an HTTP handler suspending a user and their listings.
// @Summary Suspend user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param body body handlers.SuspendUserRequest false "Reason"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/users/{id}/suspend [post]
func NewSuspendUserHandler(svc UserAdministrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middlewares.IdentityFromContext(r.Context())
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req SuspendUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.SuspendUser(r.Context(), actor.UserID, userID, req.Reason)
		if err != nil {
			writeServiceError(w, err, "suspend_user")
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user.View()})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and their listings.
// @Summary Delete user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/users/{id} [delete]
func NewDeleteUserHandler(svc UserAdministrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middlewares.IdentityFromContext(r.Context())
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		if err := svc.DeleteUser(r.Context(), actor.UserID, userID); err != nil {
			writeServiceError(w, err, "delete_user")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
	}
}

// NewAdminListListingsHandler returns an HTTP handler listing listings in any state.
// @Summary List listings for moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param search query string false "Title or description fragment"
// @Param status query string false "Moderation status" Enums(ACTIVE, SUSPENDED)
// @Param category query string false "Category"
// @Param sellerId query string false "Seller id"
// @Success 200 {object} handlers.ListingListResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/listings [get]
func NewAdminListListingsHandler(svc ListingModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, problem := parseListingFilter(r.URL.Query())
		if problem != "" {
			writeError(w, http.StatusBadRequest, problem)
			return
		}

		listings, pagination, err := svc.AdminSearch(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "admin_list_listings")
			return
		}
		writeJSON(w, http.StatusOK, ListingListResponse{Listings: listings, Pagination: pagination})
	}
}

// SetListingStatusRequest approves or suspends a listing.
// swagger:model SetListingStatusRequest
type SetListingStatusRequest struct {
	// required: true
	Status models.ListingStatus `json:"status" enums:"ACTIVE,SUSPENDED"`
}

// NewSetListingStatusHandler returns an HTTP handler moderating a listing.
// @Summary Approve or suspend listing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param body body handlers.SetListingStatusRequest true "New status"
// @Success 200 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/listings/{id}/status [patch]
func NewSetListingStatusHandler(svc ListingModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		var req SetListingStatusRequest
		if !decodeJSON(r, &req) || req.Status == "" {
			writeError(w, http.StatusBadRequest, "status is required")
			return
		}

		listing, err := svc.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			writeServiceError(w, err, "set_listing_status")
			return
		}
		writeJSON(w, http.StatusOK, ListingResponse{Listing: listing.View()})
	}
}

// NewAdminDeleteListingHandler returns an HTTP handler removing any listing.
// @Summary Delete listing as moderator
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/listings/{id} [delete]
func NewAdminDeleteListingHandler(svc ListingModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := listingID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}

		if err := svc.AdminDelete(r.Context(), id); err != nil {
			writeServiceError(w, err, "admin_delete_listing")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Listing deleted"})
	}
}
