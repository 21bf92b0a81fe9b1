package handlers

//go:generate mockgen -source=compatibility.go -destination=compatibility_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gearted/gearted-backend/internal/besteffort"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

// CompatibilityCachePrefix is the cache namespace of every compatibility read.
const CompatibilityCachePrefix = "compatibility"

const sessionHeader = "X-Session-ID"

// CompatibilityLooker answers pairwise compatibility questions.
type CompatibilityLooker interface {
	Lookup(ctx context.Context, idA, idB int64, origin services.LookupOrigin) (*models.Verdict, error)
}

// CompatibleLister lists equipment compatible with an item.
type CompatibleLister interface {
	CompatibleEquipment(ctx context.Context, equipmentID int64, categoryID *int64) ([]models.CompatibleItem, error)
}

// RuleAdder stores new compatibility rules.
type RuleAdder interface {
	AddRule(ctx context.Context, rule models.NewRule) (*models.RuleDB, error)
}

// CacheInvalidator drops cached responses by key prefix.
type CacheInvalidator interface {
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

// NewCompatibilityHandler returns an HTTP handler answering whether two items fit together.
// @Summary Check compatibility
// @Description Returns the stored verdict for an unordered pair of equipment, or an UNKNOWN verdict when no rule exists. Responses are cached.
// @Tags compatibility
// @Produce json
// @Param idA path int true "First equipment id"
// @Param idB path int true "Second equipment id"
// @Param noCache query bool false "Bypass the response cache"
// @Param X-Session-ID header string false "Client session for analytics"
// @Success 200 {object} models.Verdict
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Equipment not found"
// @Router /compatibility/{idA}/{idB} [get]
func NewCompatibilityHandler(svc CompatibilityLooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idA, okA := parseID(chi.URLParam(r, "idA"))
		idB, okB := parseID(chi.URLParam(r, "idB"))
		if !okA || !okB {
			writeError(w, http.StatusBadRequest, "equipment ids must be positive integers")
			return
		}

		origin := services.LookupOrigin{SessionID: r.Header.Get(sessionHeader)}
		if identity, ok := middlewares.IdentityFromContext(r.Context()); ok {
			userID := identity.UserID.String()
			origin.UserID = &userID
		}

		verdict, err := svc.Lookup(r.Context(), idA, idB, origin)
		if err != nil {
			writeServiceError(w, err, "compatibility_lookup")
			return
		}

		writeJSON(w, http.StatusOK, verdict)
	}
}

// CompatibleListResponse lists equipment compatible with an item.
// swagger:model CompatibleListResponse
type CompatibleListResponse struct {
	Count     int                     `json:"count"`
	Equipment []models.CompatibleItem `json:"equipment"`
}

// NewCompatibleEquipmentHandler returns an HTTP handler listing equipment compatible with an item.
// @Summary List compatible equipment
// @Tags compatibility
// @Produce json
// @Param equipmentId path int true "Equipment id"
// @Param category query int false "Restrict to a category"
// @Success 200 {object} handlers.CompatibleListResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /compatibility/equipment/{equipmentId} [get]
func NewCompatibleEquipmentHandler(svc CompatibleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		equipmentID, ok := parseID(chi.URLParam(r, "equipmentId"))
		if !ok {
			writeError(w, http.StatusBadRequest, "equipmentId must be a positive integer")
			return
		}

		var categoryID *int64
		if raw := r.URL.Query().Get("category"); raw != "" {
			id, ok := parseID(raw)
			if !ok {
				writeError(w, http.StatusBadRequest, "category must be a positive integer")
				return
			}
			categoryID = &id
		}

		items, err := svc.CompatibleEquipment(r.Context(), equipmentID, categoryID)
		if err != nil {
			writeServiceError(w, err, "compatible_equipment")
			return
		}

		writeJSON(w, http.StatusOK, CompatibleListResponse{Count: len(items), Equipment: items})
	}
}

// AddRuleRequest is the body of a new compatibility rule.
// swagger:model AddRuleRequest
type AddRuleRequest struct {
	SourceID          int64                    `json:"sourceId"`
	TargetID          int64                    `json:"targetId"`
	CompatibilityType models.CompatibilityType `json:"compatibilityType"`
	ConfidenceLevel   models.ConfidenceLevel   `json:"confidenceLevel"`
	Percentage        int                      `json:"percentage"`
	Notes             *string                  `json:"notes"`
	Modification      *string                  `json:"modification"`
}

// NewAddRuleHandler returns an HTTP handler creating a compatibility rule.
// Cached compatibility responses are dropped once the rule is committed.
// @Summary Add a compatibility rule
// @Tags compatibility
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rule body handlers.AddRuleRequest true "Rule"
// @Success 201 {object} models.RuleView
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 403 {object} handlers.ErrorResponse "Admin only"
// @Failure 404 {object} handlers.ErrorResponse "Equipment not found"
// @Failure 409 {object} handlers.ErrorResponse "Rule already exists"
// @Router /compatibility [post]
func NewAddRuleHandler(svc RuleAdder, cache CacheInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddRuleRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rule := models.NewRule{
			SourceID:     req.SourceID,
			TargetID:     req.TargetID,
			Type:         req.CompatibilityType,
			Confidence:   req.ConfidenceLevel,
			Percentage:   req.Percentage,
			Notes:        req.Notes,
			Modification: req.Modification,
		}
		if identity, ok := middlewares.IdentityFromContext(r.Context()); ok {
			rule.CreatedBy = identity.UserID.String()
		}

		stored, err := svc.AddRule(r.Context(), rule)
		if err != nil {
			writeServiceError(w, err, "add_rule")
			return
		}

		if cache != nil {
			prefix := middlewares.CacheKey(CompatibilityCachePrefix, "")
			dbctx.AfterCommit(r.Context(), func(ctx context.Context) {
				besteffort.Do(ctx, "invalidate_compatibility_cache", func(ctx context.Context) error {
					n, err := cache.DeletePrefix(ctx, prefix)
					if err == nil {
						logger.Log.Infow("compatibility cache invalidated", "removed", n)
					}
					return err
				})
			})
		}

		writeJSON(w, http.StatusCreated, stored.View())
	}
}
