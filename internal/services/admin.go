package services

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 10000
	recentUserCount = 5
)

// clampPage bounds page and limit so the resulting offset stays small.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// AdminPolicy decides whether an identity holds admin rights.
// The stored admin flag is authoritative; the email override list only adds.
type AdminPolicy struct {
	overrides map[string]struct{}
}

// NewAdminPolicy creates a policy with an optional email override list.
func NewAdminPolicy(overrideEmails []string) *AdminPolicy {
	overrides := make(map[string]struct{}, len(overrideEmails))
	for _, email := range overrideEmails {
		if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
			overrides[e] = struct{}{}
		}
	}
	return &AdminPolicy{overrides: overrides}
}

// IsAdmin reports whether identity may use admin endpoints.
func (p *AdminPolicy) IsAdmin(identity models.Identity) bool {
	if identity.IsAdmin {
		return true
	}
	_, ok := p.overrides[strings.ToLower(identity.Email)]
	return ok
}

// AdminUserStore lists and updates users for moderation.
type AdminUserStore interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, error)
	Count(ctx context.Context, search string) (int64, error)
	SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error)
	Suspend(ctx context.Context, userID uuid.UUID, reason string) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminListingStore counts listings and suspends a seller's listings.
type AdminListingStore interface {
	Count(ctx context.Context) (int64, error)
	SuspendBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

// Counter counts rows of a catalogue table.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// AdminService serves the moderation endpoints.
type AdminService struct {
	users     AdminUserStore
	listings  AdminListingStore
	equipment Counter
	rules     Counter
}

// NewAdminService creates a new AdminService.
func NewAdminService(users AdminUserStore, listings AdminListingStore, equipment Counter, rules Counter) *AdminService {
	return &AdminService{
		users:     users,
		listings:  listings,
		equipment: equipment,
		rules:     rules,
	}
}

// NormalizeFilter clamps page and limit into their allowed ranges.
func NormalizeFilter(f models.UserFilter) models.UserFilter {
	f.Page, f.Limit = clampPage(f.Page, f.Limit)
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// ListUsers returns one page of users with pagination counters.
func (svc *AdminService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserView, models.Pagination, error) {
	filter = NormalizeFilter(filter)

	var (
		users []models.UserDB
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = svc.users.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = svc.users.Count(gctx, filter.Search)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, models.Pagination{}, err
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}
	return views, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// SetAdmin grants or revokes admin rights.
func (svc *AdminService) SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error) {
	user, err := svc.users.SetAdmin(ctx, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SuspendUser blocks a user from signing in and suspends their listings.
// Admins cannot suspend themselves.
func (svc *AdminService) SuspendUser(ctx context.Context, actorID, userID uuid.UUID, reason string) (*models.UserDB, error) {
	if actorID == userID {
		return nil, fmt.Errorf("%w: cannot suspend your own account", ErrInvalidField)
	}
	user, err := svc.users.Suspend(ctx, userID, strings.TrimSpace(reason))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	n, err := svc.listings.SuspendBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("user suspended", "user_id", userID, "by", actorID, "listings_suspended", n)
	return user, nil
}

// DeleteUser removes a user. Their listings go with them.
func (svc *AdminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return fmt.Errorf("%w: cannot delete your own account", ErrInvalidField)
	}
	deleted, err := svc.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	logger.Log.Infow("user deleted", "user_id", userID, "by", actorID)
	return nil
}

// Stats gathers the dashboard counters.
func (svc *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Users, err = svc.users.Count(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		stats.Listings, err = svc.listings.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Equipment, err = svc.equipment.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Rules, err = svc.rules.Count(gctx)
		return err
	})
	g.Go(func() error {
		recent, err := svc.users.List(gctx, models.UserFilter{Page: 1, Limit: recentUserCount})
		if err != nil {
			return err
		}
		stats.RecentUsers = make([]models.UserView, 0, len(recent))
		for i := range recent {
			stats.RecentUsers = append(stats.RecentUsers, recent[i].View())
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
