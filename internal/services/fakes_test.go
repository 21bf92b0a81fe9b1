package services_test

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
)

// memoryUsers is an in-memory user store honouring the unique columns.
type memoryUsers struct {
	mu    sync.Mutex
	users []*models.UserDB
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{}
}

func (m *memoryUsers) find(match func(u *models.UserDB) bool) *models.UserDB {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (m *memoryUsers) suspend(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserID == id {
			u.IsSuspended = true
		}
	}
}

func (m *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (*models.UserDB, error) {
	return m.find(func(u *models.UserDB) bool { return u.UserID == id }), nil
}

func (m *memoryUsers) GetByUsernameOrEmail(_ context.Context, username, email string) (*models.UserDB, error) {
	email = strings.ToLower(email)
	return m.find(func(u *models.UserDB) bool { return u.Username == username || u.Email == email }), nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.UserDB, error) {
	email = strings.ToLower(email)
	return m.find(func(u *models.UserDB) bool { return u.Email == email }), nil
}

func (m *memoryUsers) GetByProviderID(_ context.Context, p models.Provider, id string) (*models.UserDB, error) {
	return m.find(func(u *models.UserDB) bool {
		got, ok := u.ProviderID(p)
		return ok && got == id
	}), nil
}

func (m *memoryUsers) ExistsUsername(_ context.Context, username string) (bool, error) {
	return m.find(func(u *models.UserDB) bool { return u.Username == username }) != nil, nil
}

func (m *memoryUsers) Create(_ context.Context, nu models.NewUser) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == nu.Username || u.Email == nu.Email {
			return nil, dbctx.ErrUniqueViolation
		}
	}

	u := &models.UserDB{
		UserID:          uuid.New(),
		Username:        nu.Username,
		Email:           nu.Email,
		Provider:        nu.Provider,
		IsEmailVerified: nu.IsEmailVerified,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if nu.PasswordHash != nil {
		u.PasswordHash = sql.NullString{String: *nu.PasswordHash, Valid: true}
	}
	if nu.ProfileImage != nil {
		u.ProfileImage = sql.NullString{String: *nu.ProfileImage, Valid: true}
	}
	if nu.ProviderID != nil {
		setProviderID(u, nu.Provider, *nu.ProviderID)
	}
	m.users = append(m.users, u)

	cp := *u
	return &cp, nil
}

func (m *memoryUsers) LinkProvider(_ context.Context, id uuid.UUID, p models.Provider, providerID string, image *string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserID != id {
			continue
		}
		setProviderID(u, p, providerID)
		u.Provider = p
		u.IsEmailVerified = true
		if !u.ProfileImage.Valid && image != nil {
			u.ProfileImage = sql.NullString{String: *image, Valid: true}
		}
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func setProviderID(u *models.UserDB, p models.Provider, id string) {
	v := sql.NullString{String: id, Valid: true}
	switch p {
	case models.ProviderGoogle:
		u.GoogleID = v
	case models.ProviderFacebook:
		u.FacebookID = v
	case models.ProviderInstagram:
		u.InstagramID = v
	}
}

// memoryCatalogue stores equipment and rules the way the Postgres schema
// does, including the unordered-pair unique index.
type memoryCatalogue struct {
	mu        sync.Mutex
	equipment map[int64]models.EquipmentDB
	rules     []models.RuleDB
	events    []models.AnalyticsEvent
	nextID    int64
}

func newMemoryCatalogue(items ...models.EquipmentDB) *memoryCatalogue {
	c := &memoryCatalogue{equipment: map[int64]models.EquipmentDB{}}
	for _, it := range items {
		c.equipment[it.ID] = it
	}
	return c
}

func (c *memoryCatalogue) GetByID(_ context.Context, id int64) (*models.EquipmentDB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.equipment[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func samePair(r models.RuleDB, a, b int64) bool {
	return (r.SourceEquipmentID == a && r.TargetEquipmentID == b) ||
		(r.SourceEquipmentID == b && r.TargetEquipmentID == a)
}

func (c *memoryCatalogue) FindRulesForPair(_ context.Context, a, b int64) ([]models.RuleWithEquipmentDB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.RuleWithEquipmentDB
	for _, r := range c.rules {
		if !samePair(r, a, b) {
			continue
		}
		s, t := c.equipment[r.SourceEquipmentID], c.equipment[r.TargetEquipmentID]
		out = append(out, models.RuleWithEquipmentDB{
			RuleDB:      r,
			SourceName:  s.Name,
			SourceModel: s.Model,
			SourceImage: s.ImageURL,
			TargetName:  t.Name,
			TargetModel: t.Model,
			TargetImage: t.ImageURL,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *memoryCatalogue) ExistsForPair(ctx context.Context, a, b int64) (bool, error) {
	rules, _ := c.FindRulesForPair(ctx, a, b)
	return len(rules) > 0, nil
}

func (c *memoryCatalogue) ListCompatible(_ context.Context, id int64, category *int64) ([]models.CompatibleItemDB, error) {
	return nil, nil
}

func (c *memoryCatalogue) Insert(_ context.Context, nr models.NewRule) (*models.RuleDB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rules {
		if samePair(r, nr.SourceID, nr.TargetID) {
			return nil, dbctx.ErrUniqueViolation
		}
	}
	c.nextID++
	r := models.RuleDB{
		ID:                c.nextID,
		SourceEquipmentID: nr.SourceID,
		TargetEquipmentID: nr.TargetID,
		CompatibilityType: nr.Type,
		ConfidenceLevel:   nr.Confidence,
		Percentage:        nr.Percentage,
		SourceType:        nr.OriginTag,
		CreatedBy:         nr.CreatedBy,
	}
	c.rules = append(c.rules, r)
	return &r, nil
}

func (c *memoryCatalogue) Touch(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rules {
		if c.rules[i].ID == id {
			c.rules[i].CheckCount++
		}
	}
	return nil
}

func (c *memoryCatalogue) Record(_ context.Context, e models.AnalyticsEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}
