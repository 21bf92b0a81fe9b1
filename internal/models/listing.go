package models

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Condition grades the wear of a listed item.
type Condition string

// Listing conditions, best first
const (
	ConditionNew      Condition = "NEW"
	ConditionLikeNew  Condition = "LIKE_NEW"
	ConditionVeryGood Condition = "VERY_GOOD"
	ConditionGood     Condition = "GOOD"
	ConditionFair     Condition = "FAIR"
	ConditionForParts Condition = "FOR_PARTS"
)

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionVeryGood, ConditionGood, ConditionFair, ConditionForParts:
		return true
	}
	return false
}

// ListingStatus is the moderation state of a listing.
type ListingStatus string

// Moderation states
const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingSuspended ListingStatus = "SUSPENDED"
)

// Valid reports whether s is a known status.
func (s ListingStatus) Valid() bool {
	return s == ListingActive || s == ListingSuspended
}

// StringList maps a Postgres text[] column.
type StringList []string

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var out []string
	if err := pgtype.NewMap().SQLScanner(&out).Scan(src); err != nil {
		return fmt.Errorf("scan text[]: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// Value implements driver.Valuer using the text array literal.
func (l StringList) Value() (driver.Value, error) {
	items := []string(l)
	if items == nil {
		items = []string{}
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, items, nil)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// ListingDB represents a listing record in the database
type ListingDB struct {
	ID             uuid.UUID      `db:"id"`
	SellerID       uuid.UUID      `db:"seller_id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Price          float64        `db:"price"`
	Condition      Condition      `db:"condition"`
	Category       string         `db:"category"`
	Subcategory    sql.NullString `db:"subcategory"`
	Tags           StringList     `db:"tags"`
	ImageURLs      StringList     `db:"image_urls"`
	IsExchangeable bool           `db:"is_exchangeable"`
	IsSold         bool           `db:"is_sold"`
	Status         ListingStatus  `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	SellerUsername     sql.NullString `db:"seller_username"`
	SellerProfileImage sql.NullString `db:"seller_profile_image"`
}

// View builds the public representation of the listing.
func (l *ListingDB) View() ListingView {
	v := ListingView{
		ID:             l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Price:          l.Price,
		Condition:      l.Condition,
		Category:       l.Category,
		Tags:           nonNil(l.Tags),
		ImageURLs:      nonNil(l.ImageURLs),
		IsExchangeable: l.IsExchangeable,
		IsSold:         l.IsSold,
		Status:         l.Status,
		Seller:         SellerView{ID: l.SellerID, Username: l.SellerUsername.String},
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
	if l.Subcategory.Valid {
		v.Subcategory = &l.Subcategory.String
	}
	if l.SellerProfileImage.Valid {
		v.Seller.ProfileImage = &l.SellerProfileImage.String
	}
	return v
}

func nonNil(l StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}

// SellerView is the public part of a listing's seller.
type SellerView struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	ProfileImage *string   `json:"profileImage"`
}

// ListingView is the listing representation returned by the API.
// swagger:model ListingView
type ListingView struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	Condition      Condition     `json:"condition"`
	Category       string        `json:"category"`
	Subcategory    *string       `json:"subcategory"`
	Tags           []string      `json:"tags"`
	ImageURLs      []string      `json:"imageUrls"`
	IsExchangeable bool          `json:"isExchangeable"`
	IsSold         bool          `json:"isSold"`
	Status         ListingStatus `json:"status"`
	Seller         SellerView    `json:"seller"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ListingInput holds the seller-editable fields of a listing.
type ListingInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Price          *float64   `json:"price"`
	Condition      Condition  `json:"condition"`
	Category       string     `json:"category"`
	Subcategory    *string    `json:"subcategory"`
	Tags           StringList `json:"tags"`
	ImageURLs      StringList `json:"imageUrls"`
	IsExchangeable bool       `json:"isExchangeable"`
}

// ListingSort names a sortable listing column.
type ListingSort string

// Sortable columns
const (
	SortCreatedAt ListingSort = "createdAt"
	SortPrice     ListingSort = "price"
	SortTitle     ListingSort = "title"
)

// ListingFilter narrows the public and admin listing searches.
type ListingFilter struct {
	Search         string
	Category       string
	Subcategory    string
	Condition      Condition
	MinPrice       *float64
	MaxPrice       *float64
	IsExchangeable *bool
	SellerID       *uuid.UUID
	Status         ListingStatus
	IncludeSold    bool
	SortBy         ListingSort
	Ascending      bool
	Page           int
	Limit          int
}
