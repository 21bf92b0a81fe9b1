package services

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gearted/gearted-backend/internal/besteffort"
	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	maxTitleLength   = 120
	maxListingImages = 10
	maxListingTags   = 20
	maxListingPrice  = 99_999_999.99
)

// ListingReader reads listings.
type ListingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
	Search(ctx context.Context, f models.ListingFilter) ([]models.ListingDB, error)
	CountMatching(ctx context.Context, f models.ListingFilter) (int64, error)
}

// ListingWriter writes listings. Methods return nil when the listing is absent.
type ListingWriter interface {
	Create(ctx context.Context, sellerID uuid.UUID, in models.ListingInput) (*models.ListingDB, error)
	Update(ctx context.Context, id uuid.UUID, in models.ListingInput) (*models.ListingDB, error)
	MarkSold(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.ListingDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ListingImages checks and removes images uploaded by a seller.
type ListingImages interface {
	OwnsImage(userID uuid.UUID, imageURL string) bool
	Delete(ctx context.Context, userID uuid.UUID, imageURL string) error
}

// ListingService manages marketplace listings.
type ListingService struct {
	reader ListingReader
	writer ListingWriter
	images ListingImages
}

// NewListingService creates a new ListingService.
func NewListingService(reader ListingReader, writer ListingWriter, images ListingImages) *ListingService {
	return &ListingService{reader: reader, writer: writer, images: images}
}

// NormalizeListingFilter trims free text and clamps paging.
func NormalizeListingFilter(f models.ListingFilter) models.ListingFilter {
	f.Page, f.Limit = clampPage(f.Page, f.Limit)
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	f.Subcategory = strings.TrimSpace(f.Subcategory)
	if !f.Condition.Valid() {
		f.Condition = ""
	}
	if !f.Status.Valid() {
		f.Status = ""
	}
	return f
}

// Search returns one page of active, unsold listings.
func (svc *ListingService) Search(ctx context.Context, f models.ListingFilter) ([]models.ListingView, models.Pagination, error) {
	f.Status = models.ListingActive
	f.IncludeSold = false
	return svc.search(ctx, f)
}

// AdminSearch returns one page of listings in any state.
func (svc *ListingService) AdminSearch(ctx context.Context, f models.ListingFilter) ([]models.ListingView, models.Pagination, error) {
	f.IncludeSold = true
	return svc.search(ctx, f)
}

func (svc *ListingService) search(ctx context.Context, f models.ListingFilter) ([]models.ListingView, models.Pagination, error) {
	f = NormalizeListingFilter(f)
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, models.Pagination{}, fmt.Errorf("%w: minPrice exceeds maxPrice", ErrInvalidField)
	}

	var (
		listings []models.ListingDB
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listings, err = svc.reader.Search(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = svc.reader.CountMatching(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, models.Pagination{}, err
	}

	views := make([]models.ListingView, 0, len(listings))
	for i := range listings {
		views = append(views, listings[i].View())
	}
	return views, models.NewPagination(f.Page, f.Limit, total), nil
}

// Get returns a listing. Suspended listings are visible to their seller only.
func (svc *ListingService) Get(ctx context.Context, id, viewerID uuid.UUID) (*models.ListingDB, error) {
	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.Status == models.ListingSuspended && listing.SellerID != viewerID {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// validate normalizes in and checks it against the rules for sellerID.
func (svc *ListingService) validate(sellerID uuid.UUID, in models.ListingInput) (models.ListingInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if in.Subcategory != nil {
		sub := strings.TrimSpace(*in.Subcategory)
		in.Subcategory = &sub
		if sub == "" {
			in.Subcategory = nil
		}
	}

	if in.Title == "" || in.Description == "" || in.Category == "" || in.Price == nil || in.Condition == "" {
		return in, fmt.Errorf("%w: title, description, price, condition and category are required", ErrMissingField)
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLength {
		return in, fmt.Errorf("%w: title is longer than %d characters", ErrInvalidField, maxTitleLength)
	}
	if *in.Price < 0 || *in.Price > maxListingPrice {
		return in, fmt.Errorf("%w: price out of range", ErrInvalidField)
	}
	if !in.Condition.Valid() {
		return in, fmt.Errorf("%w: unknown condition %q", ErrInvalidField, in.Condition)
	}

	tags := make(models.StringList, 0, len(in.Tags))
	seen := make(map[string]struct{}, len(in.Tags))
	for _, tag := range in.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if _, dup := seen[tag]; tag == "" || dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) > maxListingTags {
		return in, fmt.Errorf("%w: at most %d tags", ErrInvalidField, maxListingTags)
	}
	in.Tags = tags

	if len(in.ImageURLs) > maxListingImages {
		return in, fmt.Errorf("%w: at most %d images", ErrInvalidField, maxListingImages)
	}
	if in.ImageURLs == nil {
		in.ImageURLs = models.StringList{}
	}
	for _, url := range in.ImageURLs {
		if !svc.images.OwnsImage(sellerID, url) {
			return in, fmt.Errorf("%w: %s is not one of your uploaded images", ErrInvalidField, url)
		}
	}
	return in, nil
}

// Create publishes a new listing for sellerID.
func (svc *ListingService) Create(ctx context.Context, sellerID uuid.UUID, in models.ListingInput) (*models.ListingDB, error) {
	in, err := svc.validate(sellerID, in)
	if err != nil {
		return nil, err
	}

	listing, err := svc.writer.Create(ctx, sellerID, in)
	if err != nil {
		logger.Log.Errorw("failed to create listing", "seller_id", sellerID, "err", err)
		return nil, err
	}
	logger.Log.Infow("listing created", "listing_id", listing.ID, "seller_id", sellerID)
	return listing, nil
}

// owned loads listing id and checks that sellerID owns it.
func (svc *ListingService) owned(ctx context.Context, sellerID, id uuid.UUID) (*models.ListingDB, error) {
	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.SellerID != sellerID {
		logger.Log.Infow("listing change by non-owner", "listing_id", id, "user_id", sellerID)
		return nil, ErrForbidden
	}
	return listing, nil
}

// Update replaces the editable fields of a listing owned by sellerID.
// Images dropped from the listing are removed from storage after commit.
func (svc *ListingService) Update(ctx context.Context, sellerID, id uuid.UUID, in models.ListingInput) (*models.ListingDB, error) {
	current, err := svc.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	in, err = svc.validate(sellerID, in)
	if err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrListingNotFound
	}

	svc.removeImages(ctx, sellerID, dropped(current.ImageURLs, updated.ImageURLs))
	return updated, nil
}

// MarkSold flags a listing owned by sellerID as sold.
func (svc *ListingService) MarkSold(ctx context.Context, sellerID, id uuid.UUID) (*models.ListingDB, error) {
	if _, err := svc.owned(ctx, sellerID, id); err != nil {
		return nil, err
	}
	listing, err := svc.writer.MarkSold(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Delete removes a listing owned by sellerID together with its images.
func (svc *ListingService) Delete(ctx context.Context, sellerID, id uuid.UUID) error {
	listing, err := svc.owned(ctx, sellerID, id)
	if err != nil {
		return err
	}
	return svc.delete(ctx, listing)
}

// AdminDelete removes any listing together with its images.
func (svc *ListingService) AdminDelete(ctx context.Context, id uuid.UUID) error {
	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	return svc.delete(ctx, listing)
}

func (svc *ListingService) delete(ctx context.Context, listing *models.ListingDB) error {
	deleted, err := svc.writer.Delete(ctx, listing.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrListingNotFound
	}
	svc.removeImages(ctx, listing.SellerID, listing.ImageURLs)
	return nil
}

// SetStatus approves or suspends a listing.
func (svc *ListingService) SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.ListingDB, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidField, status)
	}
	listing, err := svc.writer.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	logger.Log.Infow("listing moderated", "listing_id", id, "status", status)
	return listing, nil
}

// removeImages deletes stored images once the surrounding transaction commits.
func (svc *ListingService) removeImages(ctx context.Context, sellerID uuid.UUID, urls []string) {
	if len(urls) == 0 {
		return
	}
	dbctx.AfterCommit(ctx, func(ctx context.Context) {
		for _, url := range urls {
			besteffort.Do(ctx, "delete_listing_image", func(ctx context.Context) error {
				return svc.images.Delete(ctx, sellerID, url)
			})
		}
	})
}

// dropped returns the entries of before that are missing from after.
func dropped(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, url := range after {
		keep[url] = struct{}{}
	}
	var out []string
	for _, url := range before {
		if _, ok := keep[url]; !ok {
			out = append(out, url)
		}
	}
	return out
}
