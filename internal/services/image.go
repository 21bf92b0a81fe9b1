package services

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"time"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// ObjectStore stores public objects.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

// UploadFile is one image received from a client.
type UploadFile struct {
	Name string
	Data []byte
}

// ImageOptions tunes image processing.
type ImageOptions struct {
	MaxDimension int
	MaxPixels    int
	JPEGQuality  int
	MaxFiles     int
	Timeout      time.Duration
}

// ImageService resizes, compresses and stores listing images.
type ImageService struct {
	store ObjectStore
	opts  ImageOptions
}

// NewImageService creates a new ImageService. store may be nil, in which case
// every call fails with ErrStorageUnavailable.
func NewImageService(store ObjectStore, opts ImageOptions) *ImageService {
	return &ImageService{store: store, opts: opts}
}

func (s *ImageService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

func listingPrefix(userID uuid.UUID) string {
	return "listings/" + userID.String() + "/"
}

// Upload processes files in parallel and returns their public URLs in input order.
func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, files []UploadFile) ([]string, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no images uploaded", ErrMissingField)
	}
	if s.opts.MaxFiles > 0 && len(files) > s.opts.MaxFiles {
		return nil, fmt.Errorf("%w: at most %d images per upload", ErrInvalidField, s.opts.MaxFiles)
	}

	processed := make([][]byte, len(files))
	for i, f := range files {
		out, err := ProcessImage(f.Data, s.opts.MaxDimension, s.opts.MaxPixels, s.opts.JPEGQuality)
		if errors.Is(err, ErrImageTooLarge) {
			logger.Log.Infow("rejected upload", "file", f.Name, "error", err)
			return nil, fmt.Errorf("%w: %s", ErrImageTooLarge, f.Name)
		}
		if err != nil {
			logger.Log.Infow("rejected upload", "file", f.Name, "error", err)
			return nil, fmt.Errorf("%w: %s is not a supported image", ErrInvalidField, f.Name)
		}
		processed[i] = out
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i := range processed {
		g.Go(func() error {
			key := listingPrefix(userID) + uuid.NewString() + ".jpg"
			url, err := s.store.Put(gctx, key, "image/jpeg", bytes.NewReader(processed[i]))
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if isTimeout(err) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	logger.Log.Infow("images uploaded", "user_id", userID, "count", len(urls))
	return urls, nil
}

// OwnsImage reports whether imageURL points at an image uploaded by userID.
func (s *ImageService) OwnsImage(userID uuid.UUID, imageURL string) bool {
	_, ok := s.ownedKey(userID, imageURL)
	return ok
}

func (s *ImageService) ownedKey(userID uuid.UUID, imageURL string) (string, bool) {
	if s.store == nil {
		return "", false
	}
	key, ok := s.store.KeyFromURL(imageURL)
	return key, ok && strings.HasPrefix(key, listingPrefix(userID))
}

// Delete removes an image previously uploaded by userID.
func (s *ImageService) Delete(ctx context.Context, userID uuid.UUID, imageURL string) error {
	if s.store == nil {
		return ErrStorageUnavailable
	}
	if strings.TrimSpace(imageURL) == "" {
		return fmt.Errorf("%w: imageUrl is required", ErrMissingField)
	}

	key, ok := s.ownedKey(userID, imageURL)
	if !ok {
		return fmt.Errorf("%w: imageUrl does not reference one of your images", ErrInvalidField)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Delete(ctx, key); err != nil {
		if isTimeout(err) {
			return ErrUpstreamTimeout
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// ProcessImage decodes a JPEG, PNG or WebP image, downscales it so neither
// side exceeds maxDim and re-encodes it as JPEG. Images whose declared size
// exceeds maxPixels are rejected before any pixel data is decoded.
func ProcessImage(raw []byte, maxDim, maxPixels, quality int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image header: empty image %dx%d", cfg.Width, cfg.Height)
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}
