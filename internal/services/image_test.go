package services_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gearted/gearted-backend/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var imageOpts = services.ImageOptions{MaxDimension: 1200, MaxPixels: 40_000_000, JPEGQuality: 80, MaxFiles: 3, Timeout: time.Second}

// inflatedPNG returns a tiny PNG whose header declares w x h pixels.
func inflatedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	raw := pngBytes(t, 1, 1)
	// signature(8) + length(4) + "IHDR"(4), then width and height.
	binary.BigEndian.PutUint32(raw[16:20], w)
	binary.BigEndian.PutUint32(raw[20:24], h)
	binary.BigEndian.PutUint32(raw[29:33], crc32.ChecksumIEEE(raw[12:29]))
	return raw
}

func TestProcessImage_PixelLimit(t *testing.T) {
	raw := inflatedPNG(t, 12000, 12000)

	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 12000, cfg.Width)

	_, err = services.ProcessImage(raw, 1200, 40_000_000, 80)
	assert.ErrorIs(t, err, services.ErrImageTooLarge)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := services.NewMockObjectStore(ctrl)

	_, err = services.NewImageService(store, imageOpts).
		Upload(context.Background(), uuid.New(), []services.UploadFile{{Name: "huge.png", Data: raw}})
	assert.ErrorIs(t, err, services.ErrImageTooLarge)
}

func TestProcessImage(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape downscaled", 2400, 600, 1200, 300},
		{"portrait downscaled", 500, 3000, 200, 1200},
		{"small kept", 640, 480, 640, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := services.ProcessImage(pngBytes(t, tt.w, tt.h), 1200, 40_000_000, 80)
			require.NoError(t, err)

			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}

	_, err := services.ProcessImage([]byte("not an image"), 1200, 40_000_000, 80)
	assert.Error(t, err)
}

func TestImageService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockObjectStore(ctrl)
	svc := services.NewImageService(store, imageOpts)
	userID := uuid.New()

	store.EXPECT().Put(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			assert.True(t, strings.HasPrefix(key, "listings/"+userID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".jpg"))
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			_, err = jpeg.DecodeConfig(bytes.NewReader(data))
			assert.NoError(t, err)
			return "https://cdn.test/" + key, nil
		}).Times(2)

	urls, err := svc.Upload(context.Background(), userID, []services.UploadFile{
		{Name: "a.png", Data: pngBytes(t, 2000, 1000)},
		{Name: "b.png", Data: pngBytes(t, 100, 100)},
	})
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.NotEqual(t, urls[0], urls[1])
}

func TestImageService_UploadRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockObjectStore(ctrl)
	svc := services.NewImageService(store, imageOpts)
	ctx := context.Background()
	userID := uuid.New()

	_, err := services.NewImageService(nil, imageOpts).Upload(ctx, userID, []services.UploadFile{{Name: "a"}})
	assert.ErrorIs(t, err, services.ErrStorageUnavailable)

	_, err = svc.Upload(ctx, userID, nil)
	assert.ErrorIs(t, err, services.ErrMissingField)

	_, err = svc.Upload(ctx, userID, make([]services.UploadFile, 4))
	assert.ErrorIs(t, err, services.ErrInvalidField)

	_, err = svc.Upload(ctx, userID, []services.UploadFile{{Name: "notes.txt", Data: []byte("hello")}})
	assert.ErrorIs(t, err, services.ErrInvalidField)
}

func TestImageService_UploadStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockObjectStore(ctrl)
	opts := imageOpts
	opts.Timeout = 20 * time.Millisecond
	svc := services.NewImageService(store, opts)
	files := []services.UploadFile{{Name: "a.png", Data: pngBytes(t, 10, 10)}}

	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket gone"))
	_, err := svc.Upload(context.Background(), uuid.New(), files)
	assert.ErrorIs(t, err, services.ErrStorageUnavailable)

	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ io.Reader) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})
	_, err = svc.Upload(context.Background(), uuid.New(), files)
	assert.ErrorIs(t, err, services.ErrUpstreamTimeout)
}

func TestImageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockObjectStore(ctrl)
	svc := services.NewImageService(store, imageOpts)
	ctx := context.Background()
	owner := uuid.New()
	ownKey := "listings/" + owner.String() + "/x.jpg"
	foreignKey := "listings/" + uuid.NewString() + "/x.jpg"

	store.EXPECT().KeyFromURL("https://cdn.test/"+ownKey).Return(ownKey, true)
	store.EXPECT().Delete(gomock.Any(), ownKey).Return(nil)
	assert.NoError(t, svc.Delete(ctx, owner, "https://cdn.test/"+ownKey))

	store.EXPECT().KeyFromURL("https://cdn.test/"+foreignKey).Return(foreignKey, true)
	assert.ErrorIs(t, svc.Delete(ctx, owner, "https://cdn.test/"+foreignKey), services.ErrInvalidField)

	store.EXPECT().KeyFromURL("https://elsewhere.test/a.jpg").Return("", false)
	assert.ErrorIs(t, svc.Delete(ctx, owner, "https://elsewhere.test/a.jpg"), services.ErrInvalidField)

	assert.ErrorIs(t, svc.Delete(ctx, owner, ""), services.ErrMissingField)

	store.EXPECT().KeyFromURL(gomock.Any()).Return(ownKey, true)
	store.EXPECT().Delete(gomock.Any(), ownKey).Return(errors.New("503"))
	assert.ErrorIs(t, svc.Delete(ctx, owner, "https://cdn.test/"+ownKey), services.ErrStorageUnavailable)
}

func TestImageService_OwnsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockObjectStore(ctrl)
	svc := services.NewImageService(store, imageOpts)
	owner := uuid.New()
	ownKey := "listings/" + owner.String() + "/x.jpg"

	store.EXPECT().KeyFromURL("https://cdn.test/"+ownKey).Return(ownKey, true)
	assert.True(t, svc.OwnsImage(owner, "https://cdn.test/"+ownKey))

	store.EXPECT().KeyFromURL("https://cdn.test/"+ownKey).Return(ownKey, true)
	assert.False(t, svc.OwnsImage(uuid.New(), "https://cdn.test/"+ownKey))

	assert.False(t, services.NewImageService(nil, imageOpts).OwnsImage(owner, "https://cdn.test/"+ownKey))
}
