package gallery

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuafor-app/salon-booking-backend/internal/pkg/storage"
)

type fakeGalleryRepo struct {
	images map[string]*Image
}

func (r *fakeGalleryRepo) Create(_ context.Context, img *Image) error {
	r.images[img.ID] = img
	return nil
}

func (r *fakeGalleryRepo) GetByID(_ context.Context, id string) (*Image, error) {
	if img, ok := r.images[id]; ok {
		return img, nil
	}
	return nil, ErrNotFound
}

func (r *fakeGalleryRepo) ListByStaff(_ context.Context, staffID string) ([]*Image, error) {
	var out []*Image
	for _, img := range r.images {
		if img.StaffID == staffID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *fakeGalleryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.images[id]; !ok {
		return ErrNotFound
	}
	delete(r.images, id)
	return nil
}

// uploadHeader builds a real multipart.FileHeader carrying content, the same
// shape gin hands to the service.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestGalleryService(t *testing.T) (Service, *fakeGalleryRepo) {
	t.Helper()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repo := &fakeGalleryRepo{images: map[string]*Image{}}
	return NewService(repo, store), repo
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("valid image is stored with a thumbnail", func(t *testing.T) {
		svc, repo := newTestGalleryService(t)

		img, err := svc.Upload(ctx, uploadHeader(t, "work.png", pngBytes(t)), "staff-1")
		require.NoError(t, err)

		require.Equal(t, "staff-1", img.StaffID)
		require.Equal(t, "work.png", img.Filename)
		require.NotNil(t, img.ThumbnailPath)
		require.Contains(t, repo.images, img.ID)

		stream, _, err := svc.Download(ctx, img.ID)
		require.NoError(t, err)
		stream.Close()
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		svc, repo := newTestGalleryService(t)

		_, err := svc.Upload(ctx, uploadHeader(t, "notes.txt", []byte("hi")), "staff-1")
		require.ErrorIs(t, err, ErrUnsupportedType)
		require.Empty(t, repo.images)
	})

	t.Run("undecodable image still uploads, without a thumbnail", func(t *testing.T) {
		svc, _ := newTestGalleryService(t)

		img, err := svc.Upload(ctx, uploadHeader(t, "broken.png", []byte("not a png")), "staff-1")
		require.NoError(t, err)
		require.Nil(t, img.ThumbnailPath)

		_, _, err = svc.DownloadThumbnail(ctx, img.ID)
		require.ErrorIs(t, err, ErrNoThumbnail)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestGalleryService(t)

	img, err := svc.Upload(ctx, uploadHeader(t, "work.png", pngBytes(t)), "staff-1")
	require.NoError(t, err)

	t.Run("only the owner can delete", func(t *testing.T) {
		err := svc.Delete(ctx, img.ID, "staff-2")
		require.ErrorIs(t, err, ErrNotOwner)
		require.Contains(t, repo.images, img.ID)
	})

	t.Run("owner delete removes the record", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, img.ID, "staff-1"))
		require.NotContains(t, repo.images, img.ID)

		require.ErrorIs(t, svc.Delete(ctx, img.ID, "staff-1"), ErrNotFound)
	})
}
