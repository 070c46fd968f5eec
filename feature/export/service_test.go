package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"book-manager/core/storage/mocks"
	"book-manager/feature/catalog/catalogtest"
	"book-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixed = time.Date(2026, time.March, 4, 5, 6, 7, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.Client) {
	t.Helper()
	client := new(mocks.Client)
	svc := NewService(catalogtest.NewSeededStore(t), client, "catalog", zap.NewNop())
	svc.now = func() time.Time { return fixed }
	return svc, client
}

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestBuild_FlatRows(t *testing.T) {
	svc, _ := newService(t)

	snap, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fixed, snap.GeneratedAt)
	assert.Len(t, snap.Publishers, 3)
	assert.Len(t, snap.Authors, 3)
	assert.Len(t, snap.Books, 3)
	assert.Len(t, snap.Links, 3)
	assert.Nil(t, snap.Books[0].Publisher)
	assert.Empty(t, snap.Authors[0].BookAuthors)
}

func TestExport_UploadsSnapshot(t *testing.T) {
	svc, client := newService(t)

	var uploaded []byte
	client.On("PutObject", mock.Anything, "catalog", "exports/catalog-20260304T050607Z.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	info, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "catalog-20260304T050607Z.json", info.Name)
	assert.Equal(t, int64(len(uploaded)), info.Size)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(uploaded, &snap))
	assert.Equal(t, "Dune", snap.Books[1].Title)
	assert.Equal(t, models.CategoryRomance, snap.Books[2].Category)
}

func TestExport_UploadError(t *testing.T) {
	svc, client := newService(t)
	client.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := svc.Export(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestList_NewestFirst(t *testing.T) {
	svc, client := newService(t)
	client.On("ListObjects", mock.Anything, "catalog", minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}).
		Return(objects(
			minio.ObjectInfo{Key: "exports/catalog-20260101T000000Z.json", Size: 10},
			minio.ObjectInfo{Key: "exports/", Size: 0},
			minio.ObjectInfo{Key: "exports/catalog-20260301T000000Z.json", Size: 20},
		))

	infos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "catalog-20260301T000000Z.json", infos[0].Name)
	assert.Equal(t, int64(10), infos[1].Size)
}

func TestList_Error(t *testing.T) {
	svc, client := newService(t)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).
		Return(objects(minio.ObjectInfo{Err: errors.New("bucket gone")}))

	_, err := svc.List(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}

func TestOpen_RejectsPaths(t *testing.T) {
	svc, _ := newService(t)

	for _, name := range []string{"", "../secrets.json", "catalog.txt"} {
		_, err := svc.Open(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestHandlers(t *testing.T) {
	svc, client := newService(t)
	client.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			return objects(minio.ObjectInfo{Key: "exports/catalog-20260304T050607Z.json", Size: 5})
		})
	client.On("GetObject", mock.Anything, "catalog", "exports/catalog-20260304T050607Z.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"books":[]}`)), nil)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	var infos []Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	assert.Len(t, infos, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/export/catalog-20260304T050607Z.json", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"books":[]}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/export/notes.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeature_DisabledWithoutStorage(t *testing.T) {
	f := NewFeature(catalogtest.NewStore(t), nil, "catalog", zap.NewNop())
	assert.False(t, f.IsEnabled())

	f = NewFeature(catalogtest.NewStore(t), new(mocks.Client), "catalog", zap.NewNop())
	assert.True(t, f.IsEnabled())
	assert.Equal(t, "export", f.Name())
}
