package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/mediastore"
)

type fakeMediaRepo struct {
	assets    map[int64]*models.MediaAsset
	nextID    int64
	createErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{assets: map[int64]*models.MediaAsset{}, nextID: 1}
}

func (f *fakeMediaRepo) Create(_ context.Context, m *models.MediaAsset) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.assets[m.ID] = m
	return nil
}

func (f *fakeMediaRepo) GetByID(_ context.Context, id int64) (*models.MediaAsset, error) {
	m, ok := f.assets[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Media asset not found")
	}
	return m, nil
}

func (f *fakeMediaRepo) GetByURL(_ context.Context, url string) (*models.MediaAsset, error) {
	for _, m := range f.assets {
		if m.URL == url {
			return m, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("Media asset not found")
}

func (f *fakeMediaRepo) List(_ context.Context, folder string) ([]*models.MediaAsset, error) {
	var out []*models.MediaAsset
	for _, m := range f.assets {
		if folder != "" && m.Folder != folder {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMediaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.assets[id]; !ok {
		return apperrors.NewResourceNotFoundError("Media asset not found")
	}
	delete(f.assets, id)
	return nil
}

type fakeMediaStore struct {
	uploadErr error
	deleteErr error
	deleted   []string
	uploads   int
}

func (f *fakeMediaStore) Upload(_ context.Context, fileHeader *multipart.FileHeader, folder string) (*mediastore.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	return &mediastore.UploadResult{
		URL:       "https://media.example.com/" + folder + "/" + fileHeader.Filename,
		ObjectKey: folder + "/" + fileHeader.Filename,
		MimeType:  "image/png",
		SizeBytes: fileHeader.Size,
	}, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, objectKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func testFileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestUploadRecordsAsset(t *testing.T) {
	repo := newFakeMediaRepo()
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	asset, err := svc.Upload(context.Background(), testFileHeader("banner.png", 2048), "hero", 7)
	require.NoError(t, err)
	assert.Equal(t, "hero/banner.png", asset.ObjectKey)
	assert.Equal(t, "hero", asset.Folder)
	assert.Equal(t, int64(7), asset.UploadedBy)
	assert.Equal(t, int64(2048), asset.SizeBytes)
	assert.NotZero(t, asset.ID)
}

func TestUploadStoreFailureMapsToStorageError(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), &fakeMediaStore{uploadErr: errors.New("bucket gone")})

	_, err := svc.Upload(context.Background(), testFileHeader("banner.png", 2048), "hero", 7)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestUploadCleansUpOrphanOnRecordFailure(t *testing.T) {
	repo := newFakeMediaRepo()
	repo.createErr = errors.New("insert failed")
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	_, err := svc.Upload(context.Background(), testFileHeader("banner.png", 2048), "hero", 7)
	require.Error(t, err)
	assert.Equal(t, []string{"hero/banner.png"}, store.deleted)
}

func TestListAssetsFiltersByFolder(t *testing.T) {
	repo := newFakeMediaRepo()
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	_, err := svc.Upload(context.Background(), testFileHeader("a.png", 10), "hero", 1)
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), testFileHeader("b.png", 10), "team", 1)
	require.NoError(t, err)

	hero, err := svc.ListAssets(context.Background(), "hero")
	require.NoError(t, err)
	assert.Len(t, hero, 1)

	all, err := svc.ListAssets(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteAssetRemovesStoredObject(t *testing.T) {
	repo := newFakeMediaRepo()
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	asset, err := svc.Upload(context.Background(), testFileHeader("a.png", 10), "hero", 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAsset(context.Background(), asset.ID))
	assert.Contains(t, store.deleted, "hero/a.png")

	_, err = svc.GetAsset(context.Background(), asset.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCleanupByURLRemovesKnownAsset(t *testing.T) {
	repo := newFakeMediaRepo()
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	asset, err := svc.Upload(context.Background(), testFileHeader("a.png", 10), "hero", 1)
	require.NoError(t, err)

	svc.CleanupByURL(context.Background(), asset.URL)
	assert.Contains(t, store.deleted, asset.ObjectKey)
	assert.Empty(t, repo.assets)

	// URLs not tracked as assets are skipped quietly
	svc.CleanupByURL(context.Background(), "https://elsewhere.example.com/x.png")
}

func TestDeleteAssetToleratesMissingObject(t *testing.T) {
	repo := newFakeMediaRepo()
	store := &fakeMediaStore{}
	svc := NewMediaService(repo, store)

	asset, err := svc.Upload(context.Background(), testFileHeader("a.png", 10), "hero", 1)
	require.NoError(t, err)

	store.deleteErr = errors.New("object already gone")
	assert.NoError(t, svc.DeleteAsset(context.Background(), asset.ID))
}
