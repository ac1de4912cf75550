package uploads

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/openimg/internal/api"
	"github.com/llehouerou/openimg/internal/state"
)

type fakeRemote struct {
	images   []string
	albums   []string
	uploaded map[string]string
	err      error
}

func (f *fakeRemote) UploadImage(_ context.Context, name string, r io.Reader) (api.UploadResult, error) {
	if f.err != nil {
		return api.UploadResult{}, f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return api.UploadResult{}, err
	}
	if f.uploaded == nil {
		f.uploaded = make(map[string]string)
	}
	f.uploaded[name] = string(data)
	return api.UploadResult{ID: "new", Link: "https://i.imgur.com/new.png", DeleteHash: "dnew"}, nil
}

func (f *fakeRemote) DeleteImage(_ context.Context, hash string) error {
	f.images = append(f.images, hash)
	return f.err
}

func (f *fakeRemote) DeleteAlbum(_ context.Context, hash string) error {
	f.albums = append(f.albums, hash)
	return f.err
}

func newTestService(remote Remote) (*Service, *state.Mock) {
	store := state.NewMock()
	s := New(store, remote)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s, store
}

func TestService_RecordAndList(t *testing.T) {
	s, _ := newTestService(nil)

	first, err := s.Record("https://i.imgur.com/a.jpg", "ha", false)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, time.Unix(1700000000, 0), first.CreatedAt)

	second, err := s.Record("https://imgur.com/a/b", "hb", true)
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestService_DeleteLocalOnly(t *testing.T) {
	remote := &fakeRemote{}
	s, store := newTestService(remote)

	u, _ := s.Record("https://i.imgur.com/a.jpg", "ha", false)

	require.NoError(t, s.Delete(context.Background(), u, false))

	list, _ := store.ListUploads(true)
	assert.Empty(t, list)
	assert.Empty(t, remote.images)
	assert.Empty(t, remote.albums)
}

func TestService_DeleteRemote(t *testing.T) {
	remote := &fakeRemote{}
	s, _ := newTestService(remote)

	photo, _ := s.Record("https://i.imgur.com/a.jpg", "ha", false)
	album, _ := s.Record("https://imgur.com/a/b", "hb", true)

	require.NoError(t, s.Delete(context.Background(), photo, true))
	require.NoError(t, s.Delete(context.Background(), album, true))

	assert.Equal(t, []string{"ha"}, remote.images)
	assert.Equal(t, []string{"hb"}, remote.albums)
}

func TestService_DeleteRemoteFailureKeepsLocalDeletion(t *testing.T) {
	apiErr := errors.New("boom")
	remote := &fakeRemote{err: apiErr}
	s, store := newTestService(remote)

	u, _ := s.Record("https://i.imgur.com/a.jpg", "ha", false)

	err := s.Delete(context.Background(), u, true)
	require.ErrorIs(t, err, ErrRemoteDelete)
	require.ErrorIs(t, err, apiErr)

	list, _ := store.ListUploads(true)
	assert.Empty(t, list, "local record is removed even when the remote call fails")
}

func TestService_DeleteRemoteWithoutHashOrClient(t *testing.T) {
	s, _ := newTestService(&fakeRemote{})
	noHash, _ := s.Record("https://i.imgur.com/a.jpg", "", false)
	assert.False(t, s.CanDeleteRemote(noHash))
	assert.ErrorIs(t, s.Delete(context.Background(), noHash, true), ErrRemoteDelete)

	s, _ = newTestService(nil)
	withHash, _ := s.Record("https://i.imgur.com/b.jpg", "hb", false)
	assert.False(t, s.CanDeleteRemote(withHash))
	assert.ErrorIs(t, s.Delete(context.Background(), withHash, true), ErrRemoteDelete)
}

func TestService_CanDeleteRemote(t *testing.T) {
	s, _ := newTestService(&fakeRemote{})
	assert.True(t, s.CanDeleteRemote(state.Upload{DeleteHash: "h"}))
}

func TestService_Upload(t *testing.T) {
	remote := &fakeRemote{}
	s, store := newTestService(remote)

	path := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(path, []byte("PNGDATA"), 0o600))

	u, err := s.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/new.png", u.URL)
	assert.Equal(t, "dnew", u.DeleteHash)
	assert.False(t, u.IsAlbum)
	assert.Equal(t, "PNGDATA", remote.uploaded["cat.png"])

	list, err := store.ListUploads(true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, u.ID, list[0].ID)
}

func TestService_UploadFailures(t *testing.T) {
	t.Run("no remote", func(t *testing.T) {
		s, _ := newTestService(nil)
		_, err := s.Upload(context.Background(), "whatever.png")
		require.ErrorIs(t, err, ErrNoRemote)
	})

	t.Run("missing file", func(t *testing.T) {
		s, _ := newTestService(&fakeRemote{})
		_, err := s.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		s, _ := newTestService(&fakeRemote{})
		_, err := s.Upload(context.Background(), t.TempDir())
		require.Error(t, err)
	})

	t.Run("remote error records nothing", func(t *testing.T) {
		s, store := newTestService(&fakeRemote{err: errors.New("status 400")})
		path := filepath.Join(t.TempDir(), "cat.png")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

		_, err := s.Upload(context.Background(), path)
		require.Error(t, err)
		list, _ := store.ListUploads(true)
		assert.Empty(t, list)
	})
}
