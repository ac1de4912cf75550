// Package uploads manages the photos and albums uploaded from this device:
// the local record kept in the state database and their remote deletion.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/llehouerou/openimg/internal/api"
	"github.com/llehouerou/openimg/internal/state"
)

var (
	// ErrRemoteDelete is wrapped around remote deletion failures. The local
	// record is already gone when it is returned.
	ErrRemoteDelete = errors.New("remote delete failed")

	// ErrNoRemote is returned by Upload when no API client is configured.
	ErrNoRemote = errors.New("no api client configured")
)

// Store is the local persistence used by Service.
type Store interface {
	ListUploads(newestFirst bool) ([]state.Upload, error)
	SaveUpload(u state.Upload) (int64, error)
	DeleteUpload(id int64) error
}

// Remote uploads to and deletes from the image host.
type Remote interface {
	UploadImage(ctx context.Context, name string, r io.Reader) (api.UploadResult, error)
	DeleteImage(ctx context.Context, deleteHash string) error
	DeleteAlbum(ctx context.Context, deleteHash string) error
}

// Service combines the local store with the remote API.
type Service struct {
	store  Store
	remote Remote
	now    func() time.Time
}

// New creates a service. remote may be nil when no API client is configured;
// remote deletion then fails with ErrRemoteDelete.
func New(store Store, remote Remote) *Service {
	return &Service{
		store:  store,
		remote: remote,
		now:    time.Now,
	}
}

// List returns all uploads, newest first.
func (s *Service) List() ([]state.Upload, error) {
	return s.store.ListUploads(true)
}

// Record stores a new upload and returns it with its id set.
func (s *Service) Record(url, deleteHash string, isAlbum bool) (state.Upload, error) {
	u := state.Upload{
		URL:        url,
		DeleteHash: deleteHash,
		IsAlbum:    isAlbum,
		CreatedAt:  s.now(),
	}
	id, err := s.store.SaveUpload(u)
	if err != nil {
		return state.Upload{}, fmt.Errorf("save upload: %w", err)
	}
	u.ID = id
	return u, nil
}

// Upload sends the image file at path anonymously and records it.
func (s *Service) Upload(ctx context.Context, path string) (state.Upload, error) {
	if s.remote == nil {
		return state.Upload{}, ErrNoRemote
	}

	f, err := os.Open(path)
	if err != nil {
		return state.Upload{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return state.Upload{}, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return state.Upload{}, fmt.Errorf("%s is a directory", path)
	}

	res, err := s.remote.UploadImage(ctx, filepath.Base(path), f)
	if err != nil {
		return state.Upload{}, err
	}
	log.Printf("uploads: uploaded %s as %s", path, res.Link)
	return s.Record(res.Link, res.DeleteHash, false)
}

// CanDeleteRemote reports whether u can be deleted on the image host.
func (s *Service) CanDeleteRemote(u state.Upload) bool {
	return s.remote != nil && u.DeleteHash != ""
}

// Delete removes the local record of u and, when remote is set, the upload
// itself on the image host.
func (s *Service) Delete(ctx context.Context, u state.Upload, remote bool) error {
	if err := s.store.DeleteUpload(u.ID); err != nil {
		return fmt.Errorf("delete upload %d: %w", u.ID, err)
	}
	if !remote {
		return nil
	}

	if err := s.deleteRemote(ctx, u); err != nil {
		log.Printf("uploads: unable to delete %s remotely: %v", u.URL, err)
		return fmt.Errorf("%w: %w", ErrRemoteDelete, err)
	}
	return nil
}

func (s *Service) deleteRemote(ctx context.Context, u state.Upload) error {
	switch {
	case s.remote == nil:
		return ErrNoRemote
	case u.DeleteHash == "":
		return errors.New("upload has no delete hash")
	case u.IsAlbum:
		return s.remote.DeleteAlbum(ctx, u.DeleteHash)
	default:
		return s.remote.DeleteImage(ctx, u.DeleteHash)
	}
}
