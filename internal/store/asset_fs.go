package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// allowedAssetPrefixes lists the only top-level directories an asset path may
// start with. Anything else is rejected before touching the filesystem, so a
// crafted path can never address objects outside the published asset tree.
var allowedAssetPrefixes = []string{"stories/", "audio/", "images/", "thumbnails/"}

// fileAssetStore is the filesystem-backed implementation of
// [AssetObjectStore]. Objects live under a single root directory and are
// addressed by store-relative paths. Every operation validates the path
// first; [ErrInvalidAssetPath] short-circuits before any I/O.
type fileAssetStore struct {
	root   string
	logger *logger.Logger
}

// NewFileAssetStore constructs an [AssetObjectStore] rooted at dir. The
// directory is created if it does not exist.
func NewFileAssetStore(dir string, logger *logger.Logger) (AssetObjectStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("asset store root directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating asset store root: %w", err)
	}

	logger.Debug().Str("root", dir).Msg("creating file asset store")
	return &fileAssetStore{
		root:   dir,
		logger: logger,
	}, nil
}

// ValidateAssetPath checks that path is a safe store-relative asset path:
// non-empty, relative, free of traversal segments, and under one of the
// allowed prefixes. Returns [ErrInvalidAssetPath] otherwise.
func ValidateAssetPath(path string) error {
	if path == "" || strings.HasPrefix(path, "/") || strings.Contains(path, "\\") {
		return ErrInvalidAssetPath
	}
	// Reject traversal before cleaning so "a/../../etc" never normalises
	// into an accepted path.
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." || segment == "." || segment == "" {
			return ErrInvalidAssetPath
		}
	}

	for _, prefix := range allowedAssetPrefixes {
		if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
			return nil
		}
	}

	return ErrInvalidAssetPath
}

// Exists reports whether the object at path is present in the store.
func (s *fileAssetStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := ValidateAssetPath(path); err != nil {
		return false, err
	}

	_, err := os.Stat(s.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error checking asset existence: %w", err)
	}

	return true, nil
}

// Stat returns size and checksum information for the object at path.
//
// Error handling:
//   - Invalid path → [ErrInvalidAssetPath].
//   - Missing object → [ErrAssetNotFound].
func (s *fileAssetStore) Stat(ctx context.Context, path string) (models.AssetStat, error) {
	if err := ValidateAssetPath(path); err != nil {
		return models.AssetStat{}, err
	}

	info, err := os.Stat(s.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return models.AssetStat{}, ErrAssetNotFound
		}
		return models.AssetStat{}, fmt.Errorf("error reading asset info: %w", err)
	}

	f, err := os.Open(s.resolve(path))
	if err != nil {
		return models.AssetStat{}, fmt.Errorf("error opening asset: %w", err)
	}
	defer f.Close()

	checksum, err := utils.StreamChecksum(f)
	if err != nil {
		return models.AssetStat{}, fmt.Errorf("error hashing asset: %w", err)
	}

	return models.AssetStat{
		Path:       path,
		Size:       info.Size(),
		Checksum:   checksum,
		ModifiedAt: info.ModTime().UnixMilli(),
	}, nil
}

// Open returns a reader over the object at path. The caller owns the close.
func (s *fileAssetStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ValidateAssetPath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(s.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("error opening asset: %w", err)
	}

	return f, nil
}

// Put writes the object at path, creating parent directories as needed, and
// returns the stored object's size and checksum. Existing objects are
// replaced.
func (s *fileAssetStore) Put(ctx context.Context, path string, r io.Reader) (models.AssetStat, error) {
	log := logger.FromContext(ctx)

	if err := ValidateAssetPath(path); err != nil {
		return models.AssetStat{}, err
	}

	target := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return models.AssetStat{}, fmt.Errorf("error creating asset directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return models.AssetStat{}, fmt.Errorf("error creating asset file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return models.AssetStat{}, fmt.Errorf("error writing asset file: %w", err)
	}

	stat, err := s.Stat(ctx, path)
	if err != nil {
		return models.AssetStat{}, err
	}

	log.Debug().
		Str("func", "fileAssetStore.Put").
		Str("path", path).
		Int64("size", written).
		Msg("stored asset object")

	return stat, nil
}

// Delete removes the object at path.
//
// Error handling:
//   - Missing object → [ErrAssetNotFound].
func (s *fileAssetStore) Delete(ctx context.Context, path string) error {
	if err := ValidateAssetPath(path); err != nil {
		return err
	}

	if err := os.Remove(s.resolve(path)); err != nil {
		if os.IsNotExist(err) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("error deleting asset: %w", err)
	}

	return nil
}

func (s *fileAssetStore) resolve(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}
