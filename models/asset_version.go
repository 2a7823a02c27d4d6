package models

import "time"

// AssetVersion tracks asset-level changes independently of story metadata.
// An image can be re-rendered without any story text changing; bumping only
// the asset counter lets clients skip the story delta entirely in that case.
type AssetVersion struct {
	ID string `json:"id"`

	// Version increases on every effective mutation of AssetChecksums.
	Version int64 `json:"version"`

	// AssetChecksums maps asset path to the hex digest of the object content.
	AssetChecksums map[string]string `json:"assetChecksums"`

	// TotalAssets is kept equal to len(AssetChecksums) on every mutation.
	TotalAssets int `json:"totalAssets"`

	// TotalSizeBytes is the summed size of all tracked assets, informational.
	TotalSizeBytes int64 `json:"totalSizeBytes"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// NewAssetVersion returns the zero-state asset version document.
func NewAssetVersion() AssetVersion {
	return AssetVersion{
		ID:             CurrentVersionID,
		Version:        1,
		AssetChecksums: make(map[string]string),
		LastUpdated:    time.Now().UTC(),
	}
}

// UpdateAssetChecksum upserts the checksum for assetPath and bumps Version.
// Identical checksums are a no-op, mirroring ContentVersion. Returns true
// when the version changed.
func (v *AssetVersion) UpdateAssetChecksum(assetPath, checksum string) bool {
	if v.AssetChecksums == nil {
		v.AssetChecksums = make(map[string]string)
	}
	if existing, ok := v.AssetChecksums[assetPath]; ok && existing == checksum {
		return false
	}

	v.AssetChecksums[assetPath] = checksum
	v.TotalAssets = len(v.AssetChecksums)
	v.incrementVersion()
	return true
}

// RemoveAssetChecksum deletes the entry for assetPath if present and bumps
// Version. Returns true when the version changed.
func (v *AssetVersion) RemoveAssetChecksum(assetPath string) bool {
	if _, ok := v.AssetChecksums[assetPath]; !ok {
		return false
	}

	delete(v.AssetChecksums, assetPath)
	v.TotalAssets = len(v.AssetChecksums)
	v.incrementVersion()
	return true
}

// HasAssetChanged reports whether the given checksum differs from the stored
// one. An unknown path counts as changed.
func (v *AssetVersion) HasAssetChanged(assetPath, checksum string) bool {
	existing, ok := v.AssetChecksums[assetPath]
	return !ok || existing != checksum
}

func (v *AssetVersion) incrementVersion() {
	v.Version++
	v.LastUpdated = time.Now().UTC()
}
