package models

// MaxBatchPaths is the largest number of asset paths one batch URL request
// may carry. It bounds both request count (ceil(N/MaxBatchPaths) calls for N
// assets) and response payload size.
const MaxBatchPaths = 50

// BatchURLsRequest asks the server to resolve up to [MaxBatchPaths] asset
// paths into time-limited access URLs in a single round trip.
type BatchURLsRequest struct {
	Paths []string `json:"paths"`
}

// SignedURLEntry is one resolved asset path.
type SignedURLEntry struct {
	Path      string `json:"path"`
	SignedURL string `json:"signedUrl"`

	// ExpiresAt is the epoch-millisecond time after which the URL stops
	// working. Zero for strategies that produce non-expiring URLs.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// BatchURLsResponse carries per-path results. A path that could not be
// resolved (missing object, invalid path) lands in Failed; it never fails
// the batch as a whole.
type BatchURLsResponse struct {
	URLs   []SignedURLEntry `json:"urls"`
	Failed []string         `json:"failed"`
}

// SignedURLResponse is the single-path convenience variant.
type SignedURLResponse struct {
	Path      string `json:"path"`
	SignedURL string `json:"signedUrl"`
}

// AssetStat describes one stored asset object.
type AssetStat struct {
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	Checksum   string `json:"checksum,omitempty"`
	ModifiedAt int64  `json:"modifiedAt,omitempty"`
}

// CachedAsset is one row of the client's local asset index.
type CachedAsset struct {
	Path     string `json:"path"`
	FilePath string `json:"filePath"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
	CachedAt int64  `json:"cachedAt"`
}
