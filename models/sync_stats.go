package models

// SyncStats is the aggregate result of one client sync cycle. Per-asset
// failures are recorded here instead of being raised as errors: a partially
// failed cycle still leaves the client better off than before, and the
// orchestrator keeps the relevant version counter stale so the next cycle
// retries exactly the still-missing portion.
type SyncStats struct {
	// StoriesUpdated counts stories upserted from the delta response.
	StoriesUpdated int `json:"storiesUpdated"`

	// StoriesDeleted counts stories evicted because the server no longer
	// tracks them.
	StoriesDeleted int `json:"storiesDeleted"`

	// AssetsDownloaded counts assets fetched and written to the cache.
	AssetsDownloaded int `json:"assetsDownloaded"`

	// AssetsSkipped counts assets that were already cached, so no URL was
	// requested and no download happened.
	AssetsSkipped int `json:"assetsSkipped"`

	// AssetsFailed counts assets that could not be resolved or downloaded
	// this cycle.
	AssetsFailed int `json:"assetsFailed"`

	// FailedAssets lists the paths behind AssetsFailed, for the caller to
	// surface or retry.
	FailedAssets []string `json:"failedAssets,omitempty"`

	// APICalls is the total number of server round trips the cycle made:
	// version check + delta + URL batches. Asset downloads against the
	// returned URLs are not counted; they do not hit the gateway.
	APICalls int `json:"apiCalls"`

	// StorySynced reports that the story phase completed and the local
	// story version was advanced.
	StorySynced bool `json:"storySynced"`

	// AssetSynced reports that every needed asset is now cached and the
	// local asset version was advanced.
	AssetSynced bool `json:"assetSynced"`
}
