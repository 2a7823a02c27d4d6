// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxStoryChecksums caps the size of the checksum map a client may declare
// in one delta request.
const MaxStoryChecksums = 500

// DeltaSyncRequest is sent by the client to initiate a delta exchange.
// The client declares everything it already has (story ID → checksum) so the
// server can return only what differs.
//
// ClientVersion and LastSyncTimestamp are pointers so that an absent field is
// distinguishable from a zero value: all three fields are required, and a
// request missing any of them is rejected as a client error rather than
// silently defaulted.
type DeltaSyncRequest struct {
	// ClientVersion is the story version the client last committed.
	// Informational except for the fast path: a client already at or beyond
	// the server version receives an empty delta without any diffing.
	ClientVersion *int64 `json:"clientVersion"`

	// StoryChecksums is the client's full local checksum map. Empty (but
	// present) for a fresh client, which yields the entire corpus.
	StoryChecksums map[string]string `json:"storyChecksums"`

	// LastSyncTimestamp is the epoch-millisecond time of the client's last
	// completed sync. Informational only.
	LastSyncTimestamp *int64 `json:"lastSyncTimestamp"`
}

// DeltaSyncResponse carries the minimal transfer set for one delta exchange.
type DeltaSyncResponse struct {
	ServerVersion int64 `json:"serverVersion"`
	AssetVersion  int64 `json:"assetVersion"`

	// Stories contains every story whose checksum differs from what the
	// client declared, or that the client has never seen. A story whose
	// declared checksum matches the server's is never included.
	Stories []Story `json:"stories"`

	// DeletedStoryIDs lists IDs the client declared but the server no longer
	// tracks; the client must evict them locally.
	DeletedStoryIDs []string `json:"deletedStoryIds"`

	// StoryChecksums is always the FULL current server-side map, regardless
	// of delta size, so the client's next snapshot is complete without
	// merging across cycles.
	StoryChecksums map[string]string `json:"storyChecksums"`

	TotalStories int   `json:"totalStories"`
	UpdatedCount int   `json:"updatedCount"`
	LastUpdated  int64 `json:"lastUpdated"`
}

// ContentVersionResponse is the body of the version endpoint. AssetVersion
// is omitted by servers that predate independent asset versioning; clients
// fall back to Version in that case.
type ContentVersionResponse struct {
	ID             string            `json:"id"`
	Version        int64             `json:"version"`
	AssetVersion   int64             `json:"assetVersion,omitempty"`
	LastUpdated    int64             `json:"lastUpdated"`
	StoryChecksums map[string]string `json:"storyChecksums"`
	TotalStories   int               `json:"totalStories"`
}

// LocalVersion is the client's persisted snapshot of the last fully synced
// server state. It does not exist before the first successful sync and is
// cleared on logout/reset.
type LocalVersion struct {
	// Stories is the last story version this client committed.
	Stories int64 `json:"stories"`

	// Assets is the last asset version this client committed. Equal to
	// Stories when the server does not version assets independently.
	Assets int64 `json:"assets"`

	// LastUpdated is an RFC 3339 timestamp string, informational only.
	LastUpdated string `json:"lastUpdated"`
}

// VersionCheck is the outcome of comparing the local snapshot against the
// server's current counters. The two flags are independent: stories can be
// unchanged while assets changed, and vice versa.
type VersionCheck struct {
	NeedsStorySync bool
	NeedsAssetSync bool

	// Local is nil when no snapshot is persisted (fresh or reset client).
	Local *LocalVersion

	// Server is nil when the server was unreachable; in that case both
	// flags are false and the client keeps serving cached content.
	Server *LocalVersion
}
