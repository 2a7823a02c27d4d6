// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CurrentVersionID is the fixed identifier of the singleton version document.
// There is exactly one ContentVersion (and one AssetVersion) per deployment.
const CurrentVersionID = "current"

// ContentVersion is the server-authoritative description of "what content
// exists and when it last changed". Clients compare their locally persisted
// counters against Version/the checksum map to decide whether a sync is
// needed at all, and which stories to transfer.
type ContentVersion struct {
	// ID is always [CurrentVersionID]; kept as a field because the value is
	// persisted as a document keyed by it.
	ID string `json:"id"`

	// Version increases on every effective mutation of StoryChecksums.
	// It never decreases or resets within a server lifetime.
	Version int64 `json:"version"`

	// StoryChecksums maps story ID to the hex SHA-256 digest of the story's
	// content. Key set and digests fully describe the syncable corpus.
	StoryChecksums map[string]string `json:"storyChecksums"`

	// TotalStories is kept equal to len(StoryChecksums) on every mutation.
	TotalStories int `json:"totalStories"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// NewContentVersion returns the zero-state version document used when the
// store holds no version yet: version 1, empty checksum map.
func NewContentVersion() ContentVersion {
	return ContentVersion{
		ID:             CurrentVersionID,
		Version:        1,
		StoryChecksums: make(map[string]string),
		LastUpdated:    time.Now().UTC(),
	}
}

// UpdateStoryChecksum upserts the checksum for storyID and bumps Version.
// Writing a checksum identical to the stored one is a no-op and does not
// bump the counter, so re-uploads of unchanged content do not force every
// client through a needless checksum-map refresh. Returns true when the
// version changed.
func (v *ContentVersion) UpdateStoryChecksum(storyID, checksum string) bool {
	if v.StoryChecksums == nil {
		v.StoryChecksums = make(map[string]string)
	}
	if existing, ok := v.StoryChecksums[storyID]; ok && existing == checksum {
		return false
	}

	v.StoryChecksums[storyID] = checksum
	v.TotalStories = len(v.StoryChecksums)
	v.incrementVersion()
	return true
}

// RemoveStoryChecksum deletes the entry for storyID if present and bumps
// Version. Removing an absent entry is a no-op. Returns true when the
// version changed.
func (v *ContentVersion) RemoveStoryChecksum(storyID string) bool {
	if _, ok := v.StoryChecksums[storyID]; !ok {
		return false
	}

	delete(v.StoryChecksums, storyID)
	v.TotalStories = len(v.StoryChecksums)
	v.incrementVersion()
	return true
}

// HasStoryChanged reports whether the given checksum differs from the stored
// one. A story the server has never seen counts as changed.
func (v *ContentVersion) HasStoryChanged(storyID, checksum string) bool {
	existing, ok := v.StoryChecksums[storyID]
	return !ok || existing != checksum
}

func (v *ContentVersion) incrementVersion() {
	v.Version++
	v.LastUpdated = time.Now().UTC()
}
