// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nightlight-app/storysync/models"
)

// StoryChecksum computes the canonical SHA-256 checksum of a story's
// syncable content, returned as a lowercase hex string.
//
// The checksum covers exactly the fields a client renders: id, title,
// category, description, version and every page's id, text and page number.
// Pages are folded in ascending page-number order so that storage order
// never influences the result. Asset binaries are NOT part of the story
// checksum; asset freshness is tracked by the separate asset version
// counter.
//
// Two stories with equal checksums are considered identical for delta
// purposes, so any change that must reach clients has to touch one of the
// covered fields.
func StoryChecksum(story *models.Story) string {
	var sb strings.Builder
	sb.WriteString(story.ID)
	sb.WriteByte('|')
	sb.WriteString(story.Title)
	sb.WriteByte('|')
	sb.WriteString(story.Category)
	sb.WriteByte('|')
	sb.WriteString(story.Description)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(story.Version, 10))

	pages := make([]models.StoryPage, len(story.Pages))
	copy(pages, story.Pages)
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})

	for _, page := range pages {
		sb.WriteByte('|')
		sb.WriteString(page.ID)
		sb.WriteByte('|')
		sb.WriteString(page.Text)
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(page.PageNumber))
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// DataChecksum computes the SHA-256 checksum of a byte slice as a lowercase
// hex string. Used by the client cache to fingerprint downloaded asset
// payloads.
func DataChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// StreamChecksum computes the SHA-256 checksum of everything readable from r.
func StreamChecksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
