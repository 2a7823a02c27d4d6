package models

import "time"

// Story is one unit of downloadable content: metadata plus the ordered pages
// that make up the story. Asset payloads (images, audio) are not embedded;
// the story only references them by path, and clients resolve those paths to
// time-limited URLs through the batch URL endpoint.
type Story struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Version     int64       `json:"version"`
	Premium     bool        `json:"premium"`
	Available   bool        `json:"available"`
	Pages       []StoryPage `json:"pages,omitempty"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// StoryPage is a single page of a story. ImagePath and AudioPath are object
// paths inside the asset store (e.g. "images/moon-bear/page-1.png"), not URLs.
type StoryPage struct {
	ID         string `json:"id"`
	PageNumber int    `json:"pageNumber"`
	Text       string `json:"text"`
	ImagePath  string `json:"imagePath,omitempty"`
	AudioPath  string `json:"audioPath,omitempty"`
}

// AssetPaths returns every asset path referenced by the story's pages,
// in page order, without deduplication.
func (s Story) AssetPaths() []string {
	paths := make([]string, 0, len(s.Pages)*2)
	for _, page := range s.Pages {
		if page.ImagePath != "" {
			paths = append(paths, page.ImagePath)
		}
		if page.AudioPath != "" {
			paths = append(paths, page.AudioPath)
		}
	}
	return paths
}
