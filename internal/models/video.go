// Package models defines the video catalog record type and its helpers.
package models

import (
	"strings"
	"time"
)

// Video is a single catalog record. The JSON field names are the
// on-disk format of the catalog file, so they must stay stable.
type Video struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Uploader    string    `json:"uploader"`
	Tags        []string  `json:"tags"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ParseTags splits a comma-separated tag string into clean tags:
// surrounding whitespace trimmed, empty items dropped. The result is
// never nil so it marshals as [] rather than null.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Matches reports whether q occurs case-insensitively in the video's
// title, description or any tag. An empty q matches.
func (v Video) Matches(q string) bool {
	q = strings.ToLower(q)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q) {
		return true
	}
	for _, t := range v.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
