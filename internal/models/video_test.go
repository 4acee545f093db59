package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTags_SplitsAndTrims(t *testing.T) {
	got := ParseTags(" music , live,  ,concert ")
	require.Equal(t, []string{"music", "live", "concert"}, got)
}

func TestParseTags_EmptyInputGivesEmptySlice(t *testing.T) {
	got := ParseTags("")
	require.NotNil(t, got)
	require.Empty(t, got)

	got = ParseTags(" , ,")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestParseTags_SingleTag(t *testing.T) {
	require.Equal(t, []string{"tutorial"}, ParseTags("tutorial"))
}

func TestVideo_Matches(t *testing.T) {
	v := Video{
		ID:          1,
		Title:       "Morning Jazz Session",
		Description: "Live recording from the studio",
		Uploader:    "alice",
		Tags:        []string{"music", "jazz"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"title substring", "jazz ses", true},
		{"title case-insensitive", "MORNING", true},
		{"description substring", "studio", true},
		{"tag substring", "musi", true},
		{"empty query matches", "", true},
		{"uploader is not searched", "alice", false},
		{"no match", "cooking", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, v.Matches(tt.query))
		})
	}
}

func TestVideo_JSONShape(t *testing.T) {
	v := Video{
		ID:         7,
		Title:      "Intro",
		Tags:       []string{},
		UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(v)
	require.NoError(t, err)

	s := string(b)
	require.Contains(t, s, `"id":7`)
	require.Contains(t, s, `"title":"Intro"`)
	require.Contains(t, s, `"description":""`)
	require.Contains(t, s, `"uploader":""`)
	require.Contains(t, s, `"tags":[]`, "empty tags must marshal as [], not null")
	require.Contains(t, s, `"uploaded_at":"2025-06-01T12:00:00Z"`)
}
