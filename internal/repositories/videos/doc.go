// Package videos provides the persistence layer for the video catalog.
//
// # Overview
//
// The package defines a Repository interface for loading and storing the
// complete catalog. A JSON-file-backed implementation (JSONFileRepository)
// keeps all records in one human-readable file and rewrites it in full on
// every change.
//
// # Data Model
//
// The file holds a single JSON array of video records (see internal/models).
// A missing file means an empty catalog; anything that cannot be parsed into
// well-formed records is reported as common.ErrorStorageCorrupt and is never
// silently repaired.
//
// # Concurrency
//
// JSONFileRepository performs no inter-process locking. Writes are atomic
// against crashes (temp file + rename), but two processes mutating the same
// file can lose updates. Run one writer per catalog file.
//
// Key Types
//
//   - type Repository          — interface used by the catalog service
//   - type JSONFileRepository  — JSON file implementation
//
// Typical Usage
//
//	repo := videos.NewJSONFileRepository("videos.json")
//	records, _ := repo.Load(ctx)
//	records = append(records, video)
//	_ = repo.Save(ctx, records)
//
// See also: internal/models for the Video structure.
package videos
