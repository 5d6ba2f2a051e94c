package domain

import "time"

// Fingerprint is a cheap, comparable proxy for a file's content at a point in
// time. ContentHash is a content digest for regular files below the large-file
// threshold and a size+mtime proxy above it. An empty ContentHash means the
// file could not be hashed; it is never a valid digest and comparisons must
// treat it as changed.
type Fingerprint struct {
	Path        string    `json:"path"`
	SizeBytes   int64     `json:"sizeBytes"`
	ModifiedAt  time.Time `json:"modifiedAt"`
	ContentHash string    `json:"contentHash"`
	Exists      bool      `json:"exists"`
}

// ChangeKind classifies why a file no longer matches its recorded fingerprint.
type ChangeKind string

const (
	// ChangeContent means the file exists but its hash differs.
	ChangeContent ChangeKind = "content"
	// ChangeNew means no prior hash was recorded for the file.
	ChangeNew ChangeKind = "new"
	// ChangeMissing means the file is gone.
	ChangeMissing ChangeKind = "missing"
)

// FileChange describes a single file that failed fingerprint comparison.
type FileChange struct {
	Path    string     `json:"path"`
	Kind    ChangeKind `json:"kind"`
	OldHash string     `json:"oldHash,omitempty"`
	NewHash string     `json:"newHash,omitempty"`
}

// CompareResult is the outcome of comparing a set of expected fingerprints
// against the current state of the file system. It is the single source of
// truth for staleness decisions.
type CompareResult struct {
	Changed      []FileChange `json:"changed"`
	TotalChecked int          `json:"totalChecked"`
	ChangedCount int          `json:"changedCount"`
}
