package sifter

import (
	"context"
	"fmt"
	"time"
)

// Digest represents a condensed plain-text record derived from a source
// record. Digests are stored as experience memory and are never updated.
type Digest struct {
	ID           int64     `json:"id"`
	SubjectID    int64     `json:"subjectId"`
	MemoryType   string    `json:"memoryType"`
	Content      string    `json:"content"`
	Confidence   float64   `json:"confidence"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	LastRecalled time.Time `json:"lastRecalled"`
}

// Validate returns an error if the digest contains invalid fields.
func (d *Digest) Validate() error {
	if d.MemoryType == "" {
		return Errorf(EINVALID, "digest memory type required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "digest content required")
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return Errorf(EINVALID, "digest confidence must be between 0 and 1, got %v", d.Confidence)
	}
	return nil
}

// DigestFilter represents a filter for CountDigests.
type DigestFilter struct {
	SubjectID *int64  `json:"subjectId"`
	Category  *string `json:"category"`
}

// DigestService represents a service for persisting digests.
type DigestService interface {
	// CreateDigest inserts a digest and commits it before returning.
	// The store assigns the digest ID.
	CreateDigest(ctx context.Context, d *Digest) error

	// CountDigests returns the number of digests matching the filter.
	CountDigests(ctx context.Context, filter DigestFilter) (int, error)
}

// Digest defaults for sifted blog posts.
const (
	DefaultSubjectID   = 999
	DefaultMemoryType  = "insight"
	DefaultConfidence  = 0.95
	DefaultCategory    = "transmission_digest"
	DefaultDigestLabel = "LUX TRANSMISSION DIGEST"
	DefaultMaxLength   = 5000
)

// DigestConfig holds the fixed metadata stamped onto every digest.
type DigestConfig struct {
	SubjectID  int64
	MemoryType string
	Confidence float64
	Category   string

	// Label prefixes the digest body ahead of the quoted title.
	Label string

	// MaxLength caps the digest body in characters. Zero disables the cap.
	MaxLength int
}

// DefaultDigestConfig returns the configuration used for transmission digests.
func DefaultDigestConfig() DigestConfig {
	return DigestConfig{
		SubjectID:  DefaultSubjectID,
		MemoryType: DefaultMemoryType,
		Confidence: DefaultConfidence,
		Category:   DefaultCategory,
		Label:      DefaultDigestLabel,
		MaxLength:  DefaultMaxLength,
	}
}

// BuildDigest combines the label, title and cleaned text into a digest body
// capped at cfg.MaxLength characters. Both timestamps are set to now.
func BuildDigest(cfg DigestConfig, title, text string, now time.Time) *Digest {
	body := fmt.Sprintf("%s: '%s'\n\n%s", cfg.Label, title, text)
	return &Digest{
		SubjectID:    cfg.SubjectID,
		MemoryType:   cfg.MemoryType,
		Content:      Truncate(body, cfg.MaxLength),
		Confidence:   cfg.Confidence,
		Category:     cfg.Category,
		CreatedAt:    now,
		LastRecalled: now,
	}
}
