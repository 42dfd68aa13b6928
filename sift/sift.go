// Package sift converts HTML blog posts into plain-text digests.
// Records are processed one at a time; each digest is committed before the
// next record is read, and a failing record never aborts the batch.
package sift

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sifter"
	"github.com/google/uuid"
)

// Outcome classifies what happened to a single source record.
type Outcome int

const (
	// OutcomeSifted means a digest was built and persisted.
	OutcomeSifted Outcome = iota
	// OutcomeEmpty means the record had no HTML content or no visible text.
	OutcomeEmpty
	// OutcomeMalformed means the payload could not be parsed.
	OutcomeMalformed
	// OutcomeDuplicate means an identical digest was already produced this run.
	OutcomeDuplicate
	// OutcomeFailed means text extraction or persistence failed.
	OutcomeFailed
)

// String returns the outcome name used in progress output.
func (o Outcome) String() string {
	switch o {
	case OutcomeSifted:
		return "sifted"
	case OutcomeEmpty:
		return "empty"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// RecordResult holds the outcome of processing one source record.
type RecordResult struct {
	Record      *sifter.SourceRecord
	Outcome     Outcome
	Digest      *sifter.Digest
	Fingerprint string
	Err         error
}

// Result summarizes a sifting run.
type Result struct {
	RunID      string
	Total      int
	Sifted     int
	Empty      int
	Malformed  int
	Duplicates int
	Failed     int
}

func (r *Result) add(rr RecordResult) {
	switch rr.Outcome {
	case OutcomeSifted:
		r.Sifted++
	case OutcomeEmpty:
		r.Empty++
	case OutcomeMalformed:
		r.Malformed++
	case OutcomeDuplicate:
		r.Duplicates++
	case OutcomeFailed:
		r.Failed++
	}
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRecord
	ProgressFinished
)

// ProgressEvent reports progress during a sifting run.
type ProgressEvent struct {
	Type      ProgressType
	RunID     string
	Completed int
	Total     int
	Result    *RecordResult
}

// ProgressFunc is a callback for reporting sifting progress.
type ProgressFunc func(event ProgressEvent)

// Sifter reads source records and writes one digest per record with
// extractable text.
type Sifter struct {
	Sources sifter.SourceService
	Digests sifter.DigestService

	// Text turns HTML into normalized text.
	Text sifter.TextExtractor

	// MainContent, if set, strips boilerplate before text extraction.
	MainContent sifter.Extractor

	Config sifter.DigestConfig

	// Limiter, if set, throttles digest inserts.
	Limiter sifter.Limiter

	// Dedupe skips records whose digest matches one produced earlier in the run.
	Dedupe bool

	// DryRun builds digests without persisting them.
	DryRun bool

	// Now returns the digest timestamp. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Sift processes every source record matching filter. Per-record failures
// are reported through progress and counted in the result. An error is
// returned only when records cannot be loaded or the run is canceled; in the
// latter case the partial result is returned with it.
func (s *Sifter) Sift(ctx context.Context, filter sifter.SourceFilter, progress ProgressFunc) (*Result, error) {
	records, err := s.Sources.FindSourceRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load source records: %w", err)
	}

	result := &Result{
		RunID: uuid.NewString(),
		Total: len(records),
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			RunID: result.RunID,
			Total: result.Total,
		})
	}

	seen := make(map[uint64]struct{})
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rr, err := s.siftRecord(ctx, rec, seen)
		if err != nil {
			return result, err
		}
		result.add(rr)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressRecord,
				RunID:     result.RunID,
				Completed: i + 1,
				Total:     result.Total,
				Result:    &rr,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			RunID:     result.RunID,
			Completed: result.Total,
			Total:     result.Total,
		})
	}

	return result, nil
}

// ExtractDigest parses a structured payload and returns the normalized text
// of its HTML content. It returns an empty string when there is nothing to
// extract and an EINVALID error when the payload is malformed. Failures of
// the HTML stages are returned as *ExtractError.
func (s *Sifter) ExtractDigest(payload string) (string, error) {
	html, err := sifter.ParsePayload(payload)
	if err != nil || html == "" {
		return "", err
	}
	text, err := s.extractText(html)
	if err != nil {
		return "", &ExtractError{Err: err}
	}
	return text, nil
}

// ExtractError reports that a well-formed payload could not be turned into
// text by the extractors.
type ExtractError struct {
	Err error
}

func (e *ExtractError) Error() string { return e.Err.Error() }

func (e *ExtractError) Unwrap() error { return e.Err }

// siftRecord processes one record. The returned error is non-nil only when
// the run must stop.
func (s *Sifter) siftRecord(ctx context.Context, rec *sifter.SourceRecord, seen map[uint64]struct{}) (RecordResult, error) {
	rr := RecordResult{Record: rec}

	text, err := s.ExtractDigest(rec.Payload)
	var extractErr *ExtractError
	switch {
	case errors.As(err, &extractErr):
		rr.Outcome, rr.Err = OutcomeFailed, err
		return rr, nil
	case err != nil:
		rr.Outcome, rr.Err = OutcomeMalformed, err
		return rr, nil
	case text == "":
		rr.Outcome = OutcomeEmpty
		return rr, nil
	}

	rr.Digest = sifter.BuildDigest(s.Config, rec.Title, text, s.now())

	sum := xxhash.Sum64String(rr.Digest.Content)
	rr.Fingerprint = fmt.Sprintf("%x", sum)
	if s.Dedupe {
		if _, ok := seen[sum]; ok {
			rr.Outcome = OutcomeDuplicate
			return rr, nil
		}
	}

	if !s.DryRun {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return rr, err
			}
		}
		if err := s.Digests.CreateDigest(ctx, rr.Digest); err != nil {
			rr.Outcome, rr.Err = OutcomeFailed, fmt.Errorf("save digest: %w", err)
			return rr, nil
		}
	}

	seen[sum] = struct{}{}
	rr.Outcome = OutcomeSifted
	return rr, nil
}

// extractText runs the optional main-content stage followed by the text
// extractor. Empty main content falls back to the full HTML.
func (s *Sifter) extractText(html string) (string, error) {
	if s.MainContent != nil {
		extracted, err := s.MainContent.Extract(html)
		if err != nil {
			return "", fmt.Errorf("extract main content: %w", err)
		}
		if strings.TrimSpace(extracted.ContentHTML) != "" {
			html = extracted.ContentHTML
		}
	}
	return s.Text.ExtractText(html)
}

func (s *Sifter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
