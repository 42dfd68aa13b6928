// Package sifter provides maintenance jobs for the member memory store.
// It checks database connectivity, reports diagnostic counters, and sifts
// HTML-bearing blog posts into condensed plain-text digests.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, mysql/, goquery/).
package sifter
