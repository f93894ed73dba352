// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the arxivsearch packages:
// search records returned by the arXiv collaborator and the configuration of
// each component.
package types

import (
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// AuthorSearchBase is the arXiv listing URL used for author links.
const AuthorSearchBase = "https://arxiv.org/search/?searchtype=author&query="

// collaborationPrefix is boilerplate arXiv prepends to some collaboration names.
const collaborationPrefix = "in collaboration with"

// SearchResult is one paper record returned by the search collaborator.
// Records are immutable once fetched; formatting derives values from them
// and never writes back.
type SearchResult struct {
	// Title is the paper title with whitespace normalized.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// PrimaryCategory is the arXiv subject class (e.g. "cs.LG").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`

	// EntryID is the abstract page URL (e.g. "http://arxiv.org/abs/2301.07041v1").
	EntryID string `json:"entry_id" yaml:"entry_id"`

	// PDFURL links to the full-text PDF.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// DOI is empty when the paper has no registered DOI.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// JournalRef is empty when the paper has no journal reference.
	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`

	// Comment is the submitter comment (pages, figures).
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Summary is the abstract.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Published is the first-version submission time.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the latest-version submission time.
	Updated time.Time `json:"updated" yaml:"updated"`
}

// Author is a paper author as listed by arXiv.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// IsPlaceholder reports whether the name is a lone punctuation character,
// which arXiv emits for malformed author fields (most often ":").
func (a Author) IsPlaceholder() bool {
	name := strings.TrimSpace(a.Name)
	r, size := utf8.DecodeRuneInString(name)
	return size > 0 && size == len(name) && unicode.IsPunct(r)
}

// DisplayName returns the name with the collaboration boilerplate prefix removed.
func (a Author) DisplayName() string {
	if strings.HasPrefix(a.Name, collaborationPrefix) {
		return strings.TrimSpace(a.Name[len(collaborationPrefix):])
	}
	return a.Name
}

// SearchURL returns the arXiv author search URL for the display name.
func (a Author) SearchURL() string {
	return AuthorSearchBase + url.QueryEscape(a.DisplayName())
}
