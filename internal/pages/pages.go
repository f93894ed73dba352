// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pages turns an ordered list of search records into display pages
// of at most PageSize entries each. It performs no I/O; the caller hands the
// pages to whatever paging UI it uses.
package pages

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/arxivsearch/pkg/types"
)

const (
	// PageSize is the maximum number of entries on one page.
	PageSize = 5

	// MaxAuthors is the number of authors linked per entry.
	MaxAuthors = 5

	// Attribution is the second footer line arXiv asks API users to show.
	Attribution = "Thank you to arXiv for use of its open access interoperability."

	searchBase = "https://arxiv.org/search/?query="
	doiBase    = "https://dx.doi.org/"
	dateLayout = "2006-01-02"
	delimiter  = " | "
)

// Entry is one formatted record.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Page is a group of entries shown together, with metadata shared by every
// page of the same query.
type Page struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Entries []Entry `json:"entries"`

	// Number is the 1-based page index.
	Number int `json:"number"`

	// Total is the number of pages for the query.
	Total int `json:"total"`

	// Count is the number of records across all pages.
	Count int `json:"count"`

	// Footer is the page position line, e.g. "Page 1/2 of 7 results.".
	Footer string `json:"footer"`
}

// FooterText returns the footer followed by the arXiv attribution line.
func (p Page) FooterText() string {
	return p.Footer + "\n" + Attribution
}

// Build formats results into ceil(len(results)/PageSize) pages. Entries keep
// the order of results. Build returns nil for an empty slice; callers
// report "no results" before formatting.
func Build(query string, results []types.SearchResult) []Page {
	if len(results) == 0 {
		return nil
	}

	total := (len(results) + PageSize - 1) / PageSize
	title := "arXiv search results for:\n**" + query + "**"
	link := SearchURL(query)

	out := make([]Page, total)
	for i := range out {
		out[i] = Page{
			Title:   title,
			URL:     link,
			Number:  i + 1,
			Total:   total,
			Count:   len(results),
			Entries: make([]Entry, 0, PageSize),
		}
	}

	for i, r := range results {
		p := &out[i/PageSize]
		p.Entries = append(p.Entries, FormatEntry(i+1, r))
		p.Footer = fmt.Sprintf("Page %d/%d of %d results.", p.Number, total, len(results))
	}
	return out
}

// SearchURL returns the arXiv website search link for query.
func SearchURL(query string) string {
	return searchBase + url.QueryEscape(query) + "&searchtype=all&source=header"
}

// FormatEntry builds the entry for the record at 1-based position seq.
func FormatEntry(seq int, r types.SearchResult) Entry {
	value := strings.Join([]string{
		FormatAuthors(r.Authors),
		FormatDates(r),
		FormatLinks(r),
	}, "\n")
	return Entry{
		Name:  fmt.Sprintf("%d) %s [%s]", seq, r.Title, r.PrimaryCategory),
		Value: value,
	}
}

// FormatAuthors links the first MaxAuthors real authors to their arXiv
// author search. Placeholder names are skipped and not counted. When the
// record lists more than MaxAuthors names, a trailing " and N others."
// reports the real authors left out.
func FormatAuthors(authors []types.Author) string {
	links := make([]string, 0, MaxAuthors)
	named := 0
	for _, a := range authors {
		if a.IsPlaceholder() {
			continue
		}
		named++
		if len(links) < MaxAuthors {
			links = append(links, fmt.Sprintf("[**%s**](%s)", a.DisplayName(), a.SearchURL()))
		}
	}

	s := strings.Join(links, delimiter)
	if len(authors) > MaxAuthors {
		s += fmt.Sprintf(" and %d others.", named-len(links))
	}
	return s
}

// FormatLinks returns the abstract, optional DOI, and PDF links.
func FormatLinks(r types.SearchResult) string {
	links := []string{fmt.Sprintf("[**Link**](%s)", secure(r.EntryID))}
	if r.DOI != "" {
		links = append(links, fmt.Sprintf("[**DOI**](%s%s)", doiBase, r.DOI))
	}
	links = append(links, fmt.Sprintf("[**PDF**](%s)", secure(r.PDFURL)))
	return strings.Join(links, delimiter)
}

// FormatDates returns the submission line, with the update date only when it
// falls on a different day, preceded by the journal reference when present.
func FormatDates(r types.SearchResult) string {
	submitted := r.Published.UTC().Format(dateLayout)
	updated := r.Updated.UTC().Format(dateLayout)

	s := "Submitted: " + submitted
	if updated != submitted {
		s += delimiter + "Updated: " + updated
	}
	if r.JournalRef != "" {
		s = r.JournalRef + "\n" + s
	}
	return s
}

// secure upgrades an http URL to https.
func secure(u string) string {
	if rest, ok := strings.CutPrefix(u, "http://"); ok {
		return "https://" + rest
	}
	return u
}
