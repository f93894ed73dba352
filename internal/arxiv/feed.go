// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "strings"

// arXiv Atom feed XML structures. Elements from the arxiv: and opensearch:
// namespaces match by local name.
type feed struct {
	TotalResults int     `xml:"totalResults"`
	Entries      []entry `xml:"entry"`
}

type entry struct {
	ID              string     `xml:"id"`
	Title           string     `xml:"title"`
	Summary         string     `xml:"summary"`
	Published       string     `xml:"published"`
	Updated         string     `xml:"updated"`
	Authors         []author   `xml:"author"`
	Links           []link     `xml:"link"`
	DOI             string     `xml:"doi"`
	JournalRef      string     `xml:"journal_ref"`
	Comment         string     `xml:"comment"`
	PrimaryCategory category   `xml:"primary_category"`
	Categories      []category `xml:"category"`
}

type author struct {
	Name string `xml:"name"`
}

type link struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

type category struct {
	Term string `xml:"term,attr"`
}

// isError reports whether the entry is the API's in-band error report
// (id "http://arxiv.org/api/errors#...").
func (e entry) isError() bool {
	return strings.Contains(e.ID, "/api/errors")
}

// pdfLink returns the href of the PDF alternate link, if any.
func (e entry) pdfLink() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return ""
}

// primaryCategory falls back to the first listed category when the
// arxiv:primary_category element is missing.
func (e entry) primaryCategory() string {
	if e.PrimaryCategory.Term != "" {
		return e.PrimaryCategory.Term
	}
	if len(e.Categories) > 0 {
		return e.Categories[0].Term
	}
	return ""
}

// normalizeWhitespace collapses the line breaks and indentation arXiv leaves
// in titles and abstracts.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
