// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pages

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText renders pages as plain text for a terminal. Markdown link syntax
// is kept so the output can be pasted into a chat client.
func WriteText(w io.Writer, pages []Page) {
	for i, p := range pages {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, strings.ReplaceAll(p.Title, "\n", " "))
		fmt.Fprintln(w, p.URL)
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, e := range p.Entries {
			fmt.Fprintln(w, e.Name)
			for _, line := range strings.Split(e.Value, "\n") {
				fmt.Fprintln(w, "    "+line)
			}
		}
		fmt.Fprintln(w, strings.Repeat("-", 80))
		fmt.Fprintln(w, p.FooterText())
	}
}

// WriteJSON writes pages as indented JSON.
func WriteJSON(w io.Writer, pages []Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pages)
}
