package linkedin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

// SectionInfo records what a single pre-scan of the profile page learned
// about one section.
type SectionInfo struct {
	// Exists is true when the section's container element is on the page.
	Exists bool

	// Truncated is true when the page shows a "Show all N ..." affordance
	// for the section, meaning the inline view is capped and the full
	// list lives on a detail page.
	Truncated bool
}

// Metadata maps every known section to what the pre-scan found.
type Metadata map[profile.Section]SectionInfo

// Probe scans a rendered profile page once and reports, for every known
// section, whether its container exists and whether it is truncated.
// Absence is a fact, not an error.
func Probe(doc *goquery.Document) Metadata {
	// All "Show all" affordances share one span class; their concatenated
	// text is matched per section below.
	var nav strings.Builder
	doc.Find("span.pvs-navigation__text").Each(func(_ int, s *goquery.Selection) {
		nav.WriteString(s.Text())
		nav.WriteString(" ")
	})
	navText := nav.String()

	meta := make(Metadata, len(registry))
	for section, tpl := range registry {
		info := SectionInfo{}
		for _, id := range tpl.ids {
			if doc.Find("div#" + id).Length() > 0 {
				info.Exists = true
				break
			}
		}
		if tpl.showAll != nil && tpl.showAll.MatchString(navText) {
			info.Truncated = true
		}
		meta[section] = info
	}
	return meta
}

// container returns the section's container element, trying each
// candidate ID in order. ok is false when no candidate is on the page.
func container(doc *goquery.Document, tpl template) (sel *goquery.Selection, ok bool) {
	for _, id := range tpl.ids {
		if sel := doc.Find("div#" + id).First(); sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}
