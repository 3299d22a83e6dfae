// Package linkedin extracts structured profile data from rendered
// LinkedIn profile pages.
//
// The package never fetches anything itself: the caller supplies the
// rendered page, and a Navigator collaborator for the detail pages of
// truncated sections. Extraction is failure-contained per section: a
// section that is missing, malformed, or unreachable yields one
// default-shaped record and never aborts the document.
package linkedin

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

var errNilPage = errors.New("nil page document")

// Navigator fetches one additional rendered page during extraction,
// typically a section detail page. Implementations are expected to
// throttle themselves between navigations.
type Navigator interface {
	Navigate(ctx context.Context, url string) (*goquery.Document, error)
}

// Scraper extracts a profile.Document from a rendered profile page.
type Scraper struct {
	logger *slog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// New creates a Scraper with the given options.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract walks a rendered profile page and assembles the full document:
// top-card scalars plus one ordered record sequence per known section.
// Truncated sections are fetched from their detail pages via nav; a nil
// nav degrades those sections to their inline view. The only error case
// is a nil page — every per-section failure is contained.
func (s *Scraper) Extract(ctx context.Context, doc *goquery.Document, profileURL string, nav Navigator) (*profile.Document, error) {
	if doc == nil {
		return nil, errNilPage
	}

	out := &profile.Document{
		URL:      profileURL,
		Sections: make(map[profile.Section][]profile.Record, len(registry)),
	}
	s.topCard(doc, out)

	meta := Probe(doc)
	for _, section := range profile.SectionOrder {
		out.Sections[section] = s.extractSection(ctx, doc, profileURL, nav, section, meta[section])
	}
	return out, nil
}

func (s *Scraper) extractSection(ctx context.Context, doc *goquery.Document, profileURL string, nav Navigator, section profile.Section, info SectionInfo) []profile.Record {
	tpl := registry[section]

	if !info.Exists {
		s.logger.DebugContext(ctx, "section absent", "section", section)
		return []profile.Record{defaultRecord(tpl)}
	}

	var items *goquery.Selection
	if info.Truncated && nav != nil {
		// The inline view caps at a few items; the detail page has the
		// full list.
		url := detailPath(profileURL, tpl.slug)
		detail, err := nav.Navigate(ctx, url)
		if err != nil {
			s.logger.WarnContext(ctx, "detail page navigation failed", "section", section, "url", url, "error", err)
			return []profile.Record{defaultRecord(tpl)}
		}
		items = pagedItems(detail)
	} else {
		items = inlineItems(doc, tpl)
	}

	var records []profile.Record
	if items != nil {
		items.Each(func(_ int, item *goquery.Selection) {
			records = append(records, s.assemble(ctx, section, tpl, item))
		})
	}
	if len(records) == 0 {
		s.logger.DebugContext(ctx, "section yielded no records", "section", section)
		return []profile.Record{defaultRecord(tpl)}
	}
	s.logger.DebugContext(ctx, "section extracted", "section", section, "records", len(records))
	return records
}

// assemble parses one list item into a fixed-shape record. A panicking
// parser costs only this item, which degrades to the default record.
func (s *Scraper) assemble(ctx context.Context, section profile.Section, tpl template, item *goquery.Selection) (rec profile.Record) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WarnContext(ctx, "item parse failed", "section", section, "panic", r)
			rec = defaultRecord(tpl)
		}
	}()

	rec = tpl.parse(fragments(tpl, item))
	if tpl.enrich != nil {
		tpl.enrich(item, rec)
	}
	// Guarantee the section's full field shape.
	for _, f := range tpl.fields {
		if _, ok := rec[f]; !ok {
			rec[f] = ""
		}
	}
	return rec
}

// fragments collects the accessibility texts of one list item, in
// document order, normalized, with empties dropped.
func fragments(tpl template, item *goquery.Selection) []string {
	scope := item
	if tpl.scoped {
		if header := item.Find("div.display-flex.flex-row.justify-space-between").First(); header.Length() > 0 {
			scope = header
		}
	}
	var frags []string
	scope.Find("span.visually-hidden").Each(func(_ int, span *goquery.Selection) {
		if text := Normalize(span.Text()); text != "" {
			frags = append(frags, text)
		}
	})
	return frags
}

// inlineItems returns the section's list items as rendered on the main
// profile page.
func inlineItems(doc *goquery.Document, tpl template) *goquery.Selection {
	sel, ok := container(doc, tpl)
	if !ok {
		return nil
	}
	// The container div is an anchor; the item list is its sibling ul.
	list := sel.Parent().Find("ul").First()
	if list.Length() == 0 {
		return nil
	}
	items := list.ChildrenFiltered("li").FilterFunction(func(_ int, li *goquery.Selection) bool {
		class, _ := li.Attr("class")
		return strings.Contains(class, "artdeco-list__item")
	})
	if items.Length() == 0 {
		return nil
	}
	return items
}

// pagedItems returns the list items of a section detail page.
func pagedItems(doc *goquery.Document) *goquery.Selection {
	items := doc.Find("main.scaffold-layout__main li.pvs-list__paged-list-item")
	if items.Length() == 0 {
		items = doc.Find("li.pvs-list__paged-list-item")
	}
	if items.Length() == 0 {
		return nil
	}
	return items
}
