package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

// Top-card extraction. LinkedIn reworks these class names regularly, so
// every scalar has a chain of fallback selectors; the first hit wins and
// a full miss leaves the field empty.

var backgroundURLRe = regexp.MustCompile(`url\(["']?([^"']+)["']?\)`)

func (s *Scraper) topCard(doc *goquery.Document, out *profile.Document) {
	out.Name = extractName(doc)
	out.Headline = extractHeadline(doc)
	out.Location = extractLocation(doc)
	out.About = extractAbout(doc)
	out.PhotoURL = extractPhotoURL(doc)
	out.BackgroundURL = extractBackgroundURL(doc)
	out.Badges = extractBadges(doc)
}

func extractName(doc *goquery.Document) string {
	if h1 := doc.Find("div.pv-text-details__left-panel h1").First(); h1.Length() > 0 {
		return Normalize(h1.Text())
	}
	if h1 := doc.Find(`h1[class*="text-heading-xlarge"]`).First(); h1.Length() > 0 {
		return Normalize(h1.Text())
	}
	if h1 := doc.Find(`div[class*="pv-top-card"] h1`).First(); h1.Length() > 0 {
		return Normalize(h1.Text())
	}
	return ""
}

func extractHeadline(doc *goquery.Document) string {
	if div := doc.Find("div.text-body-medium.break-words").First(); div.Length() > 0 {
		return Normalize(div.Text())
	}
	// The headline usually sits right under the name block.
	details := doc.Find("div.pv-text-details__left-panel").First()
	if divs := details.ChildrenFiltered("div"); divs.Length() >= 2 {
		return Normalize(divs.Eq(1).Text())
	}
	if div := doc.Find(`div[class*="headline"]`).First(); div.Length() > 0 {
		return Normalize(div.Text())
	}
	return ""
}

func extractLocation(doc *goquery.Document) string {
	if span := doc.Find("span.text-body-small.inline.t-black--light.break-words").First(); span.Length() > 0 {
		return Normalize(span.Text())
	}
	if span := doc.Find(`div.pv-text-details__left-panel span[class*="text-body-small"]`).First(); span.Length() > 0 {
		return Normalize(span.Text())
	}
	var found string
	doc.Find(`span[class*="text-body-small"]`).EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if len(text) > 3 && len(text) < 100 {
			found = Normalize(text)
			return false
		}
		return true
	})
	return found
}

func extractAbout(doc *goquery.Document) string {
	section := doc.Find("section#about").First()
	if section.Length() == 0 {
		section = doc.Find("div#about").First()
	}
	if section.Length() == 0 {
		return ""
	}
	// The anchor div is empty; the text lives in the shared parent.
	scope := section
	if scope.Find("span.visually-hidden").Length() == 0 {
		scope = section.Parent()
	}
	if span := scope.Find("span.visually-hidden").First(); span.Length() > 0 {
		return Normalize(span.Text())
	}
	if div := scope.Find("div.display-flex.ph5.pv3").First(); div.Length() > 0 {
		return Normalize(div.Text())
	}
	return ""
}

func extractPhotoURL(doc *goquery.Document) string {
	img := doc.Find("img.pv-top-card-profile-picture__image").First()
	if img.Length() == 0 {
		img = doc.Find(`img[class*="profile-photo"]`).First()
	}
	if img.Length() == 0 {
		return ""
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	// Lazy-loaded images park the URL here instead.
	src, _ := img.Attr("data-delayed-url")
	return src
}

func extractBackgroundURL(doc *goquery.Document) string {
	banner := doc.Find(`div[class*="profile-background-image"]`).First()
	if banner.Length() == 0 {
		return ""
	}
	style, _ := banner.Attr("style")
	if m := backgroundURLRe.FindStringSubmatch(style); m != nil {
		return m[1]
	}
	return ""
}

func extractBadges(doc *goquery.Document) profile.Badges {
	var badges profile.Badges

	// "500+ connections" renders the count in a bold span; the counts
	// appear in no fixed order, so scan for the labelled one.
	doc.Find("span.t-bold").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(span.Parent().Text()), "connection") {
			count := strings.TrimSpace(span.Text())
			count = strings.ReplaceAll(count, ",", "")
			count = strings.ReplaceAll(count, "+", "")
			badges.Connections = count
			return false
		}
		return true
	})
	doc.Find("span.t-bold").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(span.Parent().Text()), "follower") {
			badges.Followers = strings.ReplaceAll(strings.TrimSpace(span.Text()), ",", "")
			return false
		}
		return true
	})

	badges.Premium = doc.Find(`span[class*="premium"], span[class*="Premium"]`).Length() > 0
	doc.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := span.Text()
		if strings.Contains(text, "Open to work") {
			badges.OpenToWork = true
		}
		if strings.Contains(text, "Hiring") {
			badges.Hiring = true
		}
		return !(badges.OpenToWork && badges.Hiring)
	})
	return badges
}
