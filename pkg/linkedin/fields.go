package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

// Field extractors map an ordered fragment list to named fields. LinkedIn
// omits trailing fragments rather than padding, so every read is guarded
// by a length check. Composite fragments are split on "·" and classified
// by keyword where position is unreliable.

var yearRangeRe = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)

// employmentTypes are the values LinkedIn renders when a company fragment
// carries only the employment type.
var employmentTypes = map[string]bool{
	"Full-time":     true,
	"Part-time":     true,
	"Self-employed": true,
	"Freelance":     true,
	"Internship":    true,
	"Trainee":       true,
}

// locationTypes are the values LinkedIn renders for work arrangement.
var locationTypes = map[string]bool{
	"Remote":  true,
	"On-site": true,
	"Hybrid":  true,
}

// splitDot splits a composite fragment on the "·" separator and trims
// each segment, dropping empties.
func splitDot(s string) []string {
	parts := strings.Split(s, "·")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitDateRange splits "May 2023 - Present · 1 yr 2 mos" into start,
// end, and duration. Any part may come back empty.
func splitDateRange(s string) (start, end, duration string) {
	parts := splitDot(s)
	if len(parts) == 0 {
		return "", "", ""
	}
	if len(parts) > 1 {
		duration = parts[1]
	}
	dates := strings.SplitN(parts[0], "-", 2)
	start = strings.TrimSpace(dates[0])
	if len(dates) > 1 {
		end = strings.TrimSpace(dates[1])
	}
	return start, end, duration
}

func parseExperience(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["title"] = frags[0]
	}
	if len(frags) >= 2 {
		// "Company · Full-time", or just one of the two.
		parts := splitDot(frags[1])
		switch len(parts) {
		case 1:
			if employmentTypes[parts[0]] {
				rec["employmentType"] = parts[0]
			} else {
				rec["company"] = parts[0]
			}
		default:
			if len(parts) >= 2 {
				rec["company"] = parts[0]
				rec["employmentType"] = parts[1]
			}
		}
	}
	if len(frags) >= 3 {
		rec["startDate"], rec["endDate"], rec["duration"] = splitDateRange(frags[2])
	}
	if len(frags) >= 4 {
		// "Bengaluru, India · On-site", or just one of the two.
		parts := splitDot(frags[3])
		switch len(parts) {
		case 1:
			if locationTypes[parts[0]] {
				rec["locationType"] = parts[0]
			} else {
				rec["location"] = parts[0]
			}
		default:
			if len(parts) >= 2 {
				rec["location"] = parts[0]
				rec["locationType"] = parts[1]
			}
		}
	}
	return rec
}

// parseDegree splits "B.Tech, Computer Science" into degree and field of
// study; a lone value is the degree.
func parseDegree(s string, rec profile.Record) {
	parts := strings.SplitN(s, ",", 2)
	rec["degree"] = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		rec["fieldOfStudy"] = strings.TrimSpace(parts[1])
	}
}

// parseYearSpan fills startDate/endDate from "2019 - 2023" and computes
// the span in years when both ends parse as plain years.
func parseYearSpan(s string, rec profile.Record) {
	dates := strings.SplitN(s, "-", 2)
	rec["startDate"] = strings.TrimSpace(dates[0])
	if len(dates) > 1 {
		rec["endDate"] = strings.TrimSpace(dates[1])
	}
	start, end := yearOf(rec["startDate"]), yearOf(rec["endDate"])
	if start > 0 && end > 0 {
		diff := end - start
		if diff < 0 {
			diff = -diff
		}
		rec["duration"] = itoa(diff)
	}
}

func yearOf(s string) int {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [8]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

func parseEducation(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["school"] = frags[0]
	}
	switch {
	case len(frags) >= 3:
		parseDegree(frags[1], rec)
		parseYearSpan(frags[2], rec)
	case len(frags) == 2:
		// The second fragment is either the degree or the duration;
		// a year range decides which.
		if yearRangeRe.MatchString(frags[1]) {
			parseYearSpan(frags[1], rec)
		} else {
			parseDegree(frags[1], rec)
		}
	}
	return rec
}

func parseCertification(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["name"] = frags[0]
	}
	if len(frags) >= 2 {
		rec["issuer"] = frags[1]
	}
	if len(frags) >= 3 {
		// "Issued Mar 2023 · Expires Mar 2026" — classify each segment
		// by keyword, not position: either side may be missing.
		for _, part := range splitDot(frags[2]) {
			switch {
			case strings.Contains(part, "No Expiration"):
				rec["expirationDate"] = "No Expiration"
			case strings.HasPrefix(part, "Issued"):
				rec["issueDate"] = strings.TrimSpace(strings.TrimPrefix(part, "Issued"))
			case strings.HasPrefix(part, "Expires"):
				rec["expirationDate"] = strings.TrimSpace(strings.TrimPrefix(part, "Expires"))
			}
		}
	}
	if len(frags) >= 4 && strings.Contains(frags[3], "Credential ID") {
		rec["credentialId"] = strings.TrimSpace(strings.ReplaceAll(frags[3], "Credential ID", ""))
	}
	return rec
}

func enrichCertification(item *goquery.Selection, rec profile.Record) {
	if href, ok := item.Find("a.optional-action-target-wrapper").First().Attr("href"); ok {
		rec["credentialUrl"] = href
	}
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func parseProject(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["name"] = frags[0]
	}
	if len(frags) >= 2 {
		// Either a date range or the associated entity.
		if strings.Contains(frags[1], "-") && hasDigit(frags[1]) {
			dates := strings.SplitN(frags[1], "-", 2)
			rec["startDate"] = strings.TrimSpace(dates[0])
			if len(dates) > 1 {
				rec["endDate"] = strings.TrimSpace(dates[1])
			}
		} else {
			rec["associatedWith"] = frags[1]
		}
	}
	if len(frags) >= 3 && rec["associatedWith"] == "" {
		rec["associatedWith"] = frags[2]
	}
	return rec
}

func enrichProject(item *goquery.Selection, rec profile.Record) {
	if rec["description"] == "" {
		desc := item.Find(`div[class*="display-flex"] span[aria-hidden="true"]`).Last()
		if desc.Length() > 0 {
			rec["description"] = Normalize(desc.Text())
		}
	}
	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, "http") {
			rec["url"] = href
			return false
		}
		return true
	})
}

func parsePublication(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["title"] = frags[0]
	}
	if len(frags) >= 2 {
		// Publisher and date arrive combined: "IEEE, Jun 2022".
		parts := strings.SplitN(frags[1], ",", 2)
		rec["publisher"] = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			rec["publicationDate"] = strings.TrimSpace(parts[1])
		}
	}
	if len(frags) >= 3 {
		rec["description"] = frags[2]
	}
	return rec
}

func enrichPublication(item *goquery.Selection, rec profile.Record) {
	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, "http") {
			rec["url"] = href
			return false
		}
		return true
	})
}

func parseLanguage(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["language"] = frags[0]
	}
	if len(frags) >= 2 {
		rec["proficiency"] = frags[1]
	}
	return rec
}

func parseHonor(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["title"] = frags[0]
	}
	if len(frags) >= 2 {
		rec["issuer"] = frags[1]
	}
	if len(frags) >= 3 {
		rec["date"] = frags[2]
	}
	if len(frags) >= 4 {
		rec["description"] = frags[3]
	}
	return rec
}

func parseCourse(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		// Sometimes "Course Name · Course Number".
		parts := splitDot(frags[0])
		if len(parts) > 0 {
			rec["name"] = parts[0]
		}
		if len(parts) > 1 {
			rec["number"] = parts[1]
		}
	}
	if len(frags) >= 2 {
		rec["associatedWith"] = frags[1]
	}
	return rec
}

func parseVolunteering(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["role"] = frags[0]
	}
	if len(frags) >= 2 {
		rec["organisation"] = frags[1]
	}
	switch {
	case len(frags) >= 4:
		rec["startDate"], rec["endDate"], rec["duration"] = splitDateRange(frags[2])
		rec["cause"] = frags[3]
	case len(frags) == 3:
		// The third fragment is either the date range or the cause.
		if yearRangeRe.MatchString(frags[2]) {
			rec["startDate"], rec["endDate"], rec["duration"] = splitDateRange(frags[2])
		} else {
			rec["cause"] = frags[2]
		}
	}
	return rec
}

func parseSkill(frags []string) profile.Record {
	rec := profile.Record{}
	if len(frags) >= 1 {
		rec["skill"] = frags[0]
	}
	return rec
}
