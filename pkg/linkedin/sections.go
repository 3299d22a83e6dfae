package linkedin

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

// template describes how one section type is located and parsed. The
// registry below keys every known section to its template; adding a
// section means adding an entry, not another branch.
type template struct {
	// ids are the candidate container element IDs, first match wins.
	// LinkedIn uses alternate IDs for some sections (e.g. "honors" vs
	// "honors_and_awards").
	ids []string

	// slug is the path segment of the section's detail page:
	// <profile-root>/details/<slug>/.
	slug string

	// showAll matches the section's "Show all N ..." affordance text.
	// nil means the section never paginates (courses).
	showAll *regexp.Regexp

	// scoped restricts fragment collection to the item's header row.
	// Some section items nest unrelated hidden spans below it.
	scoped bool

	// fields is the fixed record shape for this section type.
	fields []string

	// parse maps an ordered fragment list to named fields. It may
	// return a partially filled record; the assembler guarantees shape.
	parse func(frags []string) profile.Record

	// enrich optionally pulls non-fragment data (links, descriptions)
	// from the list item's DOM after fragment parsing.
	enrich func(item *goquery.Selection, rec profile.Record)
}

var registry = map[profile.Section]template{
	profile.SectionExperience: {
		ids:     []string{"experience"},
		slug:    "experience",
		showAll: regexp.MustCompile(`Show all \d+ experiences`),
		scoped:  true,
		fields: []string{
			"title", "company", "employmentType",
			"startDate", "endDate", "duration",
			"location", "locationType",
		},
		parse: parseExperience,
	},
	profile.SectionEducation: {
		ids:     []string{"education"},
		slug:    "education",
		showAll: regexp.MustCompile(`Show all \d+ education`),
		scoped:  true,
		fields: []string{
			"school", "degree", "fieldOfStudy",
			"startDate", "endDate", "duration",
		},
		parse: parseEducation,
	},
	profile.SectionCertifications: {
		ids:     []string{"licenses_and_certifications", "certifications"},
		slug:    "certifications",
		showAll: regexp.MustCompile(`Show all \d+ certificates?`),
		fields: []string{
			"name", "issuer", "issueDate", "expirationDate",
			"credentialId", "credentialUrl",
		},
		parse:  parseCertification,
		enrich: enrichCertification,
	},
	profile.SectionProjects: {
		ids:     []string{"projects"},
		slug:    "projects",
		showAll: regexp.MustCompile(`Show all \d+ projects?`),
		fields: []string{
			"name", "description", "url",
			"startDate", "endDate", "associatedWith",
		},
		parse:  parseProject,
		enrich: enrichProject,
	},
	profile.SectionPublications: {
		ids:     []string{"publications"},
		slug:    "publications",
		showAll: regexp.MustCompile(`Show all \d+ publications?`),
		fields: []string{
			"title", "publisher", "publicationDate", "description", "url",
		},
		parse:  parsePublication,
		enrich: enrichPublication,
	},
	profile.SectionLanguages: {
		ids:     []string{"languages"},
		slug:    "languages",
		showAll: regexp.MustCompile(`Show all \d+ languages?`),
		fields:  []string{"language", "proficiency"},
		parse:   parseLanguage,
	},
	profile.SectionHonors: {
		ids:     []string{"honors", "honors_and_awards"},
		slug:    "honors",
		showAll: regexp.MustCompile(`Show all \d+ honors?`),
		fields:  []string{"title", "issuer", "date", "description"},
		parse:   parseHonor,
	},
	profile.SectionCourses: {
		// Courses render inline only; LinkedIn exposes no "show all"
		// affordance for them.
		ids:    []string{"courses"},
		slug:   "courses",
		fields: []string{"name", "number", "associatedWith"},
		parse:  parseCourse,
	},
	profile.SectionVolunteering: {
		ids:     []string{"volunteer", "volunteering_experience"},
		slug:    "volunteering-experiences",
		showAll: regexp.MustCompile(`Show all \d+ volunteer experiences`),
		scoped:  true,
		fields: []string{
			"role", "organisation",
			"startDate", "endDate", "duration", "cause",
		},
		parse: parseVolunteering,
	},
	profile.SectionSkills: {
		ids:     []string{"skills"},
		slug:    "skills",
		showAll: regexp.MustCompile(`Show all \d+ skills`),
		scoped:  true,
		fields:  []string{"skill"},
		parse:   parseSkill,
	},
}

// defaultRecord returns an all-absent record with the section's fixed shape.
func defaultRecord(tpl template) profile.Record {
	rec := make(profile.Record, len(tpl.fields))
	for _, f := range tpl.fields {
		rec[f] = ""
	}
	return rec
}

// detailPath builds the detail-page path for a truncated section.
func detailPath(profileURL, slug string) string {
	return strings.TrimSuffix(profileURL, "/") + "/details/" + slug + "/"
}
