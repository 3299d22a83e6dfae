// Package profile defines the common types for profile extraction and verification.
package profile

import (
	"errors"
)

// Common errors returned by source packages.
var (
	ErrNoCookies       = errors.New("no cookies available")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRateLimited     = errors.New("rate limited")
)

// Section identifies one LinkedIn profile section type.
type Section string

// Known profile section types, in output order.
const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionPublications   Section = "publications"
	SectionLanguages      Section = "languages"
	SectionHonors         Section = "honors"
	SectionCourses        Section = "courses"
	SectionVolunteering   Section = "volunteering"
	SectionSkills         Section = "skills"
)

// SectionOrder is the canonical ordering of sections in an extracted document.
var SectionOrder = []Section{
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
	SectionPublications,
	SectionLanguages,
	SectionHonors,
	SectionCourses,
	SectionVolunteering,
	SectionSkills,
}

// Record holds the named fields of one section entry. The field set is
// fixed per section type: every field is always present, with "" marking
// absent data. This keeps downstream consumers schema-stable regardless
// of how much LinkedIn actually rendered.
type Record map[string]string

// Empty reports whether no field of the record carries data.
func (r Record) Empty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// Badges holds the top-card status indicators of a profile.
type Badges struct {
	Connections string `json:"connectionCount,omitempty"`
	Followers   string `json:"followerCount,omitempty"`
	Premium     bool   `json:"isPremium,omitempty"`
	OpenToWork  bool   `json:"isOpenToWork,omitempty"`
	Hiring      bool   `json:"isHiring,omitempty"`
}

// Document is the top-level aggregate produced by one profile extraction.
// It is constructed once per page visit and not mutated afterwards.
type Document struct {
	URL      string `json:"url,omitempty"`
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Location string `json:"location,omitempty"`
	About    string `json:"about,omitempty"`

	PhotoURL      string `json:"profilePhotoUrl,omitempty"`
	BackgroundURL string `json:"backgroundPhotoUrl,omitempty"`

	Badges Badges `json:"metadata"`

	// One ordered record sequence per section type. Every section is
	// present with at least one record, even when all its fields are
	// absent.
	Sections map[Section][]Record `json:"sections"`
}
