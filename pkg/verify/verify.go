// Package verify cross-references a parsed resume against public GitHub
// data, and optionally an extracted LinkedIn profile, producing a trust
// score with per-check results.
package verify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/vouch/pkg/github"
	"github.com/codeGROOVE-dev/vouch/pkg/profile"
	"github.com/codeGROOVE-dev/vouch/pkg/resume"
)

// Status classifies one check's outcome.
type Status string

// Check outcomes.
const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
	StatusInfo Status = "INFO"
)

// Check is one verification result.
type Check struct {
	Category    string `json:"category"`
	Item        string `json:"item"`
	ResumeValue string `json:"resumeValue"`
	SourceValue string `json:"sourceValue"`
	Details     string `json:"details,omitempty"`
	MatchScore  int    `json:"matchScore"`
	Status      Status `json:"status"`
}

// Report is the full verification outcome.
type Report struct {
	Summary string  `json:"summary"`
	Checks  []Check `json:"checks"`
	Score   int     `json:"score"`
}

// Engine runs verification checks for one candidate.
type Engine struct {
	logger   *slog.Logger
	resume   *resume.Resume
	github   *github.Account
	linkedin *profile.Document
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithLinkedIn adds an extracted LinkedIn profile for cross-checks.
func WithLinkedIn(doc *profile.Document) Option {
	return func(e *Engine) { e.linkedin = doc }
}

// New creates a verification Engine.
func New(r *resume.Resume, gh *github.Account, opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
		resume: r,
		github: gh,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Verify runs every applicable check and aggregates the trust score.
// The identity check carries double weight.
func (e *Engine) Verify() *Report {
	report := &Report{}
	report.Checks = append(report.Checks, e.checkIdentity())
	if c, ok := e.checkCompany(); ok {
		report.Checks = append(report.Checks, c)
	}
	report.Checks = append(report.Checks, e.checkSkills())
	if e.linkedin != nil {
		if c, ok := e.checkLinkedInEducation(); ok {
			report.Checks = append(report.Checks, c)
		}
		if c, ok := e.checkLinkedInExperience(); ok {
			report.Checks = append(report.Checks, c)
		}
	}

	total, count := 0, 0
	for _, c := range report.Checks {
		if c.Category == "Identity" {
			total += c.MatchScore * 2
			count += 2
		} else {
			total += c.MatchScore
			count++
		}
	}
	if count > 0 {
		report.Score = total / count
	}

	switch {
	case report.Score > 80:
		report.Summary = "High Trust: Resume aligns well with public profiles."
	case report.Score > 50:
		report.Summary = "Medium Trust: Some discrepancies found, worth manual review."
	default:
		report.Summary = "Low Trust: Significant mismatch between resume and public profiles."
	}

	e.logger.Info("verification complete", "score", report.Score, "checks", len(report.Checks))
	return report
}

func (e *Engine) checkIdentity() Check {
	resumeName := e.resume.Name
	githubName := e.github.User.Name

	score := TokenSortRatio(resumeName, githubName)
	status := StatusFail
	switch {
	case score > 80:
		status = StatusPass
	case score > 50:
		status = StatusWarn
	}
	return Check{
		Category:    "Identity",
		Item:        "Name Match",
		ResumeValue: resumeName,
		SourceValue: githubName,
		MatchScore:  score,
		Status:      status,
	}
}

// checkCompany looks for the GitHub-declared company in the resume's
// experience lines. Skipped when GitHub lists no company.
func (e *Engine) checkCompany() (Check, bool) {
	company := e.github.User.Company
	if company == "" {
		return Check{}, false
	}
	clean := strings.TrimSpace(strings.ReplaceAll(company, "@", ""))
	experience := strings.ToLower(strings.Join(e.resume.Experience, " "))

	score := PartialRatio(strings.ToLower(clean), experience)
	status := StatusWarn
	if score > 80 {
		status = StatusPass
	}
	return Check{
		Category:    "Professional",
		Item:        "Company Match",
		ResumeValue: "See Experience Section",
		SourceValue: company,
		MatchScore:  score,
		Status:      status,
		Details:     fmt.Sprintf("Checked for %q in resume experience.", clean),
	}, true
}

// checkSkills verifies claimed skills against repository languages and
// topics. Soft verification: unverified skills lower the rate but a
// skill GitHub cannot show is not penalized as a failure.
func (e *Engine) checkSkills() Check {
	var skills []string
	for _, line := range e.resume.Skills {
		for _, part := range strings.Split(line, ",") {
			if s := strings.TrimSpace(part); s != "" {
				skills = append(skills, s)
			}
		}
	}

	githubSkills := make(map[string]bool)
	for _, repo := range e.github.Repositories {
		if repo.Language != "" {
			githubSkills[strings.ToLower(repo.Language)] = true
		}
		for _, topic := range repo.Topics {
			githubSkills[strings.ToLower(topic)] = true
		}
	}

	var matched []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for gh := range githubSkills {
			if Ratio(lower, gh) > 85 {
				matched = append(matched, skill)
				break
			}
		}
	}

	rate := 0
	status := StatusInfo
	if len(skills) > 0 {
		rate = len(matched) * 100 / len(skills)
		status = StatusWarn
		if rate > 50 {
			status = StatusPass
		}
	}

	preview := matched
	if len(preview) > 5 {
		preview = preview[:5]
	}
	return Check{
		Category:    "Skills",
		Item:        "Skill Verification",
		ResumeValue: fmt.Sprintf("%d skills listed", len(skills)),
		SourceValue: fmt.Sprintf("%d languages and topics found", len(githubSkills)),
		MatchScore:  rate,
		Status:      status,
		Details:     fmt.Sprintf("Verified: %s", strings.Join(preview, ", ")),
	}
}

// checkLinkedInEducation matches LinkedIn schools against the resume's
// education section.
func (e *Engine) checkLinkedInEducation() (Check, bool) {
	var schools []string
	for _, rec := range e.linkedin.Sections[profile.SectionEducation] {
		if school := rec["school"]; school != "" {
			schools = append(schools, school)
		}
	}
	if len(schools) == 0 {
		return Check{}, false
	}

	rawText := strings.ToLower(e.resume.RawText)
	total := 0
	for _, school := range schools {
		best := 0
		if strings.Contains(rawText, strings.ToLower(school)) {
			best = 100
		} else {
			for _, line := range e.resume.Education {
				if score := TokenSortRatio(school, line); score > best {
					best = score
				}
			}
		}
		total += best
	}
	score := total / len(schools)

	status := StatusFail
	switch {
	case score > 80:
		status = StatusPass
	case score > 50:
		status = StatusWarn
	}
	return Check{
		Category:    "LinkedIn",
		Item:        "Education Match",
		ResumeValue: "See Education Section",
		SourceValue: strings.Join(schools, "; "),
		MatchScore:  score,
		Status:      status,
	}, true
}

// checkLinkedInExperience matches LinkedIn employers against the
// resume's experience section.
func (e *Engine) checkLinkedInExperience() (Check, bool) {
	var companies []string
	for _, rec := range e.linkedin.Sections[profile.SectionExperience] {
		if company := rec["company"]; company != "" {
			companies = append(companies, company)
		}
	}
	if len(companies) == 0 {
		return Check{}, false
	}

	experience := strings.ToLower(strings.Join(e.resume.Experience, " "))
	total := 0
	for _, company := range companies {
		total += PartialRatio(strings.ToLower(company), experience)
	}
	score := total / len(companies)

	status := StatusFail
	switch {
	case score > 80:
		status = StatusPass
	case score > 50:
		status = StatusWarn
	}
	return Check{
		Category:    "LinkedIn",
		Item:        "Employer Match",
		ResumeValue: "See Experience Section",
		SourceValue: strings.Join(companies, "; "),
		MatchScore:  score,
		Status:      status,
	}, true
}
