// Package resume extracts structured data from resume PDFs: candidate
// name, skill / experience / education lines, and GitHub and LinkedIn
// profile links.
package resume

import (
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

var (
	githubLinkRe   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)
	linkedinLinkRe = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)
)

// Section header keywords, matched case-insensitively against short lines.
var (
	skillsHeaders     = []string{"skills", "technologies", "competencies"}
	experienceHeaders = []string{"experience", "employment", "work history"}
	educationHeaders  = []string{"education", "academic"}

	// allHeaders ends the current section when another one begins.
	allHeaders = []string{
		"education", "experience", "skills", "projects",
		"languages", "volunteering", "certifications",
	}
)

// Resume is the parsed content of one resume PDF.
type Resume struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	GitHub     string   `json:"github,omitempty"`
	LinkedIn   string   `json:"linkedin,omitempty"`
	RawText    string   `json:"-"`
}

// Parse reads a resume PDF and extracts its structured content. Text
// extraction tries the Go PDF library first and falls back to the
// pdftotext binary for PDFs it cannot handle.
func Parse(path string, logger *slog.Logger) (*Resume, error) {
	if logger == nil {
		logger = slog.Default()
	}
	text, err := extractText(path)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Debug("pdf library extraction failed, trying pdftotext", "path", path, "error", err)
		text, err = extractPdftotext(path)
		if err != nil {
			return nil, fmt.Errorf("extract text from %s: %w", path, err)
		}
	}
	return ParseText(text), nil
}

// ParseText parses already-extracted resume text.
func ParseText(text string) *Resume {
	r := &Resume{RawText: text}
	lines := strings.Split(text, "\n")

	// The first non-empty line is taken as the candidate's name.
	for _, line := range lines {
		if clean := strings.TrimSpace(line); clean != "" {
			r.Name = clean
			break
		}
	}

	r.Skills = captureSection(lines, skillsHeaders)
	r.Experience = captureSection(lines, experienceHeaders)
	r.Education = captureSection(lines, educationHeaders)

	if m := githubLinkRe.FindStringSubmatch(text); m != nil {
		r.GitHub = m[1]
	}
	if m := linkedinLinkRe.FindStringSubmatch(text); m != nil {
		r.LinkedIn = m[1]
	}
	return r
}

// captureSection collects the non-empty lines between a section header
// and the next recognizable header.
func captureSection(lines, keywords []string) []string {
	var captured []string
	inSection := false

	for _, line := range lines {
		clean := strings.ToLower(strings.TrimSpace(line))

		if isHeader(clean, keywords) {
			inSection = true
			continue
		}
		if inSection && isOtherHeader(clean, keywords) {
			inSection = false
		}
		if inSection && strings.TrimSpace(line) != "" {
			captured = append(captured, strings.TrimSpace(line))
		}
	}
	return captured
}

// isHeader reports whether a short line contains one of the keywords.
func isHeader(clean string, keywords []string) bool {
	if len(clean) >= 30 {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(clean, kw) {
			return true
		}
	}
	return false
}

// isOtherHeader reports whether a short line starts a different section.
func isOtherHeader(clean string, keywords []string) bool {
	if len(clean) >= 30 {
		return false
	}
	for _, h := range allHeaders {
		skip := false
		for _, kw := range keywords {
			if h == kw {
				skip = true
				break
			}
		}
		if !skip && strings.Contains(clean, h) {
			return true
		}
	}
	return false
}

func extractText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
