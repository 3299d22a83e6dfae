package linkedin

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  profile.Record
	}{
		{
			name: "all four fragments",
			frags: []string{
				"Software Engineer",
				"Acme Corp · Full-time",
				"May 2023 - Present · 1 yr 2 mos",
				"Bengaluru, India · On-site",
			},
			want: profile.Record{
				"title":          "Software Engineer",
				"company":        "Acme Corp",
				"employmentType": "Full-time",
				"startDate":      "May 2023",
				"endDate":        "Present",
				"duration":       "1 yr 2 mos",
				"location":       "Bengaluru, India",
				"locationType":   "On-site",
			},
		},
		{
			name:  "lone employment type",
			frags: []string{"Intern", "Internship"},
			want: profile.Record{
				"title":          "Intern",
				"employmentType": "Internship",
			},
		},
		{
			name:  "lone company",
			frags: []string{"Developer", "Acme Corp"},
			want: profile.Record{
				"title":   "Developer",
				"company": "Acme Corp",
			},
		},
		{
			name: "lone location type and no duration",
			frags: []string{
				"Developer",
				"Acme Corp",
				"Jan 2020 - Jan 2021",
				"Remote",
			},
			want: profile.Record{
				"title":        "Developer",
				"company":      "Acme Corp",
				"startDate":    "Jan 2020",
				"endDate":      "Jan 2021",
				"duration":     "",
				"locationType": "Remote",
			},
		},
		{
			name:  "title only",
			frags: []string{"Consultant"},
			want:  profile.Record{"title": "Consultant"},
		},
		{
			name:  "no fragments",
			frags: nil,
			want:  profile.Record{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseExperience(tc.frags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseExperience mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEducation(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  profile.Record
	}{
		{
			name:  "school degree and years",
			frags: []string{"IIT Bhilai", "B.Tech, Computer Science", "2019 - 2023"},
			want: profile.Record{
				"school":       "IIT Bhilai",
				"degree":       "B.Tech",
				"fieldOfStudy": "Computer Science",
				"startDate":    "2019",
				"endDate":      "2023",
				"duration":     "4",
			},
		},
		{
			name:  "second fragment is a degree",
			frags: []string{"MIT", "MSc"},
			want: profile.Record{
				"school": "MIT",
				"degree": "MSc",
			},
		},
		{
			name:  "second fragment is a year range",
			frags: []string{"MIT", "2018 - 2020"},
			want: profile.Record{
				"school":    "MIT",
				"startDate": "2018",
				"endDate":   "2020",
				"duration":  "2",
			},
		},
		{
			name:  "school only",
			frags: []string{"Stanford University"},
			want:  profile.Record{"school": "Stanford University"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseEducation(tc.frags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseEducation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCertification(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  profile.Record
	}{
		{
			name: "issued and expires",
			frags: []string{
				"AWS Certified Solutions Architect",
				"Amazon Web Services",
				"Issued Mar 2023 · Expires Mar 2026",
				"Credential ID ABC-123",
			},
			want: profile.Record{
				"name":           "AWS Certified Solutions Architect",
				"issuer":         "Amazon Web Services",
				"issueDate":      "Mar 2023",
				"expirationDate": "Mar 2026",
				"credentialId":   "ABC-123",
			},
		},
		{
			name:  "no expiration",
			frags: []string{"CKA", "CNCF", "Issued Jan 2022 · No Expiration"},
			want: profile.Record{
				"name":           "CKA",
				"issuer":         "CNCF",
				"issueDate":      "Jan 2022",
				"expirationDate": "No Expiration",
			},
		},
		{
			name:  "issue date only",
			frags: []string{"CKA", "CNCF", "Issued Jan 2022"},
			want: profile.Record{
				"name":      "CKA",
				"issuer":    "CNCF",
				"issueDate": "Jan 2022",
			},
		},
		{
			name:  "fourth fragment without credential marker is dropped",
			frags: []string{"CKA", "CNCF", "Issued Jan 2022", "See credential"},
			want: profile.Record{
				"name":      "CKA",
				"issuer":    "CNCF",
				"issueDate": "Jan 2022",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseCertification(tc.frags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseCertification mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseProject(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  profile.Record
	}{
		{
			name:  "second fragment is a date range",
			frags: []string{"Chess Engine", "Jan 2022 - Mar 2022"},
			want: profile.Record{
				"name":      "Chess Engine",
				"startDate": "Jan 2022",
				"endDate":   "Mar 2022",
			},
		},
		{
			name:  "second fragment is the associated entity",
			frags: []string{"Chess Engine", "IIT Bhilai"},
			want: profile.Record{
				"name":           "Chess Engine",
				"associatedWith": "IIT Bhilai",
			},
		},
		{
			name:  "dates then associated entity",
			frags: []string{"Chess Engine", "Jan 2022 - Mar 2022", "IIT Bhilai"},
			want: profile.Record{
				"name":           "Chess Engine",
				"startDate":      "Jan 2022",
				"endDate":        "Mar 2022",
				"associatedWith": "IIT Bhilai",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseProject(tc.frags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseProject mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePublication(t *testing.T) {
	got := parsePublication([]string{"Attention Is Not Enough", "IEEE, Jun 2022", "A study of attention."})
	want := profile.Record{
		"title":           "Attention Is Not Enough",
		"publisher":       "IEEE",
		"publicationDate": "Jun 2022",
		"description":     "A study of attention.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsePublication mismatch (-want +got):\n%s", diff)
	}
}

func TestParseVolunteering(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		want  profile.Record
	}{
		{
			name:  "third fragment is a cause",
			frags: []string{"Volunteer", "Red Cross", "Social Services"},
			want: profile.Record{
				"role":         "Volunteer",
				"organisation": "Red Cross",
				"cause":        "Social Services",
			},
		},
		{
			name:  "third fragment is a year range",
			frags: []string{"Volunteer", "Red Cross", "2019 - 2021 · 2 yrs"},
			want: profile.Record{
				"role":         "Volunteer",
				"organisation": "Red Cross",
				"startDate":    "2019",
				"endDate":      "2021",
				"duration":     "2 yrs",
			},
		},
		{
			name:  "dates and cause",
			frags: []string{"Volunteer", "Red Cross", "2019 - 2021", "Education"},
			want: profile.Record{
				"role":         "Volunteer",
				"organisation": "Red Cross",
				"startDate":    "2019",
				"endDate":      "2021",
				"duration":     "",
				"cause":        "Education",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseVolunteering(tc.frags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("parseVolunteering mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCourse(t *testing.T) {
	got := parseCourse([]string{"Data Structures · CS201", "B.Tech"})
	want := profile.Record{
		"name":           "Data Structures",
		"number":         "CS201",
		"associatedWith": "B.Tech",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseCourse mismatch (-want +got):\n%s", diff)
	}
}
