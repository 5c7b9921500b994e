// ABOUTME: Heuristic resume parsing: regex contact extraction plus section scope tracking
// ABOUTME: Best-effort text classification; a miss leaves the field empty, never errors
package resume

import (
	"regexp"
	"strings"

	"github.com/avikd/folio-assistant/internal/models"
)

// maxHeaderLen bounds section-header detection: a keyword occurring in a
// long prose line is content, not a header.
const maxHeaderLen = 50

var (
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe     = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)
	linkedinRe  = regexp.MustCompile(`(?i)linkedin\.com/in/[^\s]+`)
	githubRe    = regexp.MustCompile(`(?i)github\.com/[^\s]+`)
	yearRe      = regexp.MustCompile(`\d{4}`)
	dateRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)
	companyRe   = regexp.MustCompile(`(?i)\b(?:at|@)\s+([^,\n]+)`)
	degreeRe    = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|diploma|certificate)\b(?:[^,\n]*?\b(?:of|in)\s+([^,\n]+))?`)
	instituteRe = regexp.MustCompile(`(?i)\b(university|college|institute|school)\s+([^,\n]+)`)
)

var (
	educationSectionWords  = []string{"education", "academic", "university", "college", "school", "degree", "bachelor", "master", "phd", "diploma"}
	degreeWords            = []string{"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate"}
	experienceSectionWords = []string{"experience", "employment", "work", "career", "professional"}
	jobTitleWords          = []string{"developer", "engineer", "manager", "analyst", "consultant", "specialist", "lead", "senior", "junior"}
	skillsSectionWords     = []string{"skills", "technologies", "technical", "programming", "languages", "tools"}
	projectSectionWords    = []string{"projects", "portfolio", "built", "developed", "created"}
	certificationWords     = []string{"certification", "certificate", "certified", "license"}
	sectionHeaderWords     = []string{"experience", "education", "skills", "projects", "certifications", "achievements", "summary", "objective"}

	commonSkills = []string{
		"javascript", "python", "java", "react", "node", "angular", "vue", "html", "css",
		"sql", "mongodb", "postgresql", "mysql", "aws", "azure", "docker", "kubernetes",
		"git", "linux", "windows", "mac", "photoshop", "figma", "sketch",
	}
)

// Load extracts text from the resume file at path and parses it into a
// profile. A re-load replaces the previous profile wholesale.
func Load(path string) (*models.ResumeProfile, error) {
	text, err := ExtractText(path)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Parse turns raw resume text into a structured profile. Every extraction
// step is independent: a field the heuristics can't find stays empty.
func Parse(rawText string) *models.ResumeProfile {
	profile := &models.ResumeProfile{RawText: rawText}

	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return profile
	}

	extractPersonalInfo(profile, lines)
	extractEducation(profile, lines)
	extractExperience(profile, lines)
	extractSkills(profile, lines)
	extractProjects(profile, lines)
	extractCertifications(profile, lines)

	return profile
}

func extractPersonalInfo(p *models.ResumeProfile, lines []string) {
	for _, line := range lines {
		if m := emailRe.FindString(line); m != "" && p.PersonalInfo.Email == "" {
			p.PersonalInfo.Email = m
		}
		if m := phoneRe.FindString(line); m != "" && p.PersonalInfo.Phone == "" {
			p.PersonalInfo.Phone = strings.TrimSpace(m)
		}
		if m := linkedinRe.FindString(line); m != "" && p.PersonalInfo.LinkedIn == "" {
			p.PersonalInfo.LinkedIn = m
		}
		if m := githubRe.FindString(line); m != "" && p.PersonalInfo.GitHub == "" {
			p.PersonalInfo.GitHub = m
		}
	}
	// The name is almost always the first line of a resume.
	p.PersonalInfo.Name = strings.TrimSpace(lines[0])
}

// isSectionHeader reports whether line looks like the start of another
// top-level resume section, ending the current section's scope.
func isSectionHeader(lowerLine string) bool {
	return len(lowerLine) < maxHeaderLen && containsAny(lowerLine, sectionHeaderWords)
}

func extractEducation(p *models.ResumeProfile, lines []string) {
	inSection := false
	for _, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, educationSectionWords) && len(lower) < maxHeaderLen {
			inSection = true
			continue
		}
		if inSection && isSectionHeader(lower) {
			inSection = false
			continue
		}
		if inSection || containsAny(lower, degreeWords) {
			if edu, ok := parseEducationEntry(line); ok {
				p.Education = append(p.Education, edu)
			}
		}
	}
}

func parseEducationEntry(line string) (models.Education, bool) {
	degree := degreeRe.FindStringSubmatch(line)
	years := yearRe.FindAllString(line, -1)
	institution := instituteRe.FindString(line)

	if degree == nil && institution == "" && years == nil {
		return models.Education{}, false
	}

	edu := models.Education{Institution: strings.TrimSpace(institution)}
	if degree != nil {
		edu.Degree = strings.TrimSpace(degree[0])
		edu.Field = strings.TrimSpace(degree[2])
		if edu.Field != "" {
			// Keep the degree phrase free of the field it introduces.
			edu.Degree = strings.TrimSpace(strings.Split(degree[0], degree[2])[0])
		}
	}
	if len(years) > 0 {
		edu.Year = years[len(years)-1]
	}
	return edu, true
}

func extractExperience(p *models.ResumeProfile, lines []string) {
	inSection := false
	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, experienceSectionWords) && len(lower) < maxHeaderLen {
			inSection = true
			continue
		}
		if inSection && isSectionHeader(lower) {
			inSection = false
			continue
		}
		if inSection || containsAny(lower, jobTitleWords) {
			if exp, ok := parseExperienceEntry(line, lines[i:min(i+5, len(lines))]); ok {
				p.Experience = append(p.Experience, exp)
			}
		}
	}
}

func parseExperienceEntry(line string, context []string) (models.Experience, bool) {
	years := yearRe.FindAllString(line, -1)
	dateRange := dateRangeRe.FindStringSubmatch(line)
	company := companyRe.FindStringSubmatch(line)
	hasTitle := containsAny(strings.ToLower(line), jobTitleWords)

	if !hasTitle && years == nil && company == nil {
		return models.Experience{}, false
	}

	exp := models.Experience{Title: strings.TrimSpace(line)}
	if company != nil {
		exp.Company = strings.TrimSpace(company[1])
	}
	switch {
	case dateRange != nil:
		exp.StartYear = dateRange[1]
		exp.EndYear = dateRange[2]
	case len(years) > 1:
		exp.StartYear = years[0]
		exp.EndYear = years[1]
	case len(years) == 1:
		exp.StartYear = years[0]
	}
	if len(context) > 1 {
		exp.Description = strings.TrimSpace(strings.Join(context[1:], " "))
	}
	return exp, true
}

func extractSkills(p *models.ResumeProfile, lines []string) {
	inSection := false
	seen := make(map[string]bool)
	add := func(skill string) {
		key := strings.ToLower(skill)
		if !seen[key] {
			seen[key] = true
			p.Skills = append(p.Skills, skill)
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, skillsSectionWords) && len(line) < maxHeaderLen {
			inSection = true
			continue
		}
		if inSection && isSectionHeader(lower) {
			inSection = false
			continue
		}

		for _, skill := range commonSkills {
			if strings.Contains(lower, skill) {
				add(skill)
			}
		}
		if inSection {
			// Inside the skills section every line is skill content,
			// even terms outside the known-skill list.
			for _, part := range strings.FieldsFunc(line, func(r rune) bool {
				return r == ',' || r == ';' || r == '|' || r == '•'
			}) {
				if part = strings.TrimSpace(part); part != "" {
					add(part)
				}
			}
		}
	}
}

func extractProjects(p *models.ResumeProfile, lines []string) {
	inSection := false
	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, projectSectionWords) && len(lower) < maxHeaderLen {
			inSection = true
			continue
		}
		if inSection && isSectionHeader(lower) {
			inSection = false
			continue
		}
		if inSection {
			desc := ""
			if i+1 < len(lines) {
				desc = strings.TrimSpace(strings.Join(lines[i+1:min(i+3, len(lines))], " "))
			}
			p.Projects = append(p.Projects, models.Project{
				Name:        strings.TrimSpace(line),
				Description: desc,
			})
		}
	}
}

func extractCertifications(p *models.ResumeProfile, lines []string) {
	for _, line := range lines {
		if containsAny(strings.ToLower(line), certificationWords) {
			p.Certifications = append(p.Certifications, strings.TrimSpace(line))
		}
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
