// ABOUTME: Job-description fit analysis for pasted postings
// ABOUTME: Matches profile skills and experience against the posting text and renders a report
package resume

import (
	"fmt"
	"strings"
)

// minMatchTokenLen keeps stop words out of the description-token match.
const minMatchTokenLen = 4

func (e *Engine) jobFitAnswer(posting string) string {
	jobLower := strings.ToLower(posting)

	var matchedSkills []string
	for _, skill := range e.profile.Skills {
		if skillMatchesPosting(strings.ToLower(skill), jobLower) {
			matchedSkills = append(matchedSkills, skill)
		}
	}

	var relevant []string
	for _, exp := range e.profile.Experience {
		if experienceMatchesPosting(exp.Title, exp.Company, exp.Description, jobLower) {
			entry := exp.Title
			if exp.Company != "" {
				entry += " at " + exp.Company
			}
			relevant = append(relevant, entry)
		}
	}

	var sb strings.Builder
	sb.WriteString("## Job Fit Analysis\n\n")

	sb.WriteString("**Your Matching Skills:**\n")
	if len(matchedSkills) > 0 {
		sb.WriteString("✅ " + strings.Join(matchedSkills, ", ") + "\n\n")
	} else {
		sb.WriteString("⚠️ No direct skill matches found, but you may have transferable skills.\n\n")
	}

	sb.WriteString("**Relevant Experience:**\n")
	if len(relevant) > 0 {
		for _, entry := range relevant {
			sb.WriteString("✅ " + entry + "\n")
		}
	} else {
		sb.WriteString("⚠️ No directly matching experience, but your background may still be relevant.\n")
	}

	sb.WriteString("\n**Why You're a Strong Candidate:**\n")
	sb.WriteString(fmt.Sprintf("• %d professional roles showing career progression\n", len(e.profile.Experience)))
	sb.WriteString(fmt.Sprintf("• %d technical skills demonstrating versatility\n", len(e.profile.Skills)))
	if len(e.profile.Education) > 0 {
		sb.WriteString("• Strong educational foundation with " + e.profile.Education[0].Degree + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// skillMatchesPosting reports whether the posting mentions the skill as a
// whole phrase or any single word of a multi-word skill.
func skillMatchesPosting(skill, jobLower string) bool {
	if skill == "" {
		return false
	}
	if strings.Contains(jobLower, skill) {
		return true
	}
	for _, word := range strings.Fields(skill) {
		if len(word) >= minMatchTokenLen && strings.Contains(jobLower, word) {
			return true
		}
	}
	return false
}

// experienceMatchesPosting checks title, company, and description tokens
// against the posting text.
func experienceMatchesPosting(title, company, description, jobLower string) bool {
	if title != "" && strings.Contains(jobLower, strings.ToLower(title)) {
		return true
	}
	if company != "" && strings.Contains(jobLower, strings.ToLower(company)) {
		return true
	}
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if len(word) >= minMatchTokenLen && strings.Contains(jobLower, word) {
			return true
		}
	}
	return false
}
