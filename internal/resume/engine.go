// ABOUTME: Rule-based resume answer engine: keyword intent classification and templated answers
// ABOUTME: First-match-wins over an ordered rule list; never returns an error to the caller
package resume

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avikd/folio-assistant/internal/models"
)

// jobDescriptionMinLen is the length past which input is treated as a
// pasted job posting rather than a question.
const jobDescriptionMinLen = 200

// NoResumeMessage is returned when no profile has been loaded yet.
const NoResumeMessage = "Please upload your resume first so I can answer questions about your background."

var (
	educationWords  = []string{"education", "degree", "university", "college", "school", "study", "studied", "bachelor", "master", "phd", "graduation", "graduated", "academic", "qualification"}
	workWords       = []string{"work", "job", "experience", "employment", "career", "position", "role", "worked", "employed", "company", "companies", "employer", "professional"}
	skillWords      = []string{"skills", "skill", "technology", "technologies", "programming", "languages", "tools", "software", "technical", "expertise", "proficient", "know"}
	projectWords    = []string{"project", "projects", "built", "build", "developed", "created", "made", "portfolio", "work", "application", "app", "website", "system"}
	currentJobWords = []string{"current", "currently", "now", "present", "today", "working at", "current job", "current position", "current role", "current company"}
	personalWords   = []string{"name", "email", "phone", "contact", "linkedin", "github", "profile", "reach", "connect", "who are you", "about you"}

	// currentSpecificWords pre-empt the generic work-experience check so
	// "where do you currently work" resolves to the current job, not the
	// whole history. The overlap makes rule order load-bearing.
	currentSpecificWords = []string{"current", "currently", "present", "right now", "today"}
)

// Engine answers questions from a parsed resume profile without calling
// any external model.
type Engine struct {
	profile *models.ResumeProfile
	rules   []rule
	// now is injectable for deterministic current-job tests.
	now func() time.Time
}

type rule struct {
	intent    models.QuestionIntent
	predicate func(q string) bool
	handler   func(q string) string
}

// NewEngine creates an engine for the given profile. The profile may be
// nil; every question then gets the upload prompt.
func NewEngine(profile *models.ResumeProfile) *Engine {
	e := &Engine{profile: profile, now: time.Now}

	// Ordered rule list, first match wins. Keyword sets overlap, so the
	// order here is part of the engine's observable behavior.
	e.rules = []rule{
		{models.IntentEducation, matcher(educationWords), e.educationAnswer},
		{models.IntentExperience, matcher(workWords), e.experienceAnswer},
		{models.IntentSkills, matcher(skillWords), e.skillsAnswer},
		{models.IntentProjects, matcher(projectWords), e.projectsAnswer},
		{models.IntentCurrentJob, matcher(currentJobWords), e.currentJobAnswer},
		{models.IntentPersonalInfo, matcher(personalWords), e.personalInfoAnswer},
		{models.IntentJobDescription, func(q string) bool { return len(q) > jobDescriptionMinLen }, e.jobFitAnswer},
		{models.IntentGeneralSearch, func(string) bool { return true }, e.generalSearchAnswer},
	}
	return e
}

func matcher(words []string) func(string) bool {
	return func(q string) bool { return containsAny(q, words) }
}

// Classify returns the intent the question dispatches to. The
// work-experience rule hands questions about the present over to the
// current-job resolver, mirroring what Answer does.
func (e *Engine) Classify(question string) models.QuestionIntent {
	q := strings.ToLower(question)
	for _, r := range e.rules {
		if r.predicate(q) {
			if r.intent == models.IntentExperience && containsAny(q, currentSpecificWords) {
				return models.IntentCurrentJob
			}
			return r.intent
		}
	}
	return models.IntentGeneralSearch
}

// Answer produces a response for the question. It never fails: missing
// profile data yields a templated message instead of an error.
func (e *Engine) Answer(question string) string {
	if e.profile == nil {
		return NoResumeMessage
	}
	q := strings.ToLower(question)
	for _, r := range e.rules {
		if r.predicate(q) {
			return r.handler(question)
		}
	}
	return e.generalSearchAnswer(question)
}

func (e *Engine) educationAnswer(question string) string {
	q := strings.ToLower(question)
	if len(e.profile.Education) == 0 {
		return "I couldn't find specific education information in your resume. You might want to add more details about your educational background."
	}

	var sb strings.Builder
	sb.WriteString("Based on your resume, here's your educational background:\n\n")
	for i, edu := range e.profile.Education {
		sb.WriteString(fmt.Sprintf("%d. ", i+1))
		if edu.Degree != "" {
			sb.WriteString(edu.Degree)
		}
		if edu.Field != "" {
			sb.WriteString(" in " + edu.Field)
		}
		if edu.Institution != "" {
			sb.WriteString(" from " + edu.Institution)
		}
		if edu.Year != "" {
			sb.WriteString(" (" + edu.Year + ")")
		}
		sb.WriteString("\n")
	}

	if strings.Contains(q, "where") || strings.Contains(q, "which university") || strings.Contains(q, "which college") {
		var institutions []string
		for _, edu := range e.profile.Education {
			if edu.Institution != "" {
				institutions = append(institutions, edu.Institution)
			}
		}
		if len(institutions) > 0 {
			sb.WriteString("\nYou studied at: " + strings.Join(institutions, ", "))
		}
	}
	if strings.Contains(q, "when") || strings.Contains(q, "year") {
		var years []string
		for _, edu := range e.profile.Education {
			if edu.Year != "" {
				years = append(years, edu.Year)
			}
		}
		if len(years) > 0 {
			sb.WriteString("\nGraduation years: " + strings.Join(years, ", "))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (e *Engine) experienceAnswer(question string) string {
	// Questions about the present belong to the current-job rule, but the
	// predicate overlap means a combined question can still land here.
	if containsAny(strings.ToLower(question), currentSpecificWords) {
		return e.currentJobAnswer(question)
	}
	if len(e.profile.Experience) == 0 {
		return "I couldn't find specific work experience information in your resume. You might want to add more details about your professional background."
	}

	var sb strings.Builder
	sb.WriteString("Here's your work experience based on your resume:\n\n")
	for i, exp := range e.profile.Experience {
		sb.WriteString(fmt.Sprintf("%d. ", i+1))
		sb.WriteString(exp.Title)
		if exp.Company != "" {
			sb.WriteString(" at " + exp.Company)
		}
		if exp.StartYear != "" || exp.EndYear != "" {
			sb.WriteString(" (" + orPlaceholder(exp.StartYear, "?") + " - " + orPlaceholder(exp.EndYear, "Present") + ")")
		}
		if desc := strings.TrimSpace(exp.Description); desc != "" {
			sb.WriteString("\n   " + truncate(desc, 200))
		}
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// CurrentJob resolves the entry that looks like present employment:
// an end year reading "present"/"current", an empty end year, or one
// within a year of now. Failing that, the entry with the latest start.
func (e *Engine) CurrentJob() (models.Experience, bool) {
	for _, exp := range e.profile.Experience {
		end := strings.ToLower(exp.EndYear)
		if strings.Contains(end, "present") || strings.Contains(end, "current") || end == "" {
			return exp, true
		}
		if y, err := strconv.Atoi(exp.EndYear); err == nil && y >= e.now().Year()-1 {
			return exp, true
		}
	}

	var latest models.Experience
	found := false
	latestStart := -1
	for _, exp := range e.profile.Experience {
		if y, err := strconv.Atoi(exp.StartYear); err == nil && y > latestStart {
			latestStart = y
			latest = exp
			found = true
		}
	}
	return latest, found
}

func (e *Engine) currentJobAnswer(string) string {
	job, ok := e.CurrentJob()
	if !ok {
		return "I couldn't find clear information about your current employment in your resume."
	}

	end := strings.ToLower(job.EndYear)
	isCurrent := strings.Contains(end, "present") || strings.Contains(end, "current") || end == ""
	if !isCurrent {
		if y, err := strconv.Atoi(job.EndYear); err == nil && y >= e.now().Year()-1 {
			isCurrent = true
		}
	}

	if !isCurrent {
		answer := "Based on your resume, your most recent position was " + job.Title
		if job.Company != "" {
			answer += " at " + job.Company
		}
		if job.StartYear != "" {
			answer += " starting in " + job.StartYear
		}
		if job.Description != "" {
			answer += ". " + job.Description
		}
		return answer
	}

	var sb strings.Builder
	sb.WriteString("Currently, you are working as " + job.Title)
	if job.Company != "" {
		sb.WriteString(" at " + job.Company)
	}
	if job.StartYear != "" {
		sb.WriteString(" since " + job.StartYear)
	}
	if desc := strings.TrimSpace(job.Description); desc != "" {
		sb.WriteString(".\n\nYour role involves: " + desc)
	}
	return sb.String()
}

func (e *Engine) personalInfoAnswer(string) string {
	p := e.profile.PersonalInfo
	if p == (models.PersonalInfo{}) {
		return "I couldn't extract specific contact information from your resume. Make sure your name, email, and other contact details are clearly visible."
	}

	var sb strings.Builder
	sb.WriteString("Here's your contact information from your resume:\n\n")
	if p.Name != "" {
		sb.WriteString("**Name:** " + p.Name + "\n")
	}
	if p.Email != "" {
		sb.WriteString("**Email:** " + p.Email + "\n")
	}
	if p.Phone != "" {
		sb.WriteString("**Phone:** " + p.Phone + "\n")
	}
	if p.LinkedIn != "" {
		sb.WriteString("**LinkedIn:** " + p.LinkedIn + "\n")
	}
	if p.GitHub != "" {
		sb.WriteString("**GitHub:** " + p.GitHub + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (e *Engine) projectsAnswer(string) string {
	if len(e.profile.Projects) == 0 {
		return "I couldn't find specific project information in your resume. You might want to add more details about projects you've worked on."
	}

	var sb strings.Builder
	sb.WriteString("Based on your resume, here are your projects:\n\n")
	for i, proj := range e.profile.Projects {
		sb.WriteString(fmt.Sprintf("%d. **%s**", i+1, proj.Name))
		if desc := strings.TrimSpace(proj.Description); desc != "" {
			sb.WriteString("\n   " + desc)
		}
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

func (e *Engine) generalSearchAnswer(question string) string {
	if found := e.searchRawText(question); found != "" {
		return "Based on your resume, here's what I found related to your question:\n\n" + found
	}

	var sb strings.Builder
	sb.WriteString("I couldn't find specific information about that in your resume. Here's a summary of what I know about you:\n\n")
	if e.profile.PersonalInfo.Name != "" {
		sb.WriteString("You are " + e.profile.PersonalInfo.Name + ". ")
	}
	if len(e.profile.Experience) > 0 {
		job := e.profile.Experience[0]
		sb.WriteString("You work as " + job.Title)
		if job.Company != "" {
			sb.WriteString(" at " + job.Company)
		}
		sb.WriteString(". ")
	}
	if len(e.profile.Education) > 0 {
		edu := e.profile.Education[0]
		sb.WriteString("You have " + edu.Degree)
		if edu.Field != "" {
			sb.WriteString(" in " + edu.Field)
		}
		sb.WriteString(". ")
	}
	sb.WriteString("\n\nCould you please rephrase your question or ask about something more specific like your education, work experience, or skills?")
	return sb.String()
}

// searchRawText returns up to three sentences of the raw resume that
// contain the query, joined with spaces.
func (e *Engine) searchRawText(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || !strings.Contains(strings.ToLower(e.profile.RawText), q) {
		return ""
	}

	var hits []string
	for _, sentence := range splitOnSentenceEnds(e.profile.RawText) {
		if strings.Contains(strings.ToLower(sentence), q) {
			hits = append(hits, strings.TrimSpace(sentence))
			if len(hits) == 3 {
				break
			}
		}
	}
	return strings.Join(hits, " ")
}

func splitOnSentenceEnds(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
