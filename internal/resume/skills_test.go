// ABOUTME: Tests for skill bucketing and the job-fit report
// ABOUTME: Buckets are exclusive; a skill lands in the first matching category only
package resume

import (
	"reflect"
	"strings"
	"testing"

	"github.com/avikd/folio-assistant/internal/models"
)

func TestCategorizeSkills(t *testing.T) {
	got := CategorizeSkills([]string{"python", "postgresql", "aws", "figma"})

	want := SkillBuckets{
		Programming: []string{"python"},
		Databases:   []string{"postgresql"},
		Cloud:       []string{"aws"},
		Other:       []string{"figma"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategorizeSkills = %+v, want %+v", got, want)
	}
}

func TestCategorizeSkills_FirstBucketWins(t *testing.T) {
	// "node.js on aws" matches both programming and cloud hints; the
	// programming bucket is checked first and claims it.
	got := CategorizeSkills([]string{"node.js on aws"})
	if len(got.Programming) != 1 || len(got.Cloud) != 0 {
		t.Errorf("expected the programming bucket to claim the skill, got %+v", got)
	}
}

func TestCategorizeSkills_Empty(t *testing.T) {
	got := CategorizeSkills(nil)
	if len(got.Programming)+len(got.Databases)+len(got.Cloud)+len(got.Other) != 0 {
		t.Errorf("expected empty buckets, got %+v", got)
	}
}

func TestSkillsAnswer_RendersBucketHeadings(t *testing.T) {
	e := NewEngine(testProfile())

	got := e.Answer("what skills do you have")
	for _, heading := range []string{
		"**Programming & Development:** python",
		"**Databases:** postgresql",
		"**Cloud & DevOps:** aws",
		"**Other Skills:** figma",
	} {
		if !strings.Contains(got, heading) {
			t.Errorf("missing %q in:\n%s", heading, got)
		}
	}
}

func TestSkillsAnswer_OtherBucketCapped(t *testing.T) {
	skills := make([]string, 0, 15)
	for _, s := range []string{"figma", "sketch", "jira", "excel", "notion", "slack", "trello", "asana", "miro", "airtable", "zapier", "canva"} {
		skills = append(skills, s)
	}
	e := NewEngine(&models.ResumeProfile{Skills: skills})

	got := e.skillsAnswer("")
	if strings.Contains(got, "zapier") || strings.Contains(got, "canva") {
		t.Errorf("other bucket should be capped at 10 entries:\n%s", got)
	}
	if !strings.Contains(got, "airtable") {
		t.Errorf("tenth entry should survive the cap:\n%s", got)
	}
}

func TestJobFitAnswer_MatchesSkillsAndExperience(t *testing.T) {
	e := NewEngine(testProfile())

	got := e.jobFitAnswer("We need someone strong in python and aws who has shipped billing systems.")
	if !strings.Contains(got, "## Job Fit Analysis") {
		t.Fatalf("missing report header:\n%s", got)
	}
	if !strings.Contains(got, "✅ python, aws") {
		t.Errorf("expected matched skills line, got:\n%s", got)
	}
	if !strings.Contains(got, "Senior Developer at Acme Corp") {
		t.Errorf("billing experience should match via description tokens:\n%s", got)
	}
	if !strings.Contains(got, "2 professional roles") || !strings.Contains(got, "4 technical skills") {
		t.Errorf("candidate summary counts wrong:\n%s", got)
	}
	if !strings.Contains(got, "Bachelor of Science") {
		t.Errorf("expected the first degree in the summary:\n%s", got)
	}
}

func TestJobFitAnswer_NoMatches(t *testing.T) {
	e := NewEngine(&models.ResumeProfile{
		Skills:     []string{"cobol"},
		Experience: []models.Experience{{Title: "Archivist", Company: "Museum"}},
	})

	got := e.jobFitAnswer("Seeking a marine biologist for fieldwork on coral reefs near the equator.")
	if !strings.Contains(got, "No direct skill matches found") {
		t.Errorf("expected the transferable-skills fallback:\n%s", got)
	}
	if !strings.Contains(got, "No directly matching experience") {
		t.Errorf("expected the experience fallback:\n%s", got)
	}
}
