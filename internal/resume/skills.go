// ABOUTME: Skill categorization into fixed buckets for the skills answer
// ABOUTME: First matching bucket wins; a skill never appears in two buckets
package resume

import (
	"strings"
)

// SkillBuckets holds the categorized skill lists in render order.
type SkillBuckets struct {
	Programming []string
	Databases   []string
	Cloud       []string
	Other       []string
}

var (
	programmingHints = []string{"javascript", "python", "java", "react", "node", "angular", "vue", "html", "css"}
	databaseHints    = []string{"sql", "mongodb", "postgresql", "mysql", "database"}
	cloudHints       = []string{"aws", "azure", "cloud", "docker", "kubernetes"}
)

// CategorizeSkills partitions skills into buckets by substring membership
// against fixed hint sets, checked in order: Programming, Databases,
// Cloud, then Other for everything left.
func CategorizeSkills(skills []string) SkillBuckets {
	var b SkillBuckets
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		switch {
		case containsAny(lower, programmingHints):
			b.Programming = append(b.Programming, skill)
		case containsAny(lower, databaseHints):
			b.Databases = append(b.Databases, skill)
		case containsAny(lower, cloudHints):
			b.Cloud = append(b.Cloud, skill)
		default:
			b.Other = append(b.Other, skill)
		}
	}
	return b
}

func (e *Engine) skillsAnswer(string) string {
	if len(e.profile.Skills) == 0 {
		return "I couldn't find a specific skills section in your resume. You might want to add more details about your technical skills and expertise."
	}

	buckets := CategorizeSkills(e.profile.Skills)

	var sb strings.Builder
	sb.WriteString("Based on your resume, your skills include:\n\n")
	if len(buckets.Programming) > 0 {
		sb.WriteString("**Programming & Development:** " + strings.Join(buckets.Programming, ", ") + "\n\n")
	}
	if len(buckets.Databases) > 0 {
		sb.WriteString("**Databases:** " + strings.Join(buckets.Databases, ", ") + "\n\n")
	}
	if len(buckets.Cloud) > 0 {
		sb.WriteString("**Cloud & DevOps:** " + strings.Join(buckets.Cloud, ", ") + "\n\n")
	}
	if len(buckets.Other) > 0 {
		other := buckets.Other
		if len(other) > 10 {
			other = other[:10]
		}
		sb.WriteString("**Other Skills:** " + strings.Join(other, ", "))
	}
	return strings.TrimSpace(sb.String())
}
