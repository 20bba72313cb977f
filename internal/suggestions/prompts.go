package suggestions

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/skill.txt
	skillPrompt string
	//go:embed prompts/summary.txt
	summaryPrompt string
	//go:embed prompts/section.txt
	sectionPrompt string
	//go:embed prompts/bullet.txt
	bulletPrompt string
)

func buildSkillPrompt(skill, job string) string {
	return strings.NewReplacer(
		"{{SKILL}}", skill,
		"{{JOB_DESCRIPTION}}", jobOrNA(job),
	).Replace(skillPrompt)
}

func buildSummaryPrompt(resume, job string) string {
	return strings.NewReplacer(
		"{{RESUME_TEXT}}", resume,
		"{{JOB_DESCRIPTION}}", jobOrNA(job),
	).Replace(summaryPrompt)
}

func buildSectionPrompt(section, job string) string {
	return strings.NewReplacer(
		"{{SECTION_TEXT}}", section,
		"{{JOB_DESCRIPTION}}", jobOrNA(job),
	).Replace(sectionPrompt)
}

func buildBulletPrompt(bullet, job string) string {
	return strings.NewReplacer(
		"{{BULLET}}", bullet,
		"{{JOB_DESCRIPTION}}", jobOrNA(job),
	).Replace(bulletPrompt)
}

func jobOrNA(job string) string {
	if strings.TrimSpace(job) == "" {
		return "N/A"
	}
	return job
}
