package usecase

import (
	"fmt"
	"strings"

	"github.com/tracksense/goalnet/internal/aiprofile/entity"
)

// generated is the full content set produced for one user.
type generated struct {
	Summary      string
	CurrentFocus []string
	Strengths    []string
	Highlights   []string
}

var focusByGoal = map[string]string{
	"fundraising": "Raising funding for growth",
	"clients":     "Acquiring new clients and customers",
	"cofounder":   "Finding the right co-founder",
	"hiring":      "Building and scaling the team",
	"learn":       "Learning and skill development",
	"other":       "Achieving key business objectives",
}

var strengthsByRole = map[string][]string{
	"founder":  {"Entrepreneurship", "Product Development", "Team Building", "Strategic Planning"},
	"investor": {"Investment Analysis", "Portfolio Management", "Due Diligence", "Market Insights"},
	"mentor":   {"Mentorship", "Strategic Guidance", "Industry Expertise", "Network Building"},
	"cxo":      {"Executive Leadership", "Strategic Planning", "Operations Management", "Business Development"},
	"service":  {"Consulting", "Problem Solving", "Client Relations", "Project Management"},
	"other":    {"Professional Skills", "Industry Knowledge", "Collaboration"},
}

// generate assembles the profile content from static tables. Same inputs
// always produce the same output. The document count is fetched alongside
// the other sources but does not influence the wording yet.
func generate(src entity.ProfileSource, activeGoals []entity.ActiveGoal, _ int64) generated {
	return generated{
		Summary:      buildSummary(src, len(activeGoals)),
		CurrentFocus: buildCurrentFocus(src, activeGoals),
		Strengths:    buildStrengths(src),
		Highlights:   buildHighlights(src, activeGoals),
	}
}

func buildSummary(src entity.ProfileSource, goalsCount int) string {
	role := src.Role
	if role == "" {
		role = "professional"
	}
	goal := src.PrimaryGoal
	if goal == "" {
		goal = "growth"
	}

	var b strings.Builder
	b.WriteString(capitalize(role))
	if src.Company != "" {
		b.WriteString(" at " + src.Company)
	}
	if src.Location != "" {
		b.WriteString(" based in " + src.Location)
	}
	if src.OneLiner != "" {
		b.WriteString(". " + src.OneLiner)
	}
	if goalsCount > 0 {
		b.WriteString(fmt.Sprintf(" Currently working on %d active goal%s", goalsCount, plural(goalsCount)))
	}
	if src.PrimaryGoal != "" {
		b.WriteString(" with focus on " + goal)
	}

	return b.String() + "."
}

func buildCurrentFocus(src entity.ProfileSource, activeGoals []entity.ActiveGoal) []string {
	focus := make([]string, 0, 3)

	if src.PrimaryGoal != "" {
		phrase, ok := focusByGoal[src.PrimaryGoal]
		if !ok {
			phrase = focusByGoal["other"]
		}
		focus = append(focus, phrase)
	}

	for i, g := range activeGoals {
		if i >= 2 {
			break
		}
		focus = append(focus, g.Title)
	}

	if len(focus) == 0 {
		focus = append(focus, "Setting up profile and defining goals")
	}

	if len(focus) > 3 {
		focus = focus[:3]
	}
	return focus
}

func buildStrengths(src entity.ProfileSource) []string {
	role := src.Role
	if role == "" {
		role = "other"
	}

	all, ok := strengthsByRole[role]
	if !ok {
		all = strengthsByRole["other"]
	}
	if len(all) > 3 {
		all = all[:3]
	}

	out := make([]string, len(all))
	copy(out, all)
	return out
}

func buildHighlights(src entity.ProfileSource, activeGoals []entity.ActiveGoal) []string {
	highlights := make([]string, 0, 4)

	if src.Company != "" {
		role := src.Role
		if role == "" {
			role = "professional"
		}
		highlights = append(highlights, capitalize(role)+" at "+src.Company)
	}
	if src.Location != "" {
		highlights = append(highlights, "Based in "+src.Location)
	}

	completed := 0
	for _, g := range activeGoals {
		completed += g.CompletedMilestones
	}
	if len(activeGoals) > 0 && completed > 0 {
		highlights = append(highlights, fmt.Sprintf("Completed %d milestone%s", completed, plural(completed)))
	}

	if src.Website != "" {
		highlights = append(highlights, "Portfolio: "+src.Website)
	}

	if len(highlights) == 0 {
		highlights = append(highlights, "Active on GoalNet")
	}

	if len(highlights) > 4 {
		highlights = highlights[:4]
	}
	return highlights
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
