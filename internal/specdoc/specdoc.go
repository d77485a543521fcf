// Package specdoc renders an answer set into a markdown technical
// specification.
package specdoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/jywlabs/specgen/internal/catalog"
)

const (
	// NotAvailable stands in for an unanswered field.
	NotAvailable = "N/A"
	// NoData is shown when a draft has nothing to render.
	NoData = "No data found. Please go back and generate a spec."

	untitled = "Untitled Project"
	dateFmt  = "2006-01-02"
)

// Assemble renders answers dated today.
func Assemble(answers catalog.Answers) string {
	return AssembleAt(answers, time.Now())
}

// AssembleAt renders answers with the given date in the header. The date line
// is the only part of the output that depends on anything but answers.
func AssembleAt(answers catalog.Answers, now time.Time) string {
	fp := Collect(answers)
	d := &doc{answers: answers}

	name := answers.Get("projectName")
	title := untitled
	if !name.IsEmpty() {
		title = strings.TrimSpace(name.Display())
	}
	d.block("# Technical Specification: %s", title)
	d.block("**Date:** %s | **Status:** Draft", now.Format(dateFmt))
	if pitch := answers.Get("elevatorPitch"); !pitch.IsEmpty() {
		d.block("> %s", strings.TrimSpace(pitch.Display()))
	}

	d.block("## 1. Executive Summary")
	d.block("**Objective:** %s", d.field("objective"))
	d.block("**Problem:** %s", d.field("problemStatement"))
	d.block("**Target Audience:** %s", d.field("targetAudience"))

	d.block("## 2. Scope & Constraints")
	d.lines(
		d.item("Stage", "projectStage"),
		d.item("Platforms", "platforms"),
	)

	d.block("## 3. Design System")
	d.lines(
		d.item("Design Intent", "designIntent"),
		d.item("Visual Risk Tolerance", "visualRiskTolerance"),
		d.item("Theme Mode", "themeMode"),
		fmt.Sprintf("- **Primary Color:** `%s`", d.field("primaryColor")),
		fmt.Sprintf("- **Secondary Color:** `%s`", d.field("secondaryColor")),
		d.item("Headline Font", "headlineFont"),
		d.item("Body Font", "bodyFont"),
		d.item("Icons", "iconSet"),
		d.item("Component Library", "componentSystem"),
		d.item("Layout", "layoutRequirement"),
	)

	d.block("## 4. Functional Specifications")
	d.block("### 4.1 Core User Flow")
	if flow := answers.Get("userFlow"); !flow.IsEmpty() {
		d.block("%s", strings.TrimSpace(flow.Display()))
	} else {
		d.block("To be defined.")
	}
	if extra := answers.Get("secondaryFeatures"); !extra.IsEmpty() {
		d.block("### 4.2 Secondary Features")
		d.block("%s", strings.TrimSpace(extra.Display()))
	}

	d.block("## 5. Technical Architecture")
	d.block("### 5.1 Frontend")
	d.lines(
		d.item("Framework", "feFramework"),
		d.item("Styling", "stylingEngine"),
		d.item("State Management", "stateManagement"),
	)
	d.block("### 5.2 Backend")
	d.lines(
		d.item("Runtime", "beRuntime"),
		d.item("API Style", "apiStyle"),
		d.item("Auth Provider", "authStrategy"),
	)

	d.block("## 6. Data Modeling")
	d.lines(
		d.item("Engine", "dbEngine"),
		d.item("Multi-Tenancy", "multiTenancy"),
		d.item("Data Retention", "dataRetention"),
	)
	if len(fp.Schemas) > 0 {
		d.block("### 6.1 Schema Reference")
		d.block("```prisma\n%s\n```", strings.Join(fp.Schemas, "\n\n"))
	}

	d.block("## 7. Infrastructure & Security")
	d.lines(
		d.item("CI/CD", "cicd"),
		d.item("Compliance", "compliance"),
	)

	d.block("## 8. Implementation Guide")
	if len(fp.Packages) > 0 {
		d.block("### 8.1 Required Packages")
		d.block("```bash\nnpm install %s\n```", strings.Join(fp.Packages, " "))
	}
	if len(fp.EnvVars) > 0 {
		vars := make([]string, len(fp.EnvVars))
		for i, v := range fp.EnvVars {
			vars[i] = v + "="
		}
		d.block("### 8.2 Environment Variables")
		d.block("```env\n%s\n```", strings.Join(vars, "\n"))
	}
	if len(fp.RequiredFiles) > 0 {
		files := make([]string, len(fp.RequiredFiles))
		for i, f := range fp.RequiredFiles {
			files[i] = "- `" + f + "`"
		}
		d.block("### 8.3 Required Files")
		d.lines(files...)
	}
	if len(fp.Constraints) > 0 {
		checks := make([]string, len(fp.Constraints))
		for i, c := range fp.Constraints {
			checks[i] = "- [ ] " + c
		}
		d.block("### 8.4 Technical Constraints & Standards")
		d.lines(checks...)
	}

	return d.String()
}

// Preview picks what to show for a draft: generated markdown if present,
// otherwise the assembled answers, otherwise the NoData placeholder.
func Preview(generated string, answers catalog.Answers, now time.Time) string {
	if strings.TrimSpace(generated) != "" {
		return generated
	}
	for _, v := range answers {
		if !v.IsEmpty() {
			return AssembleAt(answers, now)
		}
	}
	return NoData
}

type doc struct {
	answers catalog.Answers
	blocks  []string
}

func (d *doc) block(format string, args ...any) {
	d.blocks = append(d.blocks, fmt.Sprintf(format, args...))
}

func (d *doc) lines(lines ...string) {
	d.blocks = append(d.blocks, strings.Join(lines, "\n"))
}

func (d *doc) field(id string) string {
	v := d.answers.Get(id)
	if v.IsEmpty() {
		return NotAvailable
	}
	return strings.TrimSpace(v.Display())
}

func (d *doc) item(label, id string) string {
	return fmt.Sprintf("- **%s:** %s", label, d.field(id))
}

func (d *doc) String() string {
	return strings.Join(d.blocks, "\n\n") + "\n"
}
