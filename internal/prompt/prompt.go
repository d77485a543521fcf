package prompt

import (
	"fmt"
	"strings"

	"github.com/jywlabs/specgen/internal/catalog"
)

// System is the standing instruction for spec generation.
const System = `You are a senior software architect. You write implementation-ready
technical specifications in GitHub-flavored markdown for solo developers.
Answer with the markdown document only: no preamble, no closing remarks,
and do not wrap the document in a code fence.`

// Build constructs the generation prompt for an app idea.
// The prompt includes:
// - The app name, or an instruction to invent one
// - The idea as the user described it
// - The chosen tech stack, one line per option
// - The sections the document must contain
func Build(idea string, stack catalog.Answers, appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "(choose a short, memorable name)"
	}

	return fmt.Sprintf(`## App

Name: %s

## Idea

%s

## Tech Stack

%s

## Instructions

Write a technical specification for this app using exactly the tech stack above.
Include these sections:
1. Executive Summary
2. Core Features and User Flows
3. Data Model (tables, key fields, relations)
4. API Surface (routes or server actions)
5. Frontend Structure (pages, layouts, key components)
6. Integrations (auth, payments, storage, notifications)
7. Implementation Guide (packages to install, environment variables, build order)

Keep it concrete and concise so it fits in a single response.`, name, strings.TrimSpace(idea), stackLines(stack))
}

func stackLines(stack catalog.Answers) string {
	var lines []string
	for _, opt := range catalog.TechStackOptions {
		v := stack.Get(opt.ID)
		value := v.Display()
		if v.IsEmpty() {
			value = "None"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", opt.Label, value))
	}
	return strings.Join(lines, "\n")
}
