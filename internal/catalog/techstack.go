package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// TechOption is one selectable axis of the AI generation form.
type TechOption struct {
	ID      string
	Label   string
	Type    QuestionType // TypeSelect or TypeMultiselect
	Options []string
	Default Value
}

// TechStackOptions lists the stack choices offered to AI generation.
var TechStackOptions = []TechOption{
	{
		ID:      "auth",
		Label:   "Authentication",
		Type:    TypeSelect,
		Options: []string{"Clerk", "NextAuth (Auth.js)", "Supabase Auth", "Firebase Auth", "Custom JWT"},
		Default: Text("Clerk"),
	},
	{
		ID:      "database",
		Label:   "Database",
		Type:    TypeSelect,
		Options: []string{"PostgreSQL (Supabase)", "PostgreSQL (Neon)", "MongoDB", "MySQL", "DynamoDB"},
		Default: Text("PostgreSQL (Supabase)"),
	},
	{
		ID:      "backend",
		Label:   "Backend Framework",
		Type:    TypeSelect,
		Options: []string{"Next.js Server Actions", "Node.js (Express)", "NestJS", "Python (FastAPI)", "Go (Fiber)"},
		Default: Text("Next.js Server Actions"),
	},
	{
		ID:      "ui",
		Label:   "UI Library",
		Type:    TypeSelect,
		Options: []string{"shadcn/ui", "Tailwind UI"},
		Default: Text("shadcn/ui"),
	},
	{
		ID:      "mobile",
		Label:   "Mobile App Strategy",
		Type:    TypeMultiselect,
		Options: []string{"React Native (Expo)", "Flutter", "iOS (SwiftUI)", "Android (Kotlin)", "PWA"},
		Default: List(),
	},
	{
		ID:      "payments",
		Label:   "Payment Gateway",
		Type:    TypeSelect,
		Options: []string{"Stripe", "Lemon Squeezy", "PayPal", "Paddle", "None"},
		Default: Text("None"),
	},
	{
		ID:      "notifications",
		Label:   "Notifications",
		Type:    TypeMultiselect,
		Options: []string{"Email (Resend)", "Email (SendGrid)", "Push (OneSignal)", "SMS (Twilio)", "In-app Feed"},
		Default: List("Email (Resend)"),
	},
	{
		ID:      "storage",
		Label:   "File Storage",
		Type:    TypeSelect,
		Options: []string{"AWS S3", "Cloudflare R2", "Supabase Storage", "UploadThing", "None"},
		Default: Text("None"),
	},
	{
		ID:      "vibe",
		Label:   "Aesthetic Vibe",
		Type:    TypeSelect,
		Options: []string{"Clean & Modern", "Minimalist", "Playful & Vibrant", "Professional & Enterprise", "Futuristic & Tech-focused"},
		Default: Text("Clean & Modern"),
	},
}

// LookupTechOption returns the tech option with the given id.
func LookupTechOption(id string) (TechOption, bool) {
	for _, opt := range TechStackOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return TechOption{}, false
}

// DefaultTechStack returns every tech option set to its default.
func DefaultTechStack() Answers {
	stack := make(Answers, len(TechStackOptions))
	for _, opt := range TechStackOptions {
		stack[opt.ID] = opt.Default
	}
	return stack
}

// ApplyTechOverride parses a "key=value" override and returns the updated
// stack. Multiselect values are comma separated.
func ApplyTechOverride(stack Answers, override string) (Answers, error) {
	key, raw, ok := strings.Cut(override, "=")
	if !ok {
		return nil, fmt.Errorf("invalid stack override %q (want key=value)", override)
	}
	key = strings.TrimSpace(key)
	opt, found := LookupTechOption(key)
	if !found {
		return nil, fmt.Errorf("unknown stack option %q", key)
	}

	if opt.Type == TypeMultiselect {
		var items []string
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !slices.Contains(opt.Options, part) {
				return nil, fmt.Errorf("%s: unknown option %q", key, part)
			}
			items = append(items, part)
		}
		return stack.With(key, List(items...)), nil
	}

	raw = strings.TrimSpace(raw)
	if !slices.Contains(opt.Options, raw) {
		return nil, fmt.Errorf("%s: unknown option %q", key, raw)
	}
	return stack.With(key, Text(raw)), nil
}
