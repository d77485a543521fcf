package catalog

// Section names in display order.
const (
	SectionIdentity     = "Identity & Context"
	SectionScope        = "Scope & Strategy"
	SectionDesign       = "UI/UX & Design System"
	SectionFeatures     = "Features & Functional Specs"
	SectionFrontend     = "Frontend Architecture"
	SectionBackend      = "Backend & API Architecture"
	SectionData         = "Data Modeling"
	SectionIntegrations = "Integrations"
	SectionSecurity     = "Security & Infrastructure"
)

// Sections lists every section in order.
var Sections = []string{
	SectionIdentity,
	SectionScope,
	SectionDesign,
	SectionFeatures,
	SectionFrontend,
	SectionBackend,
	SectionData,
	SectionIntegrations,
	SectionSecurity,
}

const hexColorPattern = `^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`

// Default returns the master question catalog.
func Default() Catalog {
	return Catalog{
		// Identity & Context
		{
			ID:          "projectName",
			Section:     SectionIdentity,
			Label:       "Project Name",
			Type:        TypeText,
			Placeholder: "e.g., Axistrack",
			Validation:  `^[A-Za-z0-9][A-Za-z0-9 ._-]{0,63}$`,
		},
		{
			ID:          "elevatorPitch",
			Section:     SectionIdentity,
			Label:       "Elevator Pitch",
			Description: "Describe the app in 2-3 sentences focusing on the problem and solution.",
			Type:        TypeTextarea,
			Placeholder: "A fleet management system that reduces fuel costs using AI-driven routing...",
			Optional:    true,
		},
		{
			ID:          "objective",
			Section:     SectionIdentity,
			Label:       "Primary Objective",
			Description: "What must be true for this build to be considered a success?",
			Type:        TypeTextarea,
			Placeholder: "Cut route planning time from 4 hours to 10 minutes per day.",
		},
		{
			ID:          "problemStatement",
			Section:     SectionIdentity,
			Label:       "Problem Statement",
			Description: "What is the specific pain point this app eliminates?",
			Type:        TypeTextarea,
			Placeholder: "Manual route planning takes 4 hours daily and results in 15% wasted fuel.",
			Optional:    true,
		},
		{
			ID:          "targetAudience",
			Section:     SectionIdentity,
			Label:       "Target Audience",
			Description: "Who are the primary users? (e.g., Logistic Managers, Solo Founders).",
			Type:        TypeText,
			Placeholder: "e.g., Small business owners in the shipping industry",
		},

		// Scope & Strategy
		{
			ID:      "projectStage",
			Section: SectionScope,
			Label:   "Project Stage",
			Type:    TypeSelect,
			Options: []string{"Proof of Concept (PoC)", "MVP (Minimum Viable Product)", "Scalable V1 Production"},
			Default: Text("MVP (Minimum Viable Product)"),
		},
		{
			ID:          "timeline",
			Section:     SectionScope,
			Label:       "Timeline Constraints",
			Description: "What is the absolute 'must-ship' date?",
			Type:        TypeText,
			Placeholder: "e.g., 3 months from kickoff",
			Optional:    true,
		},
		{
			ID:      "platforms",
			Section: SectionScope,
			Label:   "Target Platforms",
			Type:    TypeMultiselect,
			Options: []string{"Web (Desktop)", "Web (Mobile Responsive)", "Native iOS", "Native Android"},
			Default: List("Web (Desktop)"),
		},
		{
			ID:        "mobileStack",
			Section:   SectionScope,
			Label:     "Android Stack",
			Type:      TypeSelect,
			Options:   []string{"React Native (Expo)", "Flutter", "Kotlin (Jetpack Compose)"},
			Condition: &Condition{Field: "platforms", Operator: OpContains, Value: Text("Native Android")},
		},
		{
			ID:        "iosStack",
			Section:   SectionScope,
			Label:     "iOS Stack",
			Type:      TypeSelect,
			Options:   []string{"React Native (Expo)", "Flutter", "Swift (SwiftUI)"},
			Condition: &Condition{Field: "platforms", Operator: OpContains, Value: Text("Native iOS")},
		},

		// UI/UX & Design System
		{
			ID:      "designIntent",
			Section: SectionDesign,
			Label:   "Design Intent",
			Type:    TypeSelect,
			Options: []string{"Clean/Enterprise (Stripe-like)", "Playful/Bouncy (Duolingo-like)", "Brutalist/Bold", "Minimalist/SaaS"},
		},
		{
			ID:          "visualRiskTolerance",
			Section:     SectionDesign,
			Label:       "Visual Risk Tolerance",
			Description: "How far may the UI stray from familiar conventions?",
			Type:        TypeSelect,
			Options:     []string{"Conservative", "Balanced", "Experimental"},
			Default:     Text("Balanced"),
		},
		{
			ID:      "themeMode",
			Section: SectionDesign,
			Label:   "Theme Mode",
			Type:    TypeSelect,
			Options: []string{"Light only", "Dark only", "System (Light + Dark)"},
			Default: Text("System (Light + Dark)"),
		},
		{
			ID:          "primaryColor",
			Section:     SectionDesign,
			Label:       "Primary Brand Color",
			Type:        TypeText,
			Placeholder: "#3b82f6",
			Default:     Text("#3b82f6"),
			Validation:  hexColorPattern,
		},
		{
			ID:          "secondaryColor",
			Section:     SectionDesign,
			Label:       "Secondary Color",
			Type:        TypeText,
			Placeholder: "#f97316",
			Validation:  hexColorPattern,
			Optional:    true,
		},
		{
			ID:      "headlineFont",
			Section: SectionDesign,
			Label:   "Headline Font",
			Type:    TypeSelect,
			Options: []string{"Geist", "Inter", "Playfair Display", "Space Grotesk"},
		},
		{
			ID:      "bodyFont",
			Section: SectionDesign,
			Label:   "Body Font",
			Type:    TypeSelect,
			Options: []string{"Inter", "Geist", "Merriweather", "JetBrains Mono"},
		},
		{
			ID:      "iconSet",
			Section: SectionDesign,
			Label:   "Iconography Set",
			Type:    TypeSelect,
			Options: []string{"Lucide React", "Heroicons", "FontAwesome", "Phosphor Icons"},
		},
		{
			ID:      "componentSystem",
			Section: SectionDesign,
			Label:   "Component System Strategy",
			Type:    TypeSelect,
			Options: []string{"shadcn/ui (Tailwind + Radix)", "Chakra UI", "Mantine", "Tailwind UI (Custom)"},
		},
		{
			ID:      "layoutRequirement",
			Section: SectionDesign,
			Label:   "Layout Structure",
			Type:    TypeSelect,
			Options: []string{"Sidebar Navigation", "Top Navbar Only", "Dashboard Grid", "Hybrid"},
		},

		// Features & Functional Specs
		{
			ID:          "killerFeature",
			Section:     SectionFeatures,
			Label:       "The 'Killer' Feature",
			Description: "The core value prop that makes the app unique.",
			Type:        TypeTextarea,
			Placeholder: "e.g., Automatic invoice generation from GPS logs.",
			Optional:    true,
		},
		{
			ID:          "userFlow",
			Section:     SectionFeatures,
			Label:       "Primary User Flow",
			Description: "Describe the 'Happy Path' for the core feature.",
			Type:        TypeTextarea,
			Placeholder: "1. Login -> 2. Connect Vehicle -> 3. Start Trip -> 4. Receive Report",
			Optional:    true,
		},
		{
			ID:          "secondaryFeatures",
			Section:     SectionFeatures,
			Label:       "Secondary Feature List",
			Type:        TypeTextarea,
			Placeholder: "User profile management, Export to CSV, Trip history filters",
			Optional:    true,
		},
		{
			ID:          "adminNeeds",
			Section:     SectionFeatures,
			Label:       "Admin/Internal Requirements",
			Type:        TypeTextarea,
			Placeholder: "Global dashboard to view all active vehicles and ban users.",
			Optional:    true,
		},

		// Frontend Architecture
		{
			ID:      "feFramework",
			Section: SectionFrontend,
			Label:   "Frontend Framework",
			Type:    TypeSelect,
			Options: []string{"Next.js (App Router)", "Next.js (Pages Router)", "React (Vite)", "Remix"},
			Default: Text("Next.js (App Router)"),
		},
		{
			ID:      "stylingEngine",
			Section: SectionFrontend,
			Label:   "Styling Engine",
			Type:    TypeSelect,
			Options: []string{"Tailwind CSS", "CSS Modules", "Styled Components", "SCSS"},
		},
		{
			ID:      "stateManagement",
			Section: SectionFrontend,
			Label:   "State Management Strategy",
			Type:    TypeSelect,
			Options: []string{"Zustand (Global)", "TanStack Query (Server State Only)", "React Context", "Redux Toolkit"},
		},
		{
			ID:      "formHandling",
			Section: SectionFrontend,
			Label:   "Form Handling & Validation",
			Type:    TypeSelect,
			Options: []string{"React Hook Form + Zod", "Formik + Yup", "Native Forms"},
		},

		// Backend & API Architecture
		{
			ID:      "beRuntime",
			Section: SectionBackend,
			Label:   "Backend Runtime",
			Type:    TypeSelect,
			Options: []string{"Node.js (TypeScript)", "Node.js (JavaScript)", "Go", "Python (FastAPI)", "Edge Runtime"},
		},
		{
			ID:      "apiStyle",
			Section: SectionBackend,
			Label:   "API Architecture",
			Type:    TypeSelect,
			Options: []string{"REST (OpenAPI/JSON)", "tRPC (Type-safe)", "GraphQL", "Server Actions Only"},
		},
		{
			ID:      "authStrategy",
			Section: SectionBackend,
			Label:   "Authentication Strategy",
			Type:    TypeSelect,
			Options: []string{"Clerk (Managed)", "Auth.js/NextAuth (Self-hosted)", "Supabase Auth", "Custom JWT"},
		},
		{
			ID:      "realtimeNeeds",
			Section: SectionBackend,
			Label:   "Real-time Requirements",
			Type:    TypeBoolean,
		},
		{
			ID:        "realtimeTransport",
			Section:   SectionBackend,
			Label:     "Real-time Transport",
			Type:      TypeSelect,
			Options:   []string{"WebSockets", "Server-Sent Events", "Managed (Pusher/Ably)"},
			Condition: &Condition{Field: "realtimeNeeds", Operator: OpEquals, Value: Bool(true)},
		},

		// Data Modeling
		{
			ID:      "dbEngine",
			Section: SectionData,
			Label:   "Database Engine",
			Type:    TypeSelect,
			Options: []string{"PostgreSQL", "MySQL", "SQLite", "MongoDB"},
		},
		{
			ID:        "orm",
			Section:   SectionData,
			Label:     "ORM / Query Builder",
			Type:      TypeSelect,
			Options:   []string{"Drizzle ORM", "Prisma", "Kysely", "Raw SQL"},
			Condition: &Condition{Field: "dbEngine", Operator: OpNotEquals, Value: Text("MongoDB")},
		},
		{
			ID:      "multiTenancy",
			Section: SectionData,
			Label:   "Multi-Tenancy Model",
			Type:    TypeSelect,
			Options: []string{"User-only data", "Team/Org isolation", "Public platform"},
		},
		{
			ID:      "dataRetention",
			Section: SectionData,
			Label:   "Data Retention Strategy",
			Type:    TypeSelect,
			Options: []string{"Hard Delete", "Soft Delete (is_deleted flag)", "Archive Table"},
		},

		// Integrations
		{
			ID:      "integrationList",
			Section: SectionIntegrations,
			Label:   "Required Third-Party Modules",
			Type:    TypeMultiselect,
			Options: []string{"Payments (Stripe/Lemon)", "File Storage (S3/R2)", "Email (Resend/SendGrid)", "None"},
		},
		{
			ID:        "paymentDetail",
			Section:   SectionIntegrations,
			Label:     "Billing Model",
			Type:      TypeSelect,
			Options:   []string{"One-time purchase", "Recurring Subscriptions (SaaS)", "Marketplace/Split"},
			Condition: &Condition{Field: "integrationList", Operator: OpContains, Value: Text("Payments (Stripe/Lemon)")},
		},
		{
			ID:        "storageDetail",
			Section:   SectionIntegrations,
			Label:     "Storage Types",
			Type:      TypeMultiselect,
			Options:   []string{"Public Avatars", "Encrypted Documents", "Large Video Assets"},
			Condition: &Condition{Field: "integrationList", Operator: OpContains, Value: Text("File Storage (S3/R2)")},
		},
		{
			ID:        "emailProvider",
			Section:   SectionIntegrations,
			Label:     "Email Provider",
			Type:      TypeSelect,
			Options:   []string{"Resend", "SendGrid", "Postmark"},
			Condition: &Condition{Field: "integrationList", Operator: OpContains, Value: Text("Email (Resend/SendGrid)")},
		},

		// Security & Infrastructure
		{
			ID:      "hosting",
			Section: SectionSecurity,
			Label:   "Deployment Platform",
			Type:    TypeSelect,
			Options: []string{"Vercel", "AWS", "Fly.io", "Railway", "DigitalOcean"},
		},
		{
			ID:      "rateLimiting",
			Section: SectionSecurity,
			Label:   "API Rate Limiting Needed?",
			Type:    TypeBoolean,
		},
		{
			ID:      "compliance",
			Section: SectionSecurity,
			Label:   "Compliance Requirements",
			Type:    TypeMultiselect,
			Options: []string{"GDPR", "SOC2", "HIPAA", "None"},
		},
		{
			ID:       "monitoring",
			Section:  SectionSecurity,
			Label:    "Monitoring & Error Tracking",
			Type:     TypeMultiselect,
			Options:  []string{"Sentry (Errors)", "Axiom (Logs)", "PostHog (Analytics)", "Datadog"},
			Optional: true,
		},
		{
			ID:      "cicd",
			Section: SectionSecurity,
			Label:   "CI/CD Pipeline",
			Type:    TypeSelect,
			Options: []string{"GitHub Actions", "Vercel Auto-deploy", "GitLab CI", "Manual"},
		},
	}
}
