package blueprint

// registry is keyed by question id, then by selected option.
var registry = map[string]map[string]Blueprint{
	// Frontend frameworks
	"feFramework": {
		"Next.js (App Router)": {
			Title:         "Next.js 14+ App Router",
			Description:   "React framework with Server Components and Streaming.",
			EnvVars:       []string{"NEXT_PUBLIC_API_URL"},
			Packages:      []string{"next", "react", "react-dom"},
			RequiredFiles: []string{"app/layout.tsx", "app/page.tsx", "middleware.ts"},
			Constraints: []string{
				"Use 'use client' directive only for interactive leaves.",
				"Implement metadata API for SEO.",
				"Use Server Actions for mutations where possible.",
			},
		},
		"React (Vite)": {
			Title:         "React SPA (Vite)",
			Description:   "Standard Single Page Application.",
			EnvVars:       []string{"VITE_API_URL"},
			Packages:      []string{"react", "react-dom", "react-router-dom"},
			RequiredFiles: []string{"src/main.tsx", "src/App.tsx"},
			Constraints: []string{
				"Use React Query for server state management.",
				"Ensure lazy loading for route splitting.",
			},
		},
	},

	// Styling
	"stylingEngine": {
		"Tailwind CSS": {
			Title:         "Tailwind CSS",
			Description:   "Utility-first CSS framework.",
			Packages:      []string{"tailwindcss", "postcss", "autoprefixer", "clsx", "tailwind-merge"},
			RequiredFiles: []string{"tailwind.config.ts", "globals.css"},
			Constraints: []string{
				"Use 'clsx' and 'tailwind-merge' for dynamic class composition.",
				"Define theme colors in tailwind.config.ts for consistency.",
			},
		},
	},

	// Backend runtime
	"beRuntime": {
		"Node.js (TypeScript)": {
			Title:         "Node.js (LTS) with TypeScript",
			Description:   "Standard backend runtime.",
			EnvVars:       []string{"PORT", "NODE_ENV"},
			Packages:      []string{"tsx", "typescript", "@types/node"},
			RequiredFiles: []string{"tsconfig.json", "src/index.ts"},
			Constraints: []string{
				"Enforce strict type checking.",
				"Use async/await for all I/O operations.",
			},
		},
	},

	// Authentication
	"authStrategy": {
		"Clerk (Managed)": {
			Title:       "Clerk Authentication",
			Description: "Managed User Management & Auth.",
			EnvVars: []string{
				"NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY",
				"CLERK_SECRET_KEY",
				"CLERK_WEBHOOK_SECRET",
			},
			Packages:      []string{"@clerk/nextjs"},
			RequiredFiles: []string{"middleware.ts", "app/api/webhooks/clerk/route.ts"},
			Constraints: []string{
				"Protect routes using Clerk Middleware matcher.",
				"Sync user data to local DB via Webhooks (user.created, user.updated).",
				"Do NOT store sensitive auth data locally; rely on Clerk session token.",
			},
			SchemaSnippet: schema(`
// Recommended User Table for Clerk Sync
model User {
  id        String   @id // Matches Clerk ID
  email     String   @unique
  firstName String?
  lastName  String?
  imageUrl  String?
  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}
`),
		},
		"Auth.js/NextAuth (Self-hosted)": {
			Title:         "Auth.js (NextAuth v5)",
			Description:   "Self-hosted, database-backed authentication.",
			EnvVars:       []string{"AUTH_SECRET", "AUTH_URL", "GITHUB_ID", "GITHUB_SECRET"},
			Packages:      []string{"next-auth@beta"},
			RequiredFiles: []string{"auth.ts", "app/api/auth/[...nextauth]/route.ts"},
			Constraints: []string{
				"Use 'jose' for edge-compatible JWT handling.",
				"Configure 'trustHost' for production deployment.",
			},
			SchemaSnippet: schema(`
// NextAuth Standard Schema
model User {
  id            String    @id @default(cuid())
  name          String?
  email         String    @unique
  emailVerified DateTime?
  image         String?
  accounts      Account[]
  sessions      Session[]
}
`),
		},
	},

	// Database
	"dbEngine": {
		"PostgreSQL": {
			Title:       "PostgreSQL",
			Description: "Relational Database System.",
			EnvVars:     []string{"DATABASE_URL", "DIRECT_URL (for migration)"},
			Packages:    []string{"pg"},
			Constraints: []string{
				"Use connection pooling (PgBouncer) for Serverless environments.",
				"Index all Foreign Keys and frequently queried columns.",
			},
		},
		"SQLite": {
			Title:       "SQLite",
			Description: "Embedded file database.",
			EnvVars:     []string{"DATABASE_URL"},
			Packages:    []string{"better-sqlite3"},
			Constraints: []string{
				"Enable WAL journal mode for concurrent readers.",
				"Keep the database file outside the deploy artifact.",
			},
		},
	},
	"orm": {
		"Prisma": {
			Title:         "Prisma ORM",
			Description:   "Next-generation Node.js and TypeScript ORM.",
			Packages:      []string{"prisma", "@prisma/client"},
			RequiredFiles: []string{"prisma/schema.prisma"},
			Constraints: []string{
				"Do not import PrismaClient in 'use client' components.",
				"Instantiate a singleton PrismaClient instance to prevent connection exhaustion in dev.",
			},
		},
		"Drizzle ORM": {
			Title:         "Drizzle ORM",
			Description:   "Lightweight TypeScript ORM.",
			EnvVars:       []string{"DATABASE_URL"},
			Packages:      []string{"drizzle-orm", "drizzle-kit", "postgres"},
			RequiredFiles: []string{"drizzle.config.ts", "src/db/schema.ts"},
			Constraints: []string{
				"Separate schema definition from connection logic.",
				"Use 'migrate' command in CI/CD pipeline.",
			},
		},
	},

	// Integrations
	"paymentDetail": {
		"Recurring Subscriptions (SaaS)": {
			Title:       "Stripe Subscriptions",
			Description: "Recurring billing logic.",
			EnvVars: []string{
				"STRIPE_SECRET_KEY",
				"STRIPE_WEBHOOK_SECRET",
				"NEXT_PUBLIC_STRIPE_PUBLISHABLE_KEY",
			},
			Packages:      []string{"stripe"},
			RequiredFiles: []string{"app/api/webhooks/stripe/route.ts", "lib/stripe.ts"},
			Constraints: []string{
				"Implement 'portal' session for user billing management.",
				"Handle 'invoice.payment_failed' events to revoke access.",
				"Store 'stripeCustomerId' and 'subscriptionId' on the User model.",
			},
			SchemaSnippet: schema(`
// Subscription Fields
model User {
  // ... other fields
  stripeCustomerId String? @unique
  subscriptionId   String?
  planStatus       String  @default("active") // active, past_due, canceled
  currentPeriodEnd DateTime?
}
`),
		},
	},
	"storageDetail": {
		"Public Avatars": {
			Title:       "Object Storage (Public Read)",
			Description: "S3/R2 Bucket for user assets.",
			EnvVars: []string{
				"AWS_ACCESS_KEY_ID",
				"AWS_SECRET_ACCESS_KEY",
				"AWS_REGION",
				"BUCKET_NAME",
			},
			Packages:      []string{"@aws-sdk/client-s3", "@aws-sdk/s3-request-presigner"},
			RequiredFiles: []string{"lib/s3.ts"},
			Constraints: []string{
				"Configure CORS to allow Uploads from your domain.",
				"Use Presigned URLs for uploads to avoid passing files through the server.",
				"Set Cache-Control headers (max-age=31536000) for immutable assets.",
			},
		},
	},
	"emailProvider": {
		"Resend": {
			Title:         "Resend",
			Description:   "Transactional email API.",
			EnvVars:       []string{"RESEND_API_KEY", "EMAIL_FROM"},
			Packages:      []string{"resend", "@react-email/components"},
			RequiredFiles: []string{"lib/email.ts", "emails/welcome.tsx"},
			Constraints: []string{
				"Verify the sending domain (SPF/DKIM) before launch.",
				"Send email from background jobs, never inline in request handlers.",
			},
		},
	},
}
