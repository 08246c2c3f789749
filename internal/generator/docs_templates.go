package generator

const ReadmeTemplate = `# {{.ProjectName}}

Scaffolded with stackgen.

## Stack

- Frontend: {{if eq .Frontend "nextjs"}}Next.js{{else}}React (Vite){{end}}
{{- if eq .Schema "classic"}}
- Database: {{.Database}}
- ORM: {{.ORM}}
{{- end}}
{{- if .TRPCEnabled}}
- tRPC for type-safe APIs
{{- end}}
{{- if .AuthEnabled}}
- NextAuth.js authentication
{{- end}}
{{- if .TailwindEnabled}}
- Tailwind CSS
{{- end}}

## Getting started

` + "```sh" + `
{{.InstallCommand}}
{{- if .HasDocker}}
docker compose up -d
{{- end}}
{{- if .UsesPrisma}}
{{.RunPrefix}} db:push
{{- end}}
{{- if .UsesDrizzle}}
{{.RunPrefix}} db:push
{{- end}}
{{.RunPrefix}} dev
` + "```" + `

Copy ` + "`.env.example`" + ` to ` + "`.env`" + ` and fill in the values before starting.
`

const EnvExampleTemplate = `# Copy to .env and fill in real values.
{{- if eq .Schema "classic"}}
DATABASE_URL="{{.DatabaseURL}}"
{{- end}}
{{- if .AuthEnabled}}
NEXTAUTH_SECRET="change-me"
NEXTAUTH_URL="http://localhost:3000"
DISCORD_CLIENT_ID=""
DISCORD_CLIENT_SECRET=""
{{- end}}
`

const GitignoreTemplate = `node_modules/
{{if eq .Frontend "nextjs"}}.next/
out/
{{else}}dist/
{{end -}}
{{if .UsesDrizzle}}drizzle/
{{end -}}
{{if eq .Database "sqlite"}}*.db
{{end -}}
.env
.env.local
*.log
.DS_Store
`

const CIWorkflowTemplate = `name: CI

on:
  push:
    branches: [main]
  pull_request:

jobs:
  check:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
{{- if eq .PackageManager "pnpm"}}
      - uses: pnpm/action-setup@v3
        with:
          version: 9
{{- end}}
      - uses: actions/setup-node@v4
        with:
          node-version: 20
{{- if ne .PackageManager "npm"}}
          cache: {{.PackageManager}}
{{- else}}
          cache: npm
{{- end}}
      - run: {{.InstallCommand}}
      - run: {{.RunPrefix}} typecheck
      - run: {{.RunPrefix}} build
{{- if .UsesPrisma}}
        env:
          DATABASE_URL: "{{.DatabaseURL}}"
{{- end}}
`
