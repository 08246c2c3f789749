package generator

const PackageJSONTemplate = `{
  "name": "{{kebab .ProjectName}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
{{- if eq .Frontend "nextjs"}}
    "dev": "next dev",
    "build": "next build",
    "start": "next start",
{{- else}}
    "dev": "vite",
    "build": "tsc && vite build",
    "preview": "vite preview",
{{- end}}
{{- if .UsesPrisma}}
    "db:push": "prisma db push",
    "db:studio": "prisma studio",
{{- end}}
{{- if .UsesDrizzle}}
    "db:push": "drizzle-kit push",
    "db:studio": "drizzle-kit studio",
{{- end}}
    "typecheck": "tsc --noEmit"
  },
  "dependencies": {
{{- if .UsesPrisma}}
    "@prisma/client": "^5.14.0",
{{- end}}
{{- if .TRPCEnabled}}
    "@tanstack/react-query": "^4.36.1",
    "@trpc/client": "^10.45.2",
{{- if eq .Frontend "nextjs"}}
    "@trpc/next": "^10.45.2",
{{- end}}
    "@trpc/react-query": "^10.45.2",
    "@trpc/server": "^10.45.2",
{{- end}}
{{- if .UsesDrizzle}}
    "drizzle-orm": "^0.30.10",
    "{{.DrizzleDriver}}": "latest",
{{- end}}
{{- if eq .Frontend "nextjs"}}
    "next": "^14.2.3",
{{- end}}
{{- if .AuthEnabled}}
    "next-auth": "^4.24.7",
{{- end}}
    "react": "^18.3.1",
    "react-dom": "^18.3.1",
    "zod": "^3.23.8"
  },
  "devDependencies": {
{{- if eq .Frontend "react"}}
    "@vitejs/plugin-react": "^4.2.1",
{{- end}}
    "@types/node": "^20.12.12",
    "@types/react": "^18.3.2",
    "@types/react-dom": "^18.3.0",
{{- if .UsesDrizzle}}
    "drizzle-kit": "^0.21.2",
{{- end}}
{{- if .UsesPrisma}}
    "prisma": "^5.14.0",
{{- end}}
{{- if .TailwindEnabled}}
    "autoprefixer": "^10.4.19",
    "postcss": "^8.4.38",
    "tailwindcss": "^3.4.3",
{{- end}}
{{- if eq .Frontend "react"}}
    "vite": "^5.2.11",
{{- end}}
    "typescript": "^5.4.5"
  }
}
`

const TSConfigTemplate = `{
  "compilerOptions": {
    "target": "ES2022",
    "lib": ["dom", "dom.iterable", "ES2022"],
    "module": "ESNext",
    "moduleResolution": "Bundler",
    "jsx": "preserve",
    "strict": true,
    "noUncheckedIndexedAccess": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "incremental": true,
    "noEmit": true,
    "paths": {
      "~/*": ["./src/*"]
    }
  },
  "include": ["**/*.ts", "**/*.tsx"],
  "exclude": ["node_modules"]
}
`

const NextConfigTemplate = `/** @type {import("next").NextConfig} */
const config = {
  reactStrictMode: true,
};

export default config;
`

const NextAppTemplate = `import type { AppProps } from "next/app";
{{- if .AuthEnabled}}
import { SessionProvider } from "next-auth/react";
{{- end}}
import "~/styles/globals.css";
{{- if .TRPCEnabled}}
import { api } from "~/utils/api";
{{- end}}

{{if .AuthEnabled -}}
function App({ Component, pageProps: { session, ...pageProps } }: AppProps) {
  return (
    <SessionProvider session={session}>
      <Component {...pageProps} />
    </SessionProvider>
  );
}
{{- else -}}
function App({ Component, pageProps }: AppProps) {
  return <Component {...pageProps} />;
}
{{- end}}

{{if .TRPCEnabled -}}
export default api.withTRPC(App);
{{- else -}}
export default App;
{{- end}}
`

const NextIndexTemplate = `export default function Home() {
  return (
    <main{{if .TailwindEnabled}} className="flex min-h-screen flex-col items-center justify-center"{{end}}>
      <h1{{if .TailwindEnabled}} className="text-4xl font-bold"{{end}}>{{.ProjectName}}</h1>
      <p>Generated by stackgen.</p>
    </main>
  );
}
`

const ViteConfigTemplate = `import react from "@vitejs/plugin-react";
import { defineConfig } from "vite";

export default defineConfig({
  plugins: [react()],
  resolve: {
    alias: {
      "~": "/src",
    },
  },
});
`

const ViteIndexHTMLTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.ProjectName}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`

const ViteMainTemplate = `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App";
import "./styles/globals.css";

ReactDOM.createRoot(document.getElementById("root")!).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
);
`

const ViteAppTemplate = `export default function App() {
  return (
    <main{{if .TailwindEnabled}} className="flex min-h-screen flex-col items-center justify-center"{{end}}>
      <h1{{if .TailwindEnabled}} className="text-4xl font-bold"{{end}}>{{.ProjectName}}</h1>
      <p>Generated by stackgen.</p>
    </main>
  );
}
`

const GlobalCSSTemplate = `{{if .TailwindEnabled -}}
@tailwind base;
@tailwind components;
@tailwind utilities;
{{- else -}}
html,
body {
  margin: 0;
  font-family: system-ui, sans-serif;
}
{{- end}}
`

const TailwindConfigTemplate = `import { type Config } from "tailwindcss";

export default {
  content: ["./src/**/*.tsx"{{if eq .Frontend "react"}}, "./index.html"{{end}}],
  theme: {
    extend: {},
  },
  plugins: [],
} satisfies Config;
`

const PostCSSConfigTemplate = `module.exports = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
};
`
