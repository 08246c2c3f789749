package generator

const PrismaSchemaTemplate = `generator client {
  provider = "prisma-client-js"
}

datasource db {
  provider = "{{.PrismaProvider}}"
  url      = env("DATABASE_URL")
}

model Post {
  id        Int      @id @default(autoincrement())
  title     String
  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}
{{if .AuthEnabled}}
model Account {
  id                String  @id @default(cuid())
  userId            String
  type              String
  provider          String
  providerAccountId String
  refresh_token     String?
  access_token      String?
  expires_at        Int?
  token_type        String?
  scope             String?
  id_token          String?
  session_state     String?
  user              User    @relation(fields: [userId], references: [id], onDelete: Cascade)

  @@unique([provider, providerAccountId])
}

model Session {
  id           String   @id @default(cuid())
  sessionToken String   @unique
  userId       String
  expires      DateTime
  user         User     @relation(fields: [userId], references: [id], onDelete: Cascade)
}

model User {
  id            String    @id @default(cuid())
  name          String?
  email         String?   @unique
  emailVerified DateTime?
  image         String?
  accounts      Account[]
  sessions      Session[]
}

model VerificationToken {
  identifier String
  token      String   @unique
  expires    DateTime

  @@unique([identifier, token])
}
{{end -}}
`

const DrizzleConfigTemplate = `import { type Config } from "drizzle-kit";

export default {
  schema: "./src/server/db/schema.ts",
  dialect: "{{.DrizzleDialect}}",
  dbCredentials: {
    url: process.env.DATABASE_URL!,
  },
} satisfies Config;
`

const DrizzleSchemaTemplate = `{{if eq .DrizzleDialect "mysql" -}}
import { mysqlTable, serial, timestamp, varchar } from "drizzle-orm/mysql-core";

export const posts = mysqlTable("posts", {
  id: serial("id").primaryKey(),
  title: varchar("title", { length: 256 }).notNull(),
  createdAt: timestamp("created_at").defaultNow().notNull(),
});
{{- else if eq .DrizzleDialect "sqlite" -}}
import { integer, sqliteTable, text } from "drizzle-orm/sqlite-core";

export const posts = sqliteTable("posts", {
  id: integer("id").primaryKey({ autoIncrement: true }),
  title: text("title").notNull(),
  createdAt: integer("created_at", { mode: "timestamp" }).notNull(),
});
{{- else -}}
import { pgTable, serial, timestamp, varchar } from "drizzle-orm/pg-core";

export const posts = pgTable("posts", {
  id: serial("id").primaryKey(),
  title: varchar("title", { length: 256 }).notNull(),
  createdAt: timestamp("created_at").defaultNow().notNull(),
});
{{- end}}
`

const DrizzleClientTemplate = `{{if eq .DrizzleDialect "mysql" -}}
import { drizzle } from "drizzle-orm/mysql2";
import mysql from "mysql2/promise";
import * as schema from "./schema";

const connection = await mysql.createConnection(process.env.DATABASE_URL!);

export const db = drizzle(connection, { schema, mode: "default" });
{{- else if eq .DrizzleDialect "sqlite" -}}
import Database from "better-sqlite3";
import { drizzle } from "drizzle-orm/better-sqlite3";
import * as schema from "./schema";

const sqlite = new Database(process.env.DATABASE_URL ?? "dev.db");

export const db = drizzle(sqlite, { schema });
{{- else -}}
import { drizzle } from "drizzle-orm/postgres-js";
import postgres from "postgres";
import * as schema from "./schema";

const client = postgres(process.env.DATABASE_URL!);

export const db = drizzle(client, { schema });
{{- end}}
`

const DockerComposeTemplate = `services:
  db:
    image: {{.DatabaseImage}}
    restart: always
    ports:
      - "{{.DatabasePort}}:{{.DatabasePort}}"
{{- if eq .Database "mysql"}}
    environment:
      MYSQL_ROOT_PASSWORD: password
      MYSQL_DATABASE: {{.ProjectName}}
    volumes:
      - db-data:/var/lib/mysql
{{- else if eq .Database "mssql"}}
    environment:
      ACCEPT_EULA: "Y"
      MSSQL_SA_PASSWORD: "YourStrong@Passw0rd"
    volumes:
      - db-data:/var/opt/mssql
{{- else}}
    environment:
      POSTGRES_PASSWORD: password
      POSTGRES_DB: {{.ProjectName}}
    volumes:
      - db-data:/var/lib/postgresql/data
{{- end}}

volumes:
  db-data:
`
