package main

import (
	"log"
	"os"

	"paperspace-be/internal/model"
	"paperspace-be/pkg/database"

	"github.com/joho/godotenv"
)

var setupStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS vector;`,
}

// AutoMigrate adds foreign keys without delete rules, so cascading cleanup
// is declared separately.
var constraintStatements = []string{
	`ALTER TABLE workspace_papers DROP CONSTRAINT IF EXISTS fk_workspace_papers_workspace;`,
	`ALTER TABLE workspace_papers ADD CONSTRAINT fk_workspace_papers_workspace FOREIGN KEY (workspace_id) REFERENCES workspaces(id) ON DELETE CASCADE;`,
	`ALTER TABLE workspace_papers DROP CONSTRAINT IF EXISTS fk_workspace_papers_paper;`,
	`ALTER TABLE workspace_papers ADD CONSTRAINT fk_workspace_papers_paper FOREIGN KEY (paper_id) REFERENCES papers(id) ON DELETE CASCADE;`,
	`ALTER TABLE conversations DROP CONSTRAINT IF EXISTS fk_conversations_workspace;`,
	`ALTER TABLE conversations ADD CONSTRAINT fk_conversations_workspace FOREIGN KEY (workspace_id) REFERENCES workspaces(id) ON DELETE CASCADE;`,
	`ALTER TABLE messages DROP CONSTRAINT IF EXISTS fk_messages_conversation;`,
	`ALTER TABLE messages ADD CONSTRAINT fk_messages_conversation FOREIGN KEY (conversation_id) REFERENCES conversations(id) ON DELETE CASCADE;`,
	`ALTER TABLE paper_chunks DROP CONSTRAINT IF EXISTS fk_paper_chunks_paper;`,
	`ALTER TABLE paper_chunks ADD CONSTRAINT fk_paper_chunks_paper FOREIGN KEY (paper_id) REFERENCES papers(id) ON DELETE CASCADE;`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using environment variables")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	for _, stmt := range setupStatements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("Failed to run setup statement %q: %v", stmt, err)
		}
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.Paper{},
		&model.WorkspacePaper{},
		&model.Conversation{},
		&model.Message{},
		&model.PaperChunk{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("Failed to apply constraint %q: %v", stmt, err)
		}
	}

	log.Println("✅ Database migration completed")
}
