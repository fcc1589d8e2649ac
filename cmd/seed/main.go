package main

import (
	"context"
	"log"
	"os"
	"time"

	"notes-manager/internal/entity"
	"notes-manager/internal/repository/implementation"
	"notes-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var sampleNotes = []struct {
	title       string
	description string
}{
	{"Welcome", "This is your notes manager. Create, edit and delete notes from the web UI or the notes CLI."},
	{"Groceries", "Milk, eggs, bread, coffee"},
	{"Ideas", "Write down anything before it escapes."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	repo := implementation.NewNoteRepository(db)
	ctx := context.Background()

	for _, sample := range sampleNotes {
		now := time.Now()
		note := entity.Note{
			Id:          uuid.New(),
			Title:       sample.title,
			Description: sample.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(ctx, &note); err != nil {
			log.Fatalf("Error: Failed to seed note %q: %v", sample.title, err)
		}
		log.Printf("Seeded note %s (%s)", note.Id, note.Title)
	}

	log.Println("Seeding completed")
}
