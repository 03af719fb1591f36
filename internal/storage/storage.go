package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/ironlog/ironlog/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	godotenv.Load() // A .env file is optional.

	url := os.Getenv("IRONLOG_DATABASE_URL")
	if url == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			url = cfg.DB.ConnectionString
		}
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "IRONLOG_DATABASE_URL not set and no database.connection_string in config")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	logrus.WithField("url", url).Debug("storage ready")
	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_exercises (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            name TEXT NOT NULL,
            sets_spec TEXT NOT NULL,
            rest_spec TEXT NOT NULL,
            notes TEXT,
            primary_muscle TEXT,
            order_index INTEGER NOT NULL,
            FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            workout_name TEXT NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT,
            completed INTEGER NOT NULL DEFAULT 0,
            notes TEXT
        );

        CREATE TABLE IF NOT EXISTS session_sets (
            id TEXT PRIMARY KEY,
            session_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            set_index INTEGER NOT NULL,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            completed_at TEXT NOT NULL,
            FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS day_completions (
            date TEXT PRIMARY KEY,
            exercise_ids TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}
