package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestDatabase_UserCRUD tests user database operations
func TestDatabase_UserCRUD(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	userID := uuid.New().String()

	// Create user
	t.Run("CreateUser", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password, role, status, prefers_audio_description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		`, userID, "Test User", "test@example.com", "hashed_password", "user", "Active", true, time.Now())

		if err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
	})

	// Read user
	t.Run("ReadUser", func(t *testing.T) {
		var id, name, email string
		var prefersAD bool
		err := env.DB.QueryRowContext(ctx, `
			SELECT id, name, email, prefers_audio_description FROM users WHERE id = $1
		`, userID).Scan(&id, &name, &email, &prefersAD)

		if err != nil {
			t.Fatalf("Failed to read user: %v", err)
		}

		if name != "Test User" {
			t.Errorf("Expected name 'Test User', got '%s'", name)
		}

		if !prefersAD {
			t.Error("Expected prefers_audio_description to be true")
		}
	})

	// Update user
	t.Run("UpdateUser", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE users SET name = $1, updated_at = $2 WHERE id = $3
		`, "Updated User", time.Now(), userID)

		if err != nil {
			t.Fatalf("Failed to update user: %v", err)
		}

		var name string
		env.DB.QueryRowContext(ctx, `SELECT name FROM users WHERE id = $1`, userID).Scan(&name)

		if name != "Updated User" {
			t.Errorf("Expected name 'Updated User', got '%s'", name)
		}
	})

	// Delete user
	t.Run("DeleteUser", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			t.Fatalf("Failed to delete user: %v", err)
		}

		var count int
		env.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = $1`, userID).Scan(&count)

		if count != 0 {
			t.Error("User should have been deleted")
		}
	})
}

// TestDatabase_ContentCRUD tests catalog database operations
func TestDatabase_ContentCRUD(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	contentID := uuid.New().String()

	// Create content item
	t.Run("CreateContent", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO content_items (id, title, overview, genres, release_year, audio_description, closed_captions, vote_average, vote_count, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		`, contentID, "Free Solo", "A climber attempts El Capitan without ropes.",
			"documentary,adventure", 2018, true, true, 8.1, 412, time.Now())

		if err != nil {
			t.Fatalf("Failed to create content: %v", err)
		}
	})

	// Read content item
	t.Run("ReadContent", func(t *testing.T) {
		var title string
		var audioDescription bool
		err := env.DB.QueryRowContext(ctx, `
			SELECT title, audio_description FROM content_items WHERE id = $1
		`, contentID).Scan(&title, &audioDescription)

		if err != nil {
			t.Fatalf("Failed to read content: %v", err)
		}

		if title != "Free Solo" {
			t.Errorf("Expected title 'Free Solo', got '%s'", title)
		}

		if !audioDescription {
			t.Error("Expected audio_description to be true")
		}
	})

	// Title search (case-insensitive, the way the repository queries)
	t.Run("SearchByTitle", func(t *testing.T) {
		var count int
		err := env.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM content_items WHERE title ILIKE $1
		`, "%free solo%").Scan(&count)

		if err != nil {
			t.Fatalf("Failed to search: %v", err)
		}

		if count != 1 {
			t.Errorf("Expected 1 match, got %d", count)
		}
	})

	// Filter by accessibility feature
	t.Run("FilterByAccessibility", func(t *testing.T) {
		rows, err := env.DB.QueryContext(ctx, `
			SELECT id FROM content_items
			WHERE audio_description = TRUE AND genres LIKE $1
			ORDER BY vote_average DESC
		`, "%documentary%")

		if err != nil {
			t.Fatalf("Failed to filter: %v", err)
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			count++
		}

		if count == 0 {
			t.Error("Expected to find at least one accessible title")
		}
	})

	// Update accessibility metadata
	t.Run("UpdateAccessibility", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE content_items SET sign_language = TRUE, updated_at = $1 WHERE id = $2
		`, time.Now(), contentID)

		if err != nil {
			t.Fatalf("Failed to update content: %v", err)
		}

		var signLanguage bool
		env.DB.QueryRowContext(ctx, `SELECT sign_language FROM content_items WHERE id = $1`, contentID).Scan(&signLanguage)

		if !signLanguage {
			t.Error("Expected sign_language to be true after update")
		}
	})
}

// TestDatabase_FavoritesAndRatings tests the user-content relations
func TestDatabase_FavoritesAndRatings(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()

	userID := uuid.New().String()
	contentID := uuid.New().String()

	// Setup user and content
	env.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, role, status, created_at, updated_at)
		VALUES ($1, 'Test', 'test@test.com', 'pass', 'user', 'Active', $2, $2)
	`, userID, time.Now())

	env.DB.ExecContext(ctx, `
		INSERT INTO content_items (id, title, overview, created_at, updated_at)
		VALUES ($1, 'CODA', 'A hearing child of deaf parents.', $2, $2)
	`, contentID, time.Now())

	// Add favorite
	t.Run("AddFavorite", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO favorites (id, user_id, content_id, created_at)
			VALUES ($1, $2, $3, $4)
		`, uuid.New().String(), userID, contentID, time.Now())

		if err != nil {
			t.Fatalf("Failed to add favorite: %v", err)
		}
	})

	// Duplicate favorite hits the unique constraint
	t.Run("DuplicateFavorite", func(t *testing.T) {
		result, err := env.DB.ExecContext(ctx, `
			INSERT INTO favorites (id, user_id, content_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, content_id) DO NOTHING
		`, uuid.New().String(), userID, contentID, time.Now())

		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected != 0 {
			t.Error("Duplicate favorite should not insert a row")
		}
	})

	// Rate content
	t.Run("RateContent", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO ratings (id, user_id, content_id, score, comment, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
		`, uuid.New().String(), userID, contentID, 9, "Beautiful film", time.Now())

		if err != nil {
			t.Fatalf("Failed to rate content: %v", err)
		}
	})

	// Re-rating updates the existing row (upsert)
	t.Run("UpdateRating", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO ratings (id, user_id, content_id, score, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (user_id, content_id)
			DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at
		`, uuid.New().String(), userID, contentID, 10, time.Now())

		if err != nil {
			t.Fatalf("Failed to upsert rating: %v", err)
		}

		var score int
		env.DB.QueryRowContext(ctx, `
			SELECT score FROM ratings WHERE user_id = $1 AND content_id = $2
		`, userID, contentID).Scan(&score)

		if score != 10 {
			t.Errorf("Expected score 10 after upsert, got %d", score)
		}

		var count int
		env.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM ratings WHERE user_id = $1 AND content_id = $2
		`, userID, contentID).Scan(&count)

		if count != 1 {
			t.Errorf("Expected a single rating row, got %d", count)
		}
	})

	// Aggregate the way the repository computes vote averages
	t.Run("RatingAggregate", func(t *testing.T) {
		var average float64
		var count int
		err := env.DB.QueryRowContext(ctx, `
			SELECT COALESCE(AVG(score), 0), COUNT(*) FROM ratings WHERE content_id = $1
		`, contentID).Scan(&average, &count)

		if err != nil {
			t.Fatalf("Failed to aggregate ratings: %v", err)
		}

		if average != 10.0 {
			t.Errorf("Expected average 10.0, got %f", average)
		}

		if count != 1 {
			t.Errorf("Expected count 1, got %d", count)
		}
	})

	// List favorites joined with content
	t.Run("ListFavoritesWithContent", func(t *testing.T) {
		rows, err := env.DB.QueryContext(ctx, `
			SELECT c.id, c.title
			FROM favorites f
			JOIN content_items c ON c.id = f.content_id
			WHERE f.user_id = $1
			ORDER BY f.created_at DESC
		`, userID)

		if err != nil {
			t.Fatalf("Failed to list favorites: %v", err)
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			count++
		}

		if count != 1 {
			t.Errorf("Expected 1 favorite, got %d", count)
		}
	})
}

// TestDatabase_Transactions tests database transactions (ACID)
func TestDatabase_Transactions(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()

	// Test rollback
	t.Run("Rollback", func(t *testing.T) {
		tx, err := env.DB.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}

		userID := uuid.New().String()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password, role, status, created_at, updated_at)
			VALUES ($1, 'Rollback Test', 'rollback@test.com', 'pass', 'user', 'Active', $2, $2)
		`, userID, time.Now())

		if err != nil {
			t.Fatalf("Failed to insert: %v", err)
		}

		// Rollback
		if err := tx.Rollback(); err != nil {
			t.Fatalf("Failed to rollback: %v", err)
		}

		// Verify user doesn't exist
		var count int
		env.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = $1`, userID).Scan(&count)

		if count != 0 {
			t.Error("User should not exist after rollback")
		}
	})

	// Test commit
	t.Run("Commit", func(t *testing.T) {
		tx, err := env.DB.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}

		userID := uuid.New().String()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password, role, status, created_at, updated_at)
			VALUES ($1, 'Commit Test', 'commit@test.com', 'pass', 'user', 'Active', $2, $2)
		`, userID, time.Now())

		if err != nil {
			tx.Rollback()
			t.Fatalf("Failed to insert: %v", err)
		}

		if err := tx.Commit(); err != nil {
			t.Fatalf("Failed to commit: %v", err)
		}

		// Verify user exists
		var count int
		env.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = $1`, userID).Scan(&count)

		if count != 1 {
			t.Error("User should exist after commit")
		}
	})
}
