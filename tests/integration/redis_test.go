package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestRedis_BasicOperations tests basic Redis operations
func TestRedis_BasicOperations(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	// Set and Get
	t.Run("SetGet", func(t *testing.T) {
		err := env.Redis.Set(ctx, "test:key", "test-value", time.Minute).Err()
		if err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}

		val, err := env.Redis.Get(ctx, "test:key").Result()
		if err != nil {
			t.Fatalf("Failed to get key: %v", err)
		}

		if val != "test-value" {
			t.Errorf("Expected 'test-value', got '%s'", val)
		}
	})

	// Set with expiration
	t.Run("SetWithExpiration", func(t *testing.T) {
		err := env.Redis.Set(ctx, "test:expiring", "value", 100*time.Millisecond).Err()
		if err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}

		// Verify it exists
		_, err = env.Redis.Get(ctx, "test:expiring").Result()
		if err != nil {
			t.Fatalf("Key should exist: %v", err)
		}

		// Wait for expiration
		time.Sleep(150 * time.Millisecond)

		// Verify it's gone
		_, err = env.Redis.Get(ctx, "test:expiring").Result()
		if err != redis.Nil {
			t.Error("Key should have expired")
		}
	})

	// Delete
	t.Run("Delete", func(t *testing.T) {
		env.Redis.Set(ctx, "test:delete", "value", time.Minute)

		err := env.Redis.Del(ctx, "test:delete").Err()
		if err != nil {
			t.Fatalf("Failed to delete key: %v", err)
		}

		_, err = env.Redis.Get(ctx, "test:delete").Result()
		if err != redis.Nil {
			t.Error("Key should have been deleted")
		}
	})
}

// TestRedis_ContentCache tests the content cache-aside pattern used by the
// catalog service
func TestRedis_ContentCache(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	type ContentItem struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		AudioDescription bool   `json:"audio_description"`
		ClosedCaptions   bool   `json:"closed_captions"`
	}

	key := "content:abc-123"

	// Cache miss first
	t.Run("CacheMiss", func(t *testing.T) {
		_, err := env.Redis.Get(ctx, key).Result()
		if err != redis.Nil {
			t.Error("Expected cache miss")
		}
	})

	// Store JSON after the repository lookup
	t.Run("StoreJSON", func(t *testing.T) {
		item := ContentItem{
			ID:               "abc-123",
			Title:            "Free Solo",
			AudioDescription: true,
			ClosedCaptions:   true,
		}

		data, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("Failed to marshal: %v", err)
		}

		err = env.Redis.Set(ctx, key, data, 10*time.Minute).Err()
		if err != nil {
			t.Fatalf("Failed to store JSON: %v", err)
		}
	})

	// Retrieve JSON on the next hit
	t.Run("RetrieveJSON", func(t *testing.T) {
		data, err := env.Redis.Get(ctx, key).Bytes()
		if err != nil {
			t.Fatalf("Failed to get JSON: %v", err)
		}

		var item ContentItem
		if err := json.Unmarshal(data, &item); err != nil {
			t.Fatalf("Failed to unmarshal: %v", err)
		}

		if item.Title != "Free Solo" {
			t.Errorf("Expected title 'Free Solo', got '%s'", item.Title)
		}

		if !item.AudioDescription {
			t.Error("Expected audio_description to survive the round trip")
		}
	})

	// Invalidation after a rating refresh
	t.Run("Invalidate", func(t *testing.T) {
		err := env.Redis.Del(ctx, key).Err()
		if err != nil {
			t.Fatalf("Failed to invalidate: %v", err)
		}

		_, err = env.Redis.Get(ctx, key).Result()
		if err != redis.Nil {
			t.Error("Key should have been invalidated")
		}
	})
}

// TestRedis_SessionOperations tests the hash layout used for user sessions
func TestRedis_SessionOperations(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	// HSet
	t.Run("HSet", func(t *testing.T) {
		err := env.Redis.HSet(ctx, "session:user:123", map[string]interface{}{
			"name":               "Maria Silva",
			"preferred_language": "pt-BR",
			"context":            "search",
		}).Err()

		if err != nil {
			t.Fatalf("Failed to HSet: %v", err)
		}
	})

	// HGet
	t.Run("HGet", func(t *testing.T) {
		lang, err := env.Redis.HGet(ctx, "session:user:123", "preferred_language").Result()
		if err != nil {
			t.Fatalf("Failed to HGet: %v", err)
		}

		if lang != "pt-BR" {
			t.Errorf("Expected 'pt-BR', got '%s'", lang)
		}
	})

	// HGetAll
	t.Run("HGetAll", func(t *testing.T) {
		data, err := env.Redis.HGetAll(ctx, "session:user:123").Result()
		if err != nil {
			t.Fatalf("Failed to HGetAll: %v", err)
		}

		if len(data) != 3 {
			t.Errorf("Expected 3 fields, got %d", len(data))
		}
	})

	// Context switches overwrite the field
	t.Run("SwitchContext", func(t *testing.T) {
		err := env.Redis.HSet(ctx, "session:user:123", "context", "player").Err()
		if err != nil {
			t.Fatalf("Failed to switch context: %v", err)
		}

		current, _ := env.Redis.HGet(ctx, "session:user:123", "context").Result()
		if current != "player" {
			t.Errorf("Expected context 'player', got '%s'", current)
		}
	})
}

// TestRedis_CommandCounters tests the counter layout for command stats
func TestRedis_CommandCounters(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	t.Run("HIncrBy", func(t *testing.T) {
		env.Redis.HSet(ctx, "stats:commands:daily", "search", 0)

		newVal, err := env.Redis.HIncrBy(ctx, "stats:commands:daily", "search", 1).Result()
		if err != nil {
			t.Fatalf("Failed to HIncrBy: %v", err)
		}

		if newVal != 1 {
			t.Errorf("Expected 1, got %d", newVal)
		}

		newVal, err = env.Redis.HIncrBy(ctx, "stats:commands:daily", "search", 5).Result()
		if err != nil {
			t.Fatalf("Failed to HIncrBy: %v", err)
		}

		if newVal != 6 {
			t.Errorf("Expected 6, got %d", newVal)
		}
	})
}

// TestRedis_PubSub tests Redis pub/sub
func TestRedis_PubSub(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	// Subscribe and publish
	t.Run("PubSub", func(t *testing.T) {
		pubsub := env.Redis.Subscribe(ctx, "catalog:events")
		defer pubsub.Close()

		// Wait for subscription to be ready
		_, err := pubsub.Receive(ctx)
		if err != nil {
			t.Fatalf("Failed to subscribe: %v", err)
		}

		// Publish in goroutine
		go func() {
			time.Sleep(100 * time.Millisecond)
			env.Redis.Publish(ctx, "catalog:events", "favorite.added")
		}()

		// Receive message with timeout
		ch := pubsub.Channel()
		select {
		case msg := <-ch:
			if msg.Payload != "favorite.added" {
				t.Errorf("Expected 'favorite.added', got '%s'", msg.Payload)
			}
		case <-time.After(2 * time.Second):
			t.Error("Timeout waiting for message")
		}
	})
}

// TestRedis_RateLimiting tests rate limiting pattern
func TestRedis_RateLimiting(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	// Sliding window rate limiter
	t.Run("RateLimiter", func(t *testing.T) {
		key := "ratelimit:user:123"
		limit := int64(5)
		window := time.Minute

		// Simulate requests
		for i := 0; i < 7; i++ {
			count, err := env.Redis.Incr(ctx, key).Result()
			if err != nil {
				t.Fatalf("Failed to increment: %v", err)
			}

			// Set expiration on first request
			if count == 1 {
				env.Redis.Expire(ctx, key, window)
			}

			if count <= limit {
				t.Logf("Request %d allowed", i+1)
			} else {
				t.Logf("Request %d denied (rate limited)", i+1)
			}
		}

		// Verify count
		count, _ := env.Redis.Get(ctx, key).Int64()
		if count != 7 {
			t.Errorf("Expected count 7, got %d", count)
		}
	})
}
