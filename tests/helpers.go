package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestDB создает тестовую БД с помощью testcontainers
func SetupTestDB(t *testing.T) (*mongo.Collection, func()) {
	t.Helper()
	ctx := context.Background()

	// Создаем MongoDB контейнер
	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	connStr, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	coll := client.Database("kanban_test").Collection("tasks")

	cleanup := func() {
		client.Disconnect(ctx)
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return coll, cleanup
}

// ClearTasks очищает коллекцию
func ClearTasks(t *testing.T, coll *mongo.Collection) {
	t.Helper()
	ctx := context.Background()

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		t.Fatalf("Failed to clear tasks: %v", err)
	}
}

// SeedTasks вставляет задачи напрямую в коллекцию, минуя API
func SeedTasks(t *testing.T, coll *mongo.Collection, count int) []string {
	t.Helper()
	ctx := context.Background()

	ids := make([]string, 0, count)
	base := time.Now().UnixMilli()
	for i := 0; i < count; i++ {
		taskID := fmt.Sprintf("task-%d", base+int64(i))
		_, err := coll.InsertOne(ctx, bson.M{
			"taskId": taskID,
			"text":   fmt.Sprintf("Task %d", i+1),
			"column": "todo",
		})
		if err != nil {
			t.Fatalf("Failed to seed task: %v", err)
		}
		ids = append(ids, taskID)
	}

	return ids
}

// SeedTaskWithColumn вставляет задачу с произвольной колонкой, минуя API
func SeedTaskWithColumn(t *testing.T, coll *mongo.Collection, taskID, text, column string) {
	t.Helper()
	ctx := context.Background()

	_, err := coll.InsertOne(ctx, bson.M{
		"taskId": taskID,
		"text":   text,
		"column": column,
	})
	if err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}
}
