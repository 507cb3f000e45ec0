package mongodb

import (
	"context"
	"fmt"
	"time"

	entity "rentnest/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DatabaseName = "rentnest"

	CollectionStatus        = "status_history"
	CollectionNotifications = "notifications"
)

// LogRepository persists audit documents. Writes are best-effort: callers
// warn-log failures instead of failing the request.
type LogRepository interface {
	SaveStatusHistory(ctx context.Context, doc *entity.StatusHistory) error
	SaveNotification(ctx context.Context, doc *entity.Notification) error
}

type logRepository struct {
	status        *mongo.Collection
	notifications *mongo.Collection
}

func NewLogRepository(client *mongo.Client, database string) LogRepository {
	if database == "" {
		database = DatabaseName
	}
	db := client.Database(database)
	return &logRepository{
		status:        db.Collection(CollectionStatus),
		notifications: db.Collection(CollectionNotifications),
	}
}

func (r *logRepository) SaveStatusHistory(ctx context.Context, doc *entity.StatusHistory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.status.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

func (r *logRepository) SaveNotification(ctx context.Context, doc *entity.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.notifications.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
