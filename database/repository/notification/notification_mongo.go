package notificationRepo

import (
	"ledgerly/config"
	"ledgerly/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a new NotificationRepository instance using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}
