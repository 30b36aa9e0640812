package financeRepo

import (
	"ledgerly/config"
	"ledgerly/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoFinanceRepo struct {
	coll *mongo.Collection
}

// NewMongoFinanceRepo returns a new FinancialRecordRepository instance using MongoDB.
func NewMongoFinanceRepo() FinancialRecordRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoFinanceRepo{
		coll: db.Collection("financial_records"),
	}
}
