package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

var client *mongo.Client
var clientMtx sync.Mutex

// getMongoClient returns the shared client, connecting on first use
func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	clientMtx.Lock()
	defer clientMtx.Unlock()

	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoDBURL))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: [%w]", err)
	}

	log.Info("connected to mongodb")
	client = mongoClient
	return client, nil
}

// MongoDatabaseInterface is the part of *mongo.Database used by MongoService
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) (MongoDatabaseInterface, error) {
	mongoClient, err := getMongoClient(mongoDBURL)
	if err != nil {
		return nil, err
	}
	return mongoClient.Database(databaseName), nil
}

// MongoService stores payment records in a MongoDB collection
type MongoService struct {
	db             MongoDatabaseInterface
	mongoDBURL     string
	databaseName   string
	CollectionName string
}

func (m *MongoService) collection() (*mongo.Collection, error) {
	if m.db == nil {
		db, err := getMongoDatabase(m.mongoDBURL, m.databaseName)
		if err != nil {
			return nil, err
		}
		m.db = db
	}
	return m.db.Collection(m.CollectionName), nil
}

// CreatePaymentRecord writes a new payment record to the DB
func (m *MongoService) CreatePaymentRecord(record *models.PaymentRecordDB) error {
	collection, err := m.collection()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err = collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("error inserting payment record for order [%s]: [%w]", record.OrderID, ErrDuplicateRecord)
	}
	if err != nil {
		return fmt.Errorf("error inserting payment record: [%w]", err)
	}
	return nil
}

// GetPaymentRecord gets the payment record of an order.
// If the record is not found in the DB, nil is returned
func (m *MongoService) GetPaymentRecord(orderID string) (*models.PaymentRecordDB, error) {
	return m.findOne(bson.M{"_id": orderID})
}

// GetPaymentRecordByTransactionID gets the payment record holding a LINE Pay transaction.
// If the record is not found in the DB, nil is returned
func (m *MongoService) GetPaymentRecordByTransactionID(transactionID string) (*models.PaymentRecordDB, error) {
	return m.findOne(bson.M{"transaction_id": transactionID})
}

func (m *MongoService) findOne(filter bson.M) (*models.PaymentRecordDB, error) {
	collection, err := m.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var record models.PaymentRecordDB
	err = collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no payment record found", log.Data{"filter": filter})
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// PatchPaymentRecord updates the status, completion time and refunds of a payment record
func (m *MongoService) PatchPaymentRecord(orderID string, update *models.PaymentRecordDB) error {
	collection, err := m.collection()
	if err != nil {
		return err
	}

	patch := bson.M{}
	if update.Status != "" {
		patch["status"] = update.Status
	}
	if update.CompletedAt != nil {
		patch["completed_at"] = update.CompletedAt
	}
	if update.RefundedAmount != 0 {
		patch["refunded_amount"] = update.RefundedAmount
	}
	if update.Refunds != nil {
		patch["refunds"] = update.Refunds
	}
	if len(patch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("error updating payment record: [%w]", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment record for order [%s] not found", orderID)
	}
	return nil
}

// AddRefund appends a refund to a payment record, adding its amount to the
// refunded total and setting the status. refundedAmount is the total the
// caller read; if the stored total differs, nothing is written and
// ErrRecordChanged is returned.
func (m *MongoService) AddRefund(orderID string, refundedAmount int64, refund models.RefundDB, status string) error {
	collection, err := m.collection()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	filter := bson.M{"_id": orderID, "refunded_amount": refundedAmount}
	update := bson.M{
		"$push": bson.M{"refunds": refund},
		"$inc":  bson.M{"refunded_amount": refund.Amount},
		"$set":  bson.M{"status": status},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error adding refund to payment record: [%w]", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("refund for order [%s] not saved: [%w]", orderID, ErrRecordChanged)
	}
	return nil
}
