package dao

import (
	"errors"

	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

var (
	// ErrDuplicateRecord is returned when a payment record for the order already exists
	ErrDuplicateRecord = errors.New("payment record already exists")
	// ErrRecordChanged is returned when a record was updated after it was read
	ErrRecordChanged = errors.New("payment record changed since it was read")
)

// DAO is an interface for accessing dao from a backend store
type DAO interface {
	CreatePaymentRecord(record *models.PaymentRecordDB) error
	GetPaymentRecord(orderID string) (*models.PaymentRecordDB, error)
	GetPaymentRecordByTransactionID(transactionID string) (*models.PaymentRecordDB, error)
	PatchPaymentRecord(orderID string, update *models.PaymentRecordDB) error
	AddRefund(orderID string, refundedAmount int64, refund models.RefundDB, status string) error
}

// NewDAO returns a DAO backed by the MongoDB named in cfg
func NewDAO(cfg *config.Config) DAO {
	return &MongoService{
		mongoDBURL:     cfg.MongoDBURL,
		databaseName:   cfg.Database,
		CollectionName: cfg.Collection,
	}
}
