package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/linepay.api.ch.gov.uk/config"
	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// ProducerTopic is the topic to which the payment processed kafka message is sent
const ProducerTopic = "linepay-payment-processed"

// ProducerSchemaName is the schema which will be used to send the payment processed kafka message with
const ProducerSchemaName = "linepay-payment-processed"

// paymentProcessed represents the avro schema of the payment processed message
type paymentProcessed struct {
	OrderID             string `avro:"order_id"`
	TransactionID       string `avro:"transaction_id"`
	Status              string `avro:"status"`
	RefundTransactionID string `avro:"refund_transaction_id,omitempty"`
}

func producePaymentMessage(payment *models.PaymentRecordRest) error {
	return produceKafkaMessage(paymentProcessed{
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
	})
}

func produceRefundMessage(payment *models.PaymentRecordRest, refund *models.RefundRest) error {
	return produceKafkaMessage(paymentProcessed{
		OrderID:             payment.OrderID,
		TransactionID:       payment.TransactionID,
		Status:              payment.Status,
		RefundTransactionID: refund.RefundTransactionID,
	})
}

// produceKafkaMessage handles creating a producer, marshalling the message into the correct avro schema and sending
// it to the topic defined in ProducerTopic. Nothing is sent when no brokers are configured.
func produceKafkaMessage(message paymentProcessed) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	if len(cfg.BrokerAddr) == 0 {
		log.Info("no kafka brokers configured, payment processed message not sent", log.Data{"order_id": message.OrderID})
		return nil
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	paymentProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: paymentProcessedSchema,
	}

	producerMessage, err := prepareKafkaMessage(message, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	partition, offset, err := kafkaProducer.Send(producerMessage)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}

	log.Debug("payment processed message sent", log.Data{"order_id": message.OrderID, "partition": partition, "offset": offset})
	return nil
}

// prepareKafkaMessage is pulled out of produceKafkaMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(message paymentProcessed, paymentProcessedSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := paymentProcessedSchema.Marshal(message)
	if err != nil {
		err = fmt.Errorf("error marshalling payment processed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
