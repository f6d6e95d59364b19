package repository

import (
	"context"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName      = "payments"
	paymentsServiceRequestIDIndex = "service_request_id-index"
)

type paymentItem struct {
	ID               string                 `dynamodbav:"id"`
	ServiceRequestID string                 `dynamodbav:"service_request_id"`
	Kind             string                 `dynamodbav:"kind"`
	Amount           float64                `dynamodbav:"amount"`
	Date             string                 `dynamodbav:"date"`
	Status           string                 `dynamodbav:"status"`
	ProviderPayload  map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderRaw      string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_request_id-index (PK: service_request_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByServiceRequestID(ctx context.Context, serviceRequestID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsServiceRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :srid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":srid": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		ServiceRequestID: p.ServiceRequestID,
		Kind:             string(p.Kind),
		Amount:           p.Amount,
		Date:             formatTime(p.Date),
		Status:           string(p.Status),
		ProviderPayload:  p.ProviderPayload,
		ProviderRaw:      string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	var raw []byte
	if it.ProviderRaw != "" {
		raw = []byte(it.ProviderRaw)
	}
	return entities.Payment{
		ID:               it.ID,
		ServiceRequestID: it.ServiceRequestID,
		Kind:             entities.PaymentKind(it.Kind),
		Amount:           it.Amount,
		Date:             parseTime(it.Date),
		Status:           entities.PaymentStatus(it.Status),
		ProviderPayload:  it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}
