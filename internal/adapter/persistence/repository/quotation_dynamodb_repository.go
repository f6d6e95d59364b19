package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationItem struct {
	ServiceRequestID string `dynamodbav:"service_request_id"`

	Subtotal    float64 `dynamodbav:"subtotal"`
	VatAmount   float64 `dynamodbav:"vat_amount"`
	Total       float64 `dynamodbav:"total"`
	IncludesVat bool    `dynamodbav:"includes_vat"`

	InitialPaymentPercentage float64 `dynamodbav:"initial_payment_percentage"`
	GuaranteeDays            int     `dynamodbav:"guarantee_days"`

	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: service_request_id (string)
//
// The parent service request id is the PK on purpose: it guarantees one
// quotation per request and makes the by-request lookup a direct get.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#srid)"),
		ExpressionAttributeNames: map[string]string{
			"#srid": "service_request_id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByServiceRequestID(ctx context.Context, serviceRequestID string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_request_id": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_request_id": &types.AttributeValueMemberS{Value: q.ServiceRequestID},
		},
		ConditionExpression: aws.String("attribute_exists(#srid)"),
		UpdateExpression:    aws.String("SET #sub = :sub, #vat = :vat, #total = :total, #inc = :inc, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#sub":        "subtotal",
			"#vat":        "vat_amount",
			"#total":      "total",
			"#inc":        "includes_vat",
			"#updated_at": "updated_at",
		}, map[string]string{"#srid": "service_request_id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sub":        &types.AttributeValueMemberN{Value: strconv.FormatFloat(q.Subtotal, 'f', -1, 64)},
			":vat":        &types.AttributeValueMemberN{Value: strconv.FormatFloat(q.VatAmount, 'f', -1, 64)},
			":total":      &types.AttributeValueMemberN{Value: strconv.FormatFloat(q.Total, 'f', -1, 64)},
			":inc":        &types.AttributeValueMemberBOOL{Value: q.IncludesVat},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ServiceRequestID:         q.ServiceRequestID,
		Subtotal:                 q.Subtotal,
		VatAmount:                q.VatAmount,
		Total:                    q.Total,
		IncludesVat:              q.IncludesVat,
		InitialPaymentPercentage: q.InitialPaymentPercentage,
		GuaranteeDays:            q.GuaranteeDays,
		CreatedAt:                formatTime(q.CreatedAt),
		ExpiresAt:                formatTime(q.ExpiresAt),
		UpdatedAt:                formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	return entities.Quotation{
		ServiceRequestID:         it.ServiceRequestID,
		Subtotal:                 it.Subtotal,
		VatAmount:                it.VatAmount,
		Total:                    it.Total,
		IncludesVat:              it.IncludesVat,
		InitialPaymentPercentage: it.InitialPaymentPercentage,
		GuaranteeDays:            it.GuaranteeDays,
		CreatedAt:                parseTime(it.CreatedAt),
		ExpiresAt:                parseTime(it.ExpiresAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
