package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsClientIDIndex    = "client_id-index"
)

type noteItem struct {
	Text      string `dynamodbav:"text"`
	Author    string `dynamodbav:"author"`
	CreatedAt string `dynamodbav:"created_at"`
}

type serviceRequestItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Status      string `dynamodbav:"status"`

	AssignedTechnicianID string `dynamodbav:"assigned_technician_id,omitempty"`

	QuoteSubtotal    float64 `dynamodbav:"quote_subtotal"`
	QuoteVat         float64 `dynamodbav:"quote_vat"`
	QuoteTotal       float64 `dynamodbav:"quote_total"`
	QuoteIncludesVat bool    `dynamodbav:"quote_includes_vat"`

	WarrantyPeriodDays int `dynamodbav:"warranty_period_days"`

	CreatedAt       string `dynamodbav:"created_at"`
	QuoteSentAt     string `dynamodbav:"quote_sent_at,omitempty"`
	QuoteApprovedAt string `dynamodbav:"quote_approved_at,omitempty"`
	ScheduledAt     string `dynamodbav:"scheduled_at,omitempty"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`

	Notes []noteItem `dynamodbav:"notes,omitempty"`

	Version int64 `dynamodbav:"version"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Writes come in two flavors:
//   - Save: full-record conditional put guarded by the version attribute,
//     for mutations that depend on a previously read copy (status machine).
//   - UpdateAssignedTechnician / UpdateQuoteFigures: field-level updates
//     that cannot clobber concurrently-changed sibling fields. They still
//     bump the version attribute so a full-record Save racing on a stale
//     read fails its version check instead of silently reverting them.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, status *entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != nil {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(*status)},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	return unmarshalServiceRequestItems(out.Items)
}

func (r *ServiceRequestDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceRequestsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServiceRequestItems(out.Items)
}

// Save writes the full record if the stored version still equals sr.Version.
// A rejected condition means someone else wrote in between; the caller gets
// ErrConcurrentModification and may re-read and retry.
func (r *ServiceRequestDynamoRepository) Save(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	expected := sr.Version
	sr.Version = expected + 1

	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrConcurrentModification
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) UpdateAssignedTechnician(ctx context.Context, id, technicianID string) (entities.ServiceRequest, error) {
	expr, values := assignmentUpdateExpression(technicianID)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#tech":    "assigned_technician_id",
			"#version": "version",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrRecordNotFound
		}
		return entities.ServiceRequest{}, err
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) UpdateQuoteFigures(ctx context.Context, id string, subtotal, vat, total float64, includesVat bool) (entities.ServiceRequest, error) {
	expr, values := quoteFiguresUpdateExpression(subtotal, vat, total, includesVat)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#sub":   "quote_subtotal",
			"#vat":   "quote_vat",
			"#total": "quote_total",
			"#inc":   "quote_includes_vat",
		}, map[string]string{"#id": "id", "#version": "version"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrRecordNotFound
		}
		return entities.ServiceRequest{}, err
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// versionBumpClause increments the version on field-level updates. Without
// it a concurrent Save built from a pre-update read would pass its version
// check and write the stale record back, reverting the field update.
const versionBumpClause = "#version = if_not_exists(#version, :zero) + :one"

func versionBumpValues() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":zero": &types.AttributeValueMemberN{Value: "0"},
		":one":  &types.AttributeValueMemberN{Value: "1"},
	}
}

func assignmentUpdateExpression(technicianID string) (string, map[string]types.AttributeValue) {
	values := versionBumpValues()
	if technicianID == "" {
		return "SET " + versionBumpClause + " REMOVE #tech", values
	}
	values[":tech"] = &types.AttributeValueMemberS{Value: technicianID}
	return "SET #tech = :tech, " + versionBumpClause, values
}

func quoteFiguresUpdateExpression(subtotal, vat, total float64, includesVat bool) (string, map[string]types.AttributeValue) {
	values := versionBumpValues()
	values[":sub"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(subtotal, 'f', -1, 64)}
	values[":vat"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(vat, 'f', -1, 64)}
	values[":total"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(total, 'f', -1, 64)}
	values[":inc"] = &types.AttributeValueMemberBOOL{Value: includesVat}
	return "SET #sub = :sub, #vat = :vat, #total = :total, #inc = :inc, " + versionBumpClause, values
}

func unmarshalServiceRequestItems(raw []map[string]types.AttributeValue) ([]entities.ServiceRequest, error) {
	items := make([]entities.ServiceRequest, 0, len(raw))
	for _, m := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	notes := make([]noteItem, 0, len(sr.Notes))
	for _, n := range sr.Notes {
		notes = append(notes, noteItem{Text: n.Text, Author: n.Author, CreatedAt: formatTime(n.CreatedAt)})
	}
	if len(notes) == 0 {
		notes = nil
	}
	return serviceRequestItem{
		ID:                   sr.ID,
		ClientID:             sr.ClientID,
		Description:          sr.Description,
		Category:             sr.Category,
		Status:               string(sr.Status),
		AssignedTechnicianID: sr.AssignedTechnicianID,
		QuoteSubtotal:        sr.QuoteSubtotal,
		QuoteVat:             sr.QuoteVat,
		QuoteTotal:           sr.QuoteTotal,
		QuoteIncludesVat:     sr.QuoteIncludesVat,
		WarrantyPeriodDays:   sr.WarrantyPeriodDays,
		CreatedAt:            formatTime(sr.CreatedAt),
		QuoteSentAt:          formatTime(sr.QuoteSentAt),
		QuoteApprovedAt:      formatTime(sr.QuoteApprovedAt),
		ScheduledAt:          formatTime(sr.ScheduledAt),
		CompletedAt:          formatTime(sr.CompletedAt),
		Notes:                notes,
		Version:              sr.Version,
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	notes := make([]entities.Note, 0, len(it.Notes))
	for _, n := range it.Notes {
		notes = append(notes, entities.Note{Text: n.Text, Author: n.Author, CreatedAt: parseTime(n.CreatedAt)})
	}
	if len(notes) == 0 {
		notes = nil
	}
	return entities.ServiceRequest{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		Description:          it.Description,
		Category:             it.Category,
		Status:               entities.ServiceRequestStatus(it.Status),
		AssignedTechnicianID: it.AssignedTechnicianID,
		QuoteSubtotal:        it.QuoteSubtotal,
		QuoteVat:             it.QuoteVat,
		QuoteTotal:           it.QuoteTotal,
		QuoteIncludesVat:     it.QuoteIncludesVat,
		WarrantyPeriodDays:   it.WarrantyPeriodDays,
		CreatedAt:            parseTime(it.CreatedAt),
		QuoteSentAt:          parseTime(it.QuoteSentAt),
		QuoteApprovedAt:      parseTime(it.QuoteApprovedAt),
		ScheduledAt:          parseTime(it.ScheduledAt),
		CompletedAt:          parseTime(it.CompletedAt),
		Notes:                notes,
		Version:              it.Version,
	}
}
