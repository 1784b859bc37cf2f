package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"sparklean/internal/adapter/persistence/recordid"
	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimateRequestsTableName = "estimate_requests"

const maxCreateAttempts = 5

var errCreateExhausted = errors.New("could not generate a unique record id")

type estimateRequestItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	IsNew     bool   `dynamodbav:"is_new"`

	FullName string  `dynamodbav:"full_name"`
	Phone    *string `dynamodbav:"phone,omitempty"`
	Email    *string `dynamodbav:"email,omitempty"`
	Address  string  `dynamodbav:"address"`

	Rooms            int      `dynamodbav:"rooms"`
	Bathrooms        int      `dynamodbav:"bathrooms"`
	ServiceType      string   `dynamodbav:"service_type"`
	ServiceTypeLabel string   `dynamodbav:"service_type_label"`
	AddonAreas       []string `dynamodbav:"addon_areas,omitempty"`
	OtherAreaText    *string  `dynamodbav:"other_area_text,omitempty"`

	PreferredDate *string `dynamodbav:"preferred_date,omitempty"`
	PreferredTime *string `dynamodbav:"preferred_time,omitempty"`
	Notes         *string `dynamodbav:"notes,omitempty"`

	Quote *entities.QuoteBreakdown `dynamodbav:"quote,omitempty"`
}

// EstimateRequestDynamoRepository persists estimate requests in DynamoDB for
// deployments where a single shared snapshot file is not enough (multiple
// service instances).
//
// Table requirements:
//   - PK: id (string)
//
// Ordering is not a table property here: List scans and sorts by created_at
// descending, which is fine for an inbox-sized collection. The conditional
// PutItem doubles as collision detection for generated ids.

type EstimateRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRequestRepository = (*EstimateRequestDynamoRepository)(nil)

func NewEstimateRequestDynamoRepository(ddb *dynamodb.Client) *EstimateRequestDynamoRepository {
	return &EstimateRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimateRequestsTableName),
	}
}

func (r *EstimateRequestDynamoRepository) Create(ctx context.Context, e entities.EstimateRequest) (entities.EstimateRequest, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		id, err := recordid.New()
		if err != nil {
			return entities.EstimateRequest{}, err
		}
		e.ID = id
		e.CreatedAt = time.Now().UTC()
		e.IsNew = true

		av, err := attributevalue.MarshalMap(toEstimateRequestItem(e))
		if err != nil {
			return entities.EstimateRequest{}, err
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
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				log.Printf("[store][dynamodb] record id collision on %s, retrying", id)
				continue
			}
			return entities.EstimateRequest{}, err
		}
		return e, nil
	}
	return entities.EstimateRequest{}, errCreateExhausted
}

func (r *EstimateRequestDynamoRepository) List(ctx context.Context) ([]entities.EstimateRequest, error) {
	items, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.EstimateRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimateRequestItem(it))
	}
	// Most recent first; ULIDs break creation-time ties deterministically.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *EstimateRequestDynamoRepository) MarkAsRead(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_new = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#is_new": "is_new",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EstimateRequestDynamoRepository) MarkAllAsRead(ctx context.Context) error {
	items, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		FilterExpression:     aws.String("#is_new = :true"),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#is_new": "is_new",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := r.MarkAsRead(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *EstimateRequestDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EstimateRequestDynamoRepository) UnreadCount(ctx context.Context) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#is_new = :true"),
			ExpressionAttributeNames: map[string]string{
				"#is_new": "is_new",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func (r *EstimateRequestDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]estimateRequestItem, error) {
	var items []estimateRequestItem
	var startKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = startKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []estimateRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toEstimateRequestItem(e entities.EstimateRequest) estimateRequestItem {
	addons := make([]string, 0, len(e.AddonAreas))
	for _, a := range e.AddonAreas {
		addons = append(addons, string(a))
	}
	return estimateRequestItem{
		ID:               e.ID,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		IsNew:            e.IsNew,
		FullName:         e.FullName,
		Phone:            e.Phone,
		Email:            e.Email,
		Address:          e.Address,
		Rooms:            e.Rooms,
		Bathrooms:        e.Bathrooms,
		ServiceType:      string(e.ServiceType),
		ServiceTypeLabel: e.ServiceTypeLabel,
		AddonAreas:       addons,
		OtherAreaText:    e.OtherAreaText,
		PreferredDate:    e.PreferredDate,
		PreferredTime:    e.PreferredTime,
		Notes:            e.Notes,
		Quote:            e.Quote,
	}
}

func fromEstimateRequestItem(it estimateRequestItem) entities.EstimateRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	addons := make([]entities.AddonArea, 0, len(it.AddonAreas))
	for _, a := range it.AddonAreas {
		addons = append(addons, entities.AddonArea(a))
	}
	return entities.EstimateRequest{
		ID:               it.ID,
		CreatedAt:        createdAt,
		IsNew:            it.IsNew,
		FullName:         it.FullName,
		Phone:            it.Phone,
		Email:            it.Email,
		Address:          it.Address,
		Rooms:            it.Rooms,
		Bathrooms:        it.Bathrooms,
		ServiceType:      entities.ServiceType(it.ServiceType),
		ServiceTypeLabel: it.ServiceTypeLabel,
		AddonAreas:       addons,
		OtherAreaText:    it.OtherAreaText,
		PreferredDate:    it.PreferredDate,
		PreferredTime:    it.PreferredTime,
		Notes:            it.Notes,
		Quote:            it.Quote,
	}
}
