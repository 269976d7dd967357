package repository

import (
	"context"
	"time"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDriversTableName = "drivers"

// DynamoDB caps BatchGetItem at 100 keys per request.
const batchGetMaxKeys = 100

type driverItem struct {
	ID          string `dynamodbav:"id"`
	FullName    string `dynamodbav:"full_name"`
	Phone       string `dynamodbav:"phone"`
	VehicleType string `dynamodbav:"vehicle_type"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// DriverDynamoRepository persists Driver entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the full table. The roster is a back-office dataset measured in
// hundreds of rows, so a paginated Scan is fine here.

type DriverDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDriverRepository = (*DriverDynamoRepository)(nil)

func NewDriverDynamoRepository(ddb *dynamodb.Client) *DriverDynamoRepository {
	return &DriverDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRIVERS_TABLE", defaultDriversTableName),
	}
}

func (r *DriverDynamoRepository) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	av, err := attributevalue.MarshalMap(toDriverItem(d))
	if err != nil {
		return entities.Driver{}, err
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
		return entities.Driver{}, err
	}
	return d, nil
}

func (r *DriverDynamoRepository) GetByID(ctx context.Context, id string) (entities.Driver, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Driver{}, err
	}
	if len(out.Item) == 0 {
		return entities.Driver{}, nil
	}

	var it driverItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

func (r *DriverDynamoRepository) List(ctx context.Context) ([]entities.Driver, error) {
	var drivers []entities.Driver
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []driverItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			drivers = append(drivers, fromDriverItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return drivers, nil
}

func (r *DriverDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Driver, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var drivers []entities.Driver
	for start := 0; start < len(ids); start += batchGetMaxKeys {
		end := min(start+batchGetMaxKeys, len(ids))

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		// UnprocessedKeys are retried until the batch drains.
		requests := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(requests) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: requests,
			})
			if err != nil {
				return nil, err
			}

			var items []driverItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.tableName], &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				drivers = append(drivers, fromDriverItem(it))
			}

			requests = out.UnprocessedKeys
		}
	}

	return drivers, nil
}

func (r *DriverDynamoRepository) ListActiveByIDs(ctx context.Context, ids []string) ([]entities.Driver, error) {
	all, err := r.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	active := all[:0]
	for _, d := range all {
		if d.IsActive {
			active = append(active, d)
		}
	}
	return active, nil
}

func toDriverItem(d entities.Driver) driverItem {
	return driverItem{
		ID:          d.ID,
		FullName:    d.FullName,
		Phone:       d.Phone,
		VehicleType: string(d.VehicleType),
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDriverItem(it driverItem) entities.Driver {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Driver{
		ID:          it.ID,
		FullName:    it.FullName,
		Phone:       it.Phone,
		VehicleType: entities.VehicleType(it.VehicleType),
		IsActive:    it.IsActive,
		CreatedAt:   createdAt,
	}
}
