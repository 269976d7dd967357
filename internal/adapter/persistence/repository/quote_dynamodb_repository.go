package repository

import (
	"context"
	"strconv"
	"time"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	HomeSize      string `dynamodbav:"home_size"`
	SquareFeet    int    `dynamodbav:"square_feet"`
	Miles         string `dynamodbav:"miles"`
	HelperCount   int    `dynamodbav:"helper_count"`
	StairFlights  int    `dynamodbav:"stair_flights"`
	LongCarry     bool   `dynamodbav:"long_carry"`
	HasHeavyItem  bool   `dynamodbav:"has_heavy_item"`
	EstimatedLow  string `dynamodbav:"estimated_low"`
	EstimatedHigh string `dynamodbav:"estimated_high"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quotes are write-once: Create is the only mutation, so the table needs no
// update paths and reads can rely on the created snapshot forever.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		HomeSize:      string(q.HomeSize),
		SquareFeet:    q.SquareFeet,
		Miles:         floatToString(q.Miles),
		HelperCount:   q.HelperCount,
		StairFlights:  q.StairFlights,
		LongCarry:     q.LongCarry,
		HasHeavyItem:  q.HasHeavyItem,
		EstimatedLow:  floatToString(q.EstimatedLow),
		EstimatedHigh: floatToString(q.EstimatedHigh),
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	miles, _ := strconv.ParseFloat(it.Miles, 64)
	low, _ := strconv.ParseFloat(it.EstimatedLow, 64)
	high, _ := strconv.ParseFloat(it.EstimatedHigh, 64)
	return entities.Quote{
		ID:            it.ID,
		HomeSize:      entities.HomeSize(it.HomeSize),
		SquareFeet:    it.SquareFeet,
		Miles:         miles,
		HelperCount:   it.HelperCount,
		StairFlights:  it.StairFlights,
		LongCarry:     it.LongCarry,
		HasHeavyItem:  it.HasHeavyItem,
		EstimatedLow:  low,
		EstimatedHigh: high,
		Status:        entities.QuoteStatus(it.Status),
		CreatedAt:     createdAt,
	}
}
