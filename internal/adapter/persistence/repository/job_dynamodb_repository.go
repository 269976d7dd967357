package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

// ErrJobVanished signals an Update against a job row that no longer exists.
var ErrJobVanished = errors.New("job row does not exist")

type jobItem struct {
	ID                string `dynamodbav:"id"`
	QuoteID           string `dynamodbav:"quote_id"`
	CustomerName      string `dynamodbav:"customer_name"`
	CustomerPhone     string `dynamodbav:"customer_phone"`
	PickupAddress     string `dynamodbav:"pickup_address"`
	DropoffAddress    string `dynamodbav:"dropoff_address"`
	ScheduledStartAt  string `dynamodbav:"scheduled_start_at"`
	StartedAt         string `dynamodbav:"started_at"`
	CompletedAt       string `dynamodbav:"completed_at"`
	Status            string `dynamodbav:"status"`
	CustomerTotalLow  string `dynamodbav:"customer_total_low"`
	CustomerTotalHigh string `dynamodbav:"customer_total_high"`
	PlatformFeeLow    string `dynamodbav:"platform_fee_low"`
	PlatformFeeHigh   string `dynamodbav:"platform_fee_high"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update replaces the whole row. Lifecycle serialization happens above the
// repository, so last-writer-wins on the full item is acceptable here; the
// attribute_exists condition only guards against resurrecting deleted rows.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, ErrJobVanished
		}
		return entities.Job{}, err
	}
	return j, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                j.ID,
		QuoteID:           j.QuoteID,
		CustomerName:      j.CustomerName,
		CustomerPhone:     j.CustomerPhone,
		PickupAddress:     j.PickupAddress,
		DropoffAddress:    j.DropoffAddress,
		ScheduledStartAt:  timePtrToString(j.ScheduledStartAt),
		StartedAt:         timePtrToString(j.StartedAt),
		CompletedAt:       timePtrToString(j.CompletedAt),
		Status:            string(j.Status),
		CustomerTotalLow:  floatToString(j.CustomerTotalLow),
		CustomerTotalHigh: floatToString(j.CustomerTotalHigh),
		PlatformFeeLow:    floatToString(j.PlatformFeeLow),
		PlatformFeeHigh:   floatToString(j.PlatformFeeHigh),
		CreatedAt:         j.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	totalLow, _ := strconv.ParseFloat(it.CustomerTotalLow, 64)
	totalHigh, _ := strconv.ParseFloat(it.CustomerTotalHigh, 64)
	feeLow, _ := strconv.ParseFloat(it.PlatformFeeLow, 64)
	feeHigh, _ := strconv.ParseFloat(it.PlatformFeeHigh, 64)
	return entities.Job{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		CustomerName:      it.CustomerName,
		CustomerPhone:     it.CustomerPhone,
		PickupAddress:     it.PickupAddress,
		DropoffAddress:    it.DropoffAddress,
		ScheduledStartAt:  stringToTimePtr(it.ScheduledStartAt),
		StartedAt:         stringToTimePtr(it.StartedAt),
		CompletedAt:       stringToTimePtr(it.CompletedAt),
		Status:            entities.JobStatus(it.Status),
		CustomerTotalLow:  totalLow,
		CustomerTotalHigh: totalHigh,
		PlatformFeeLow:    feeLow,
		PlatformFeeHigh:   feeHigh,
		CreatedAt:         createdAt,
	}
}
