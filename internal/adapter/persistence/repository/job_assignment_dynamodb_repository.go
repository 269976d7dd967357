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

const (
	defaultJobAssignmentsTableName = "job_assignments"
	jobIDIndexName                 = "job_id-index"
)

type jobAssignmentItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	DriverID   string `dynamodbav:"driver_id"`
	Role       string `dynamodbav:"role"`
	HourlyRate string `dynamodbav:"hourly_rate"`
	MilesRate  string `dynamodbav:"miles_rate"`
	HoursLow   string `dynamodbav:"hours_low"`
	HoursHigh  string `dynamodbav:"hours_high"`
	MilesPay   string `dynamodbav:"miles_pay"`
	PayLow     string `dynamodbav:"pay_low"`
	PayHigh    string `dynamodbav:"pay_high"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// JobAssignmentDynamoRepository persists JobAssignment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index: PK job_id (string), projecting all attributes
//
// ReplaceForJob and UpdateMany both go through TransactWriteItems so a
// reader querying the index never observes a half-written assignment set.

type JobAssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobAssignmentRepository = (*JobAssignmentDynamoRepository)(nil)

func NewJobAssignmentDynamoRepository(ddb *dynamodb.Client) *JobAssignmentDynamoRepository {
	return &JobAssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ASSIGNMENTS_TABLE", defaultJobAssignmentsTableName),
	}
}

func (r *JobAssignmentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.JobAssignment, error) {
	var assignments []entities.JobAssignment
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(jobIDIndexName),
			KeyConditionExpression: aws.String("#job_id = :job_id"),
			ExpressionAttributeNames: map[string]string{
				"#job_id": "job_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":job_id": &types.AttributeValueMemberS{Value: jobID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []jobAssignmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			assignments = append(assignments, fromJobAssignmentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return assignments, nil
}

func (r *JobAssignmentDynamoRepository) ReplaceForJob(ctx context.Context, jobID string, assignments []entities.JobAssignment) error {
	existing, err := r.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}

	var writes []types.TransactWriteItem
	for _, old := range existing {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: old.ID},
				},
			},
		})
	}
	for _, a := range assignments {
		av, err := attributevalue.MarshalMap(toJobAssignmentItem(a))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			},
		})
	}

	if len(writes) == 0 {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *JobAssignmentDynamoRepository) UpdateMany(ctx context.Context, assignments []entities.JobAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	writes := make([]types.TransactWriteItem, 0, len(assignments))
	for _, a := range assignments {
		av, err := attributevalue.MarshalMap(toJobAssignmentItem(a))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func toJobAssignmentItem(a entities.JobAssignment) jobAssignmentItem {
	return jobAssignmentItem{
		ID:         a.ID,
		JobID:      a.JobID,
		DriverID:   a.DriverID,
		Role:       string(a.Role),
		HourlyRate: floatToString(a.HourlyRate),
		MilesRate:  floatToString(a.MilesRate),
		HoursLow:   floatToString(a.HoursLow),
		HoursHigh:  floatToString(a.HoursHigh),
		MilesPay:   floatToString(a.MilesPay),
		PayLow:     floatToString(a.PayLow),
		PayHigh:    floatToString(a.PayHigh),
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobAssignmentItem(it jobAssignmentItem) entities.JobAssignment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	hourlyRate, _ := strconv.ParseFloat(it.HourlyRate, 64)
	milesRate, _ := strconv.ParseFloat(it.MilesRate, 64)
	hoursLow, _ := strconv.ParseFloat(it.HoursLow, 64)
	hoursHigh, _ := strconv.ParseFloat(it.HoursHigh, 64)
	milesPay, _ := strconv.ParseFloat(it.MilesPay, 64)
	payLow, _ := strconv.ParseFloat(it.PayLow, 64)
	payHigh, _ := strconv.ParseFloat(it.PayHigh, 64)
	return entities.JobAssignment{
		ID:         it.ID,
		JobID:      it.JobID,
		DriverID:   it.DriverID,
		Role:       entities.AssignmentRole(it.Role),
		HourlyRate: hourlyRate,
		MilesRate:  milesRate,
		HoursLow:   hoursLow,
		HoursHigh:  hoursHigh,
		MilesPay:   milesPay,
		PayLow:     payLow,
		PayHigh:    payHigh,
		CreatedAt:  createdAt,
	}
}
