package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/japb1998/alert-tower/internal/dto"
)

// SurveyRecord is one persisted survey response.
type SurveyRecord struct {
	Id        string          `json:"id"`
	Email     string          `json:"email"`
	CreatedAt string          `json:"createdAt"`
	Response  dto.SurveyInput `json:"response"`
}

// SurveyRepository persists survey responses. Notification delivery is never
// part of the persistence contract.
type SurveyRepository interface {
	Save(ctx context.Context, rec *SurveyRecord) error
}

// DynamoSurveyRepo stores survey responses in DynamoDB.
type DynamoSurveyRepo struct {
	client *dynamodb.DynamoDB
	table  string
}

func NewDynamoSurveyRepo(sess *session.Session, table string) *DynamoSurveyRepo {
	return &DynamoSurveyRepo{
		client: dynamodb.New(sess),
		table:  table,
	}
}

func (r *DynamoSurveyRepo) Save(ctx context.Context, rec *SurveyRecord) error {
	item, err := dynamodbattribute.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal survey record: %w", err)
	}

	_, err = r.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save survey record: %w", err)
	}
	return nil
}
