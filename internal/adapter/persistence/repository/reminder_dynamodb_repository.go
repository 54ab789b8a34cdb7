package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRemindersTableName = "reminders"
	remindersClientIDIndex    = "client_id-index"
)

type reminderItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	UserID      string `dynamodbav:"user_id"`
	Description string `dynamodbav:"description"`
	DueDate     int64  `dynamodbav:"due_date"`
	IsSent      bool   `dynamodbav:"is_sent"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ReminderDynamoRepository persists Reminder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// due_date is a unix timestamp so the due-set scan compares numerically.
// The conditional is_sent flip in ClaimUnsent is what makes overlapping
// sweeps safe: only one caller wins the claim.

type ReminderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReminderRepository = (*ReminderDynamoRepository)(nil)

func NewReminderDynamoRepository(ddb *dynamodb.Client) *ReminderDynamoRepository {
	return &ReminderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REMINDERS_TABLE", defaultRemindersTableName),
	}
}

func (r *ReminderDynamoRepository) Create(ctx context.Context, rem entities.Reminder) (entities.Reminder, error) {
	av, err := attributevalue.MarshalMap(toReminderItem(rem))
	if err != nil {
		return entities.Reminder{}, err
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
		return entities.Reminder{}, err
	}
	return rem, nil
}

// ListDue returns every unsent reminder due at or before now, inclusive.
func (r *ReminderDynamoRepository) ListDue(ctx context.Context, now time.Time) ([]entities.Reminder, error) {
	items := make([]entities.Reminder, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#due_date <= :now AND #is_sent = :unsent"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":now":    &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
				":unsent": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{
				"#due_date": "due_date",
				"#is_sent":  "is_sent",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reminderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromReminderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// ClaimUnsent flips is_sent false -> true if and only if it is still false.
// Returns false without error when another caller already claimed it.
func (r *ReminderDynamoRepository) ClaimUnsent(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #is_sent = :unsent"),
		UpdateExpression:    aws.String("SET #is_sent = :sent"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unsent": &types.AttributeValueMemberBOOL{Value: false},
			":sent":   &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_sent": "is_sent",
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

// ReleaseClaim resets is_sent to false after a failed delivery so the
// reminder re-enters the due-set on the next sweep.
func (r *ReminderDynamoRepository) ReleaseClaim(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_sent = :unsent"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unsent": &types.AttributeValueMemberBOOL{Value: false},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_sent": "is_sent",
		},
	})
	return err
}

func (r *ReminderDynamoRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(remindersClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return err
	}
	for _, raw := range out.Items {
		var it reminderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toReminderItem(rem entities.Reminder) reminderItem {
	return reminderItem{
		ID:          rem.ID,
		ClientID:    rem.ClientID,
		UserID:      rem.UserID,
		Description: rem.Description,
		DueDate:     rem.DueDate.Unix(),
		IsSent:      rem.IsSent,
		CreatedAt:   rem.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReminderItem(it reminderItem) entities.Reminder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Reminder{
		ID:          it.ID,
		ClientID:    it.ClientID,
		UserID:      it.UserID,
		Description: it.Description,
		DueDate:     time.Unix(it.DueDate, 0).UTC(),
		IsSent:      it.IsSent,
		CreatedAt:   createdAt,
	}
}
