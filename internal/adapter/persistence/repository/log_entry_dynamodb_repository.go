package repository

import (
	"context"
	"sort"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLogEntriesTableName = "log_entries"
	logEntriesClientIDIndex    = "client_id-index"
)

type logEntryItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LogEntryDynamoRepository persists LogEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Entries are append-only; ordering is applied client-side since the index
// has no range key.

type LogEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILogEntryRepository = (*LogEntryDynamoRepository)(nil)

func NewLogEntryDynamoRepository(ddb *dynamodb.Client) *LogEntryDynamoRepository {
	return &LogEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOG_ENTRIES_TABLE", defaultLogEntriesTableName),
	}
}

func (r *LogEntryDynamoRepository) Create(ctx context.Context, e entities.LogEntry) (entities.LogEntry, error) {
	av, err := attributevalue.MarshalMap(toLogEntryItem(e))
	if err != nil {
		return entities.LogEntry{}, err
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
		return entities.LogEntry{}, err
	}
	return e, nil
}

func (r *LogEntryDynamoRepository) ListByClientID(ctx context.Context, clientID string, limit int) ([]entities.LogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(logEntriesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it logEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLogEntryItem(it))
	}
	return sortAndLimit(items, limit), nil
}

func (r *LogEntryDynamoRepository) ListByClientIDs(ctx context.Context, clientIDs []string, limit int) ([]entities.LogEntry, error) {
	all := make([]entities.LogEntry, 0)
	for _, id := range clientIDs {
		entries, err := r.ListByClientID(ctx, id, 0)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return sortAndLimit(all, limit), nil
}

func (r *LogEntryDynamoRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	entries, err := r.ListByClientID(ctx, clientID, 0)
	if err != nil {
		return err
	}
	for _, e := range entries {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: e.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// sortAndLimit orders entries newest first; limit <= 0 means no limit.
func sortAndLimit(entries []entities.LogEntry, limit int) []entities.LogEntry {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func toLogEntryItem(e entities.LogEntry) logEntryItem {
	return logEntryItem{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Type:        string(e.Type),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLogEntryItem(it logEntryItem) entities.LogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.LogEntry{
		ID:          it.ID,
		ClientID:    it.ClientID,
		Type:        entities.LogType(it.Type),
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
