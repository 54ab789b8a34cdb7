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
	defaultBudgetsTableName = "budgets"
	budgetsClientIDIndex    = "client_id-index"
)

type budgetLineItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	Price       float64 `dynamodbav:"price"`
}

type budgetItem struct {
	ID            string           `dynamodbav:"id"`
	ClientID      string           `dynamodbav:"client_id"`
	Title         string           `dynamodbav:"title"`
	Header        string           `dynamodbav:"header,omitempty"`
	Footer        string           `dynamodbav:"footer,omitempty"`
	Status        string           `dynamodbav:"status"`
	Items         []budgetLineItem `dynamodbav:"items"`
	Total         string           `dynamodbav:"total"`
	DateGenerated string           `dynamodbav:"date_generated"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Items keep their insertion order inside the list attribute; Total is
// stored as a string exactly as computed at creation time.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetItem(it))
	}
	return items, nil
}

func (r *BudgetDynamoRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]entities.Budget, error) {
	all := make([]entities.Budget, 0)
	for _, id := range clientIDs {
		budgets, err := r.ListByClientID(ctx, id)
		if err != nil {
			return nil, err
		}
		all = append(all, budgets...)
	}
	return all, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	budgets, err := r.ListByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	for _, b := range budgets {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: b.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, li := range b.Items {
		lines = append(lines, budgetLineItem{Description: li.Description, Quantity: li.Quantity, Price: li.Price})
	}
	return budgetItem{
		ID:            b.ID,
		ClientID:      b.ClientID,
		Title:         b.Title,
		Header:        b.Header,
		Footer:        b.Footer,
		Status:        string(b.Status),
		Items:         lines,
		Total:         floatToString(b.Total),
		DateGenerated: b.DateGenerated.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	generated, _ := time.Parse(time.RFC3339Nano, it.DateGenerated)
	total, _ := strconv.ParseFloat(it.Total, 64)
	lines := make([]entities.BudgetItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.BudgetItem{Description: li.Description, Quantity: li.Quantity, Price: li.Price})
	}
	return entities.Budget{
		ID:            it.ID,
		ClientID:      it.ClientID,
		Title:         it.Title,
		Header:        it.Header,
		Footer:        it.Footer,
		Status:        entities.BudgetStatus(it.Status),
		Items:         lines,
		Total:         total,
		DateGenerated: generated,
	}
}
