package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/entities"
	"shoplist-backend/domain/core/valueobjects"
	apperrors "shoplist-backend/pkg/errors"
	"shoplist-backend/pkg/observability"
	"shoplist-backend/pkg/utils"
)

// ListRepository implements the ListRepository port using DynamoDB. Each
// aggregate is one document: the list metadata plus its embedded members and
// items, so every save and delete is a single atomic write.
type ListRepository struct {
	client    *dynamodb.Client
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewListRepository creates a new ListRepository
func NewListRepository(client *dynamodb.Client, tableName string, tracer *observability.Tracer, logger *zap.Logger) ports.ListRepository {
	return &ListRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// itemRecord is the stored shape of a single embedded item
type itemRecord struct {
	ItemID  string `dynamodbav:"ItemID"`
	Text    string `dynamodbav:"Text"`
	Solved  bool   `dynamodbav:"Solved"`
	AddedAt string `dynamodbav:"AddedAt"`
}

// listItem represents the DynamoDB item structure for a list aggregate
type listItem struct {
	PK         string       `dynamodbav:"PK"`
	SK         string       `dynamodbav:"SK"`
	EntityType string       `dynamodbav:"EntityType"`
	ListID     string       `dynamodbav:"ListID"`
	Name       string       `dynamodbav:"Name"`
	OwnerID    string       `dynamodbav:"OwnerID"`
	Members    []string     `dynamodbav:"Members"`
	Items      []itemRecord `dynamodbav:"Items"`
	Archived   bool         `dynamodbav:"Archived"`
	CreatedAt  string       `dynamodbav:"CreatedAt"`
	UpdatedAt  string       `dynamodbav:"UpdatedAt"`
	Version    int          `dynamodbav:"Version"`
}

func listKey(id valueobjects.ListID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("LIST#%s", id.String())},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}

// Save persists the aggregate with a conditional write on the version it was
// loaded at. A concurrent writer that saved first fails the condition, which
// surfaces as a Conflict instead of a silent lost update.
func (r *ListRepository) Save(ctx context.Context, list *aggregates.List) error {
	records := make([]itemRecord, 0, len(list.Items()))
	for _, item := range list.Items() {
		records = append(records, itemRecord{
			ItemID:  item.ID().String(),
			Text:    item.Text(),
			Solved:  item.Solved(),
			AddedAt: utils.FormatRFC3339(item.AddedAt()),
		})
	}

	doc := listItem{
		PK:         fmt.Sprintf("LIST#%s", list.ID().String()),
		SK:         "METADATA",
		EntityType: "LIST",
		ListID:     list.ID().String(),
		Name:       list.Name(),
		OwnerID:    list.OwnerID(),
		Members:    list.Members(),
		Items:      records,
		Archived:   list.Archived(),
		CreatedAt:  utils.FormatRFC3339(list.CreatedAt()),
		UpdatedAt:  utils.FormatRFC3339(list.UpdatedAt()),
		Version:    list.Version(),
	}

	av, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if list.PersistedVersion() == 0 {
		// First save: the document must not exist yet
		cond := expression.AttributeNotExists(expression.Name("PK"))
		expr, err := expression.NewBuilder().WithCondition(cond).Build()
		if err != nil {
			return fmt.Errorf("failed to build condition: %w", err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
	} else {
		cond := expression.Name("Version").Equal(expression.Value(list.PersistedVersion()))
		expr, err := expression.NewBuilder().WithCondition(cond).Build()
		if err != nil {
			return fmt.Errorf("failed to build condition: %w", err)
		}
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	err = r.tracer.Capture(ctx, "dynamodb.put_item", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, input)
		return err
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			r.logger.Warn("Concurrent update detected",
				zap.String("listID", list.ID().String()),
				zap.Int("expectedVersion", list.PersistedVersion()),
			)
			return apperrors.NewConflictError("list was modified concurrently")
		}
		r.logger.Error("Failed to save list to DynamoDB",
			zap.Error(err),
			zap.String("listID", list.ID().String()),
		)
		return apperrors.NewDatabaseError("save list", err)
	}

	r.logger.Debug("List saved",
		zap.String("listID", list.ID().String()),
		zap.Int("version", list.Version()),
	)

	return nil
}

// GetByID loads the aggregate or returns a NotFound error
func (r *ListRepository) GetByID(ctx context.Context, id valueobjects.ListID) (*aggregates.List, error) {
	var output *dynamodb.GetItemOutput
	err := r.tracer.Capture(ctx, "dynamodb.get_item", func(ctx context.Context) error {
		var err error
		output, err = r.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key:       listKey(id),
		})
		return err
	})
	if err != nil {
		r.logger.Error("Failed to get list from DynamoDB",
			zap.Error(err),
			zap.String("listID", id.String()),
		)
		return nil, apperrors.NewDatabaseError("get list", err)
	}

	if output.Item == nil {
		return nil, apperrors.NewNotFoundError("list")
	}

	return r.unmarshalList(output.Item)
}

// FindByPrincipal returns every list the principal owns or has joined. The
// membership set lives inside the document, so this is a filtered scan over
// list metadata.
func (r *ListRepository) FindByPrincipal(ctx context.Context, principalID string) ([]*aggregates.List, error) {
	filter := expression.Name("EntityType").Equal(expression.Value("LIST")).
		And(expression.Name("OwnerID").Equal(expression.Value(principalID)).
			Or(expression.Name("Members").Contains(principalID)))

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build filter: %w", err)
	}

	lists := []*aggregates.List{}
	var lastKey map[string]types.AttributeValue

	for {
		var output *dynamodb.ScanOutput
		err := r.tracer.Capture(ctx, "dynamodb.scan", func(ctx context.Context) error {
			var err error
			output, err = r.client.Scan(ctx, &dynamodb.ScanInput{
				TableName:                 aws.String(r.tableName),
				FilterExpression:          expr.Filter(),
				ExpressionAttributeNames:  expr.Names(),
				ExpressionAttributeValues: expr.Values(),
				ExclusiveStartKey:         lastKey,
			})
			return err
		})
		if err != nil {
			r.logger.Error("Failed to scan lists",
				zap.Error(err),
				zap.String("principalID", principalID),
			)
			return nil, apperrors.NewDatabaseError("list lists", err)
		}

		for _, raw := range output.Items {
			list, err := r.unmarshalList(raw)
			if err != nil {
				r.logger.Warn("Skipping unreadable list document", zap.Error(err))
				continue
			}
			lists = append(lists, list)
		}

		lastKey = output.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}

	return lists, nil
}

// Delete removes the aggregate and all embedded items in one write. Deleting
// a missing or already-deleted id yields NotFound.
func (r *ListRepository) Delete(ctx context.Context, id valueobjects.ListID) error {
	cond := expression.AttributeExists(expression.Name("PK"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build condition: %w", err)
	}

	err = r.tracer.Capture(ctx, "dynamodb.delete_item", func(ctx context.Context) error {
		_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:                aws.String(r.tableName),
			Key:                      listKey(id),
			ConditionExpression:      expr.Condition(),
			ExpressionAttributeNames: expr.Names(),
		})
		return err
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return apperrors.NewNotFoundError("list")
		}
		r.logger.Error("Failed to delete list from DynamoDB",
			zap.Error(err),
			zap.String("listID", id.String()),
		)
		return apperrors.NewDatabaseError("delete list", err)
	}

	r.logger.Info("List deleted from store", zap.String("listID", id.String()))

	return nil
}

func (r *ListRepository) unmarshalList(raw map[string]types.AttributeValue) (*aggregates.List, error) {
	var doc listItem
	if err := attributevalue.UnmarshalMap(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}

	id, err := valueobjects.ParseListID(doc.ListID)
	if err != nil {
		return nil, fmt.Errorf("stored list has invalid id %q: %w", doc.ListID, err)
	}

	items := make([]*entities.Item, 0, len(doc.Items))
	for _, rec := range doc.Items {
		itemID, err := valueobjects.ParseItemID(rec.ItemID)
		if err != nil {
			return nil, fmt.Errorf("stored item has invalid id %q: %w", rec.ItemID, err)
		}
		items = append(items, entities.ReconstructItem(itemID, rec.Text, rec.Solved, utils.ParseRFC3339(rec.AddedAt)))
	}

	createdAt := utils.ParseRFC3339(doc.CreatedAt)
	updatedAt := utils.ParseRFC3339(doc.UpdatedAt)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return aggregates.ReconstructList(
		id,
		doc.Name,
		doc.OwnerID,
		doc.Members,
		items,
		doc.Archived,
		createdAt,
		updatedAt,
		doc.Version,
	)
}
