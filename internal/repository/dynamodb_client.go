package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"namebot/internal/domain"
)

const (
	pkPrefixName = "NAME#"
	skName       = "NAME"
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Client stores issued names in a DynamoDB table keyed by the full name, so
// the conditional put is the uniqueness check.
type Client struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
	newID     func() string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{
		api:       api,
		tableName: tableName,
		now:       time.Now,
		newID:     uuid.NewString,
	}, nil
}

// namePK returns the partition key for an issued name.
func namePK(fullName string) string {
	return pkPrefixName + fullName
}

// InsertName writes the name only if no item exists for it yet.
func (c *Client) InsertName(ctx context.Context, n domain.IssuedName) (domain.IssuedName, error) {
	if err := validateName(n); err != nil {
		return domain.IssuedName{}, err
	}
	n.CreatedAt = c.now().UTC()

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                nameItem(n, c.newID()),
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return domain.IssuedName{}, domain.ErrNameTaken
		}
		return domain.IssuedName{}, fmt.Errorf("repository: InsertName: %w", err)
	}
	return n, nil
}

// CountNames counts issued-name items with a paginated COUNT scan.
func (c *Client) CountNames(ctx context.Context) (int64, error) {
	var (
		total int64
		start map[string]types.AttributeValue
	)
	for {
		out, err := c.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(c.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("SK = :sk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sk": &types.AttributeValueMemberS{Value: skName},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return 0, fmt.Errorf("repository: CountNames scan: %w", err)
		}
		total += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		start = out.LastEvaluatedKey
	}
}

func nameItem(n domain.IssuedName, issueID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: namePK(n.FullName)},
		"SK":        &types.AttributeValueMemberS{Value: skName},
		"issueId":   &types.AttributeValueMemberS{Value: issueID},
		"country":   &types.AttributeValueMemberS{Value: n.Country},
		"gender":    &types.AttributeValueMemberS{Value: string(n.Gender)},
		"fullname":  &types.AttributeValueMemberS{Value: n.FullName},
		"createdAt": &types.AttributeValueMemberS{Value: n.CreatedAt.Format(time.RFC3339Nano)},
	}
}
