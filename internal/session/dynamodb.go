package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"namebot/internal/domain"
)

const skState = "STATE"

type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDB stores sessions in a table so state survives between Lambda
// invocations. Items expire through the table's ttl attribute.
type DynamoDB struct {
	api       dynamodbAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

func NewDynamoDB(api dynamodbAPI, tableName string, ttl time.Duration) (*DynamoDB, error) {
	if api == nil {
		return nil, errors.New("session: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("session: table name must not be empty")
	}
	return &DynamoDB{api: api, tableName: tableName, ttl: ttl, now: time.Now}, nil
}

func sessionKey(sessionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "SESSION#" + sessionID},
		"SK": &types.AttributeValueMemberS{Value: skState},
	}
}

func (d *DynamoDB) Get(ctx context.Context, sessionID string) (domain.ConversationState, error) {
	out, err := d.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            sessionKey(sessionID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.ConversationState{}, fmt.Errorf("session: GetItem: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.ConversationState{Phase: domain.PhaseIdle}, nil
	}
	// Expired items linger until DynamoDB's sweeper removes them.
	if exp, ok := out.Item["ttl"].(*types.AttributeValueMemberN); ok {
		if ts, err := strconv.ParseInt(exp.Value, 10, 64); err == nil && ts <= d.now().Unix() {
			return domain.ConversationState{Phase: domain.PhaseIdle}, nil
		}
	}

	st := domain.ConversationState{
		Phase:   domain.Phase(str(out.Item, "phase")),
		Country: str(out.Item, "country"),
	}
	if g := str(out.Item, "gender"); g != "" {
		gender, err := domain.ParseGender(g)
		if err != nil {
			return domain.ConversationState{}, fmt.Errorf("session: decode gender: %w", err)
		}
		st.Gender = gender
	}
	return st, nil
}

func (d *DynamoDB) Save(ctx context.Context, sessionID string, st domain.ConversationState) error {
	item := sessionKey(sessionID)
	item["phase"] = &types.AttributeValueMemberS{Value: string(st.CurrentPhase())}
	if st.Country != "" {
		item["country"] = &types.AttributeValueMemberS{Value: st.Country}
	}
	if st.Gender != "" {
		item["gender"] = &types.AttributeValueMemberS{Value: string(st.Gender)}
	}
	if d.ttl > 0 {
		item["ttl"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(d.now().Add(d.ttl).Unix(), 10)}
	}

	_, err := d.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("session: PutItem: %w", err)
	}
	return nil
}

func str(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
