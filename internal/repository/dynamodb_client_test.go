package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"namebot/internal/domain"
)

type fakeDynamo struct {
	putErr     error
	scanOuts   []*dynamodb.ScanOutput
	scanErr    error
	lastPutIn  *dynamodb.PutItemInput
	scanInputs []*dynamodb.ScanInput
	putInvoked int
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPutIn = in
	f.putInvoked++
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanInputs = append(f.scanInputs, in)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	out := f.scanOuts[0]
	f.scanOuts = f.scanOuts[1:]
	return out, nil
}

func mustNewClient(t *testing.T, db *fakeDynamo) *Client {
	t.Helper()
	c, err := New(db, "names-table")
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	c.newID = func() string { return "issue-1" }
	return c
}

func sampleName() domain.IssuedName {
	return domain.IssuedName{Country: "Nigeria🇳🇬", Gender: domain.GenderMale, FullName: "Emeka Okafor"}
}

func strVal(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := item[key].(*types.AttributeValueMemberS)
	require.True(t, ok, key)
	return v.Value
}

func TestInsertName_HappyPath(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	out, err := c.InsertName(context.Background(), sampleName())
	require.NoError(t, err)
	require.Equal(t, "Emeka Okafor", out.FullName)
	require.Equal(t, 2026, out.CreatedAt.Year())

	in := db.lastPutIn
	require.Equal(t, "names-table", *in.TableName)
	require.Equal(t, "attribute_not_exists(PK)", *in.ConditionExpression)
	require.Equal(t, "NAME#Emeka Okafor", strVal(t, in.Item, "PK"))
	require.Equal(t, skName, strVal(t, in.Item, "SK"))
	require.Equal(t, "Nigeria🇳🇬", strVal(t, in.Item, "country"))
	require.Equal(t, "male", strVal(t, in.Item, "gender"))
	require.Equal(t, "issue-1", strVal(t, in.Item, "issueId"))
}

func TestInsertName_ConditionFailedIsNameTaken(t *testing.T) {
	db := &fakeDynamo{putErr: fmt.Errorf("operation error: %w", &types.ConditionalCheckFailedException{Message: ptr("conditional request failed")})}
	c := mustNewClient(t, db)

	_, err := c.InsertName(context.Background(), sampleName())
	require.ErrorIs(t, err, domain.ErrNameTaken)
}

func TestInsertName_DynamoError(t *testing.T) {
	db := &fakeDynamo{putErr: errors.New("ProvisionedThroughputExceededException")}
	c := mustNewClient(t, db)

	_, err := c.InsertName(context.Background(), sampleName())
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNameTaken)
	require.Contains(t, err.Error(), "InsertName")
}

func TestInsertName_Validation(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	n := sampleName()
	n.FullName = ""
	_, err := c.InsertName(context.Background(), n)
	require.ErrorContains(t, err, "full name")

	n = sampleName()
	n.Gender = "other"
	_, err = c.InsertName(context.Background(), n)
	require.ErrorContains(t, err, "invalid gender")
	require.Zero(t, db.putInvoked)
}

func TestCountNames_Paginates(t *testing.T) {
	db := &fakeDynamo{scanOuts: []*dynamodb.ScanOutput{
		{Count: 3, LastEvaluatedKey: map[string]types.AttributeValue{"PK": &types.AttributeValueMemberS{Value: "NAME#x"}}},
		{Count: 2},
	}}
	c := mustNewClient(t, db)

	n, err := c.CountNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Len(t, db.scanInputs, 2)
	require.Equal(t, types.SelectCount, db.scanInputs[0].Select)
	require.Nil(t, db.scanInputs[0].ExclusiveStartKey)
	require.NotNil(t, db.scanInputs[1].ExclusiveStartKey)
}

func TestCountNames_ScanError(t *testing.T) {
	db := &fakeDynamo{scanErr: errors.New("boom")}
	c := mustNewClient(t, db)
	_, err := c.CountNames(context.Background())
	require.ErrorContains(t, err, "CountNames")
}

func TestNamePK(t *testing.T) {
	require.Equal(t, "NAME#सीता थापा", namePK("सीता थापा"))
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil, "names-table")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestNew_EmptyTableName(t *testing.T) {
	_, err := New(&fakeDynamo{}, " ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

func ptr[T any](v T) *T { return &v }
