package kvstore

import (
	"context"
	"errors"
	"os"

	"frota_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBackofficeTableName = "backoffice_kv"

// kvItem is the DynamoDB row shape: one row per collection.
//
// Table requirements:
//   - PK: k (string, the collection name)
//
// The whole collection is serialized into v, mirroring the full-array
// overwrite contract of Store.Put.
type kvItem struct {
	K string `dynamodbav:"k"`
	V string `dynamodbav:"v"`
}

var _ interfaces.Store = (*DynamoStore)(nil)

// DynamoStore is the durable Store backend.
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewDynamoStore(ddb *dynamodb.Client) *DynamoStore {
	table := os.Getenv("BACKOFFICE_TABLE")
	if table == "" {
		table = defaultBackofficeTableName
	}
	return &DynamoStore{ddb: ddb, tableName: table}
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"k": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.V), nil
}

func (s *DynamoStore) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{K: key, V: string(value)})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"k": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return nil
		}
	}
	return err
}
