package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultStateTable is the DynamoDB table backing the key-value store
const DefaultStateTable = "AppState"

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// DynamoStore is the production KVStore: one table, partition key "key",
// each item carrying a single JSON document in "doc".
type DynamoStore struct {
	Client *dynamodb.Client
	Table  string
}

type stateItem struct {
	Key string `dynamodbav:"key"`
	Doc string `dynamodbav:"doc"`
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	if table == "" {
		table = DefaultStateTable
	}
	return &DynamoStore{Client: client, Table: table}
}

func (s *DynamoStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	output, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Table),
		Key:       s.itemKey(key),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get item %q from table '%s': %w", key, s.Table, err)
	}
	if output.Item == nil {
		return nil, false, nil
	}

	var item stateItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal item %q: %w", key, err)
	}
	return json.RawMessage(item.Doc), true, nil
}

func (s *DynamoStore) Set(ctx context.Context, key string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document for %q: %w", key, err)
	}

	marshaledItem, err := attributevalue.MarshalMap(stateItem{Key: key, Doc: string(doc)})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Table),
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item %q in table '%s': %w", key, s.Table, err)
	}
	return nil
}

func (s *DynamoStore) Remove(ctx context.Context, key string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Table),
		Key:       s.itemKey(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item %q from table '%s': %w", key, s.Table, err)
	}
	return nil
}

// Clear scans all keys and batch-deletes them. Used by the full data reset.
func (s *DynamoStore) Clear(ctx context.Context) error {
	output, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(s.Table),
		ProjectionExpression: aws.String("#k"),
		ExpressionAttributeNames: map[string]string{
			"#k": "key",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", s.Table, err)
	}

	var writeRequests []types.WriteRequest
	for _, item := range output.Items {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: item},
		})
	}

	return s.batchWrite(ctx, writeRequests)
}

// batchWrite executes write requests in batches of 25, the DynamoDB limit.
func (s *DynamoStore) batchWrite(ctx context.Context, writeRequests []types.WriteRequest) error {
	const maxBatchSize = 25

	for i := 0; i < len(writeRequests); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(writeRequests) {
			end = len(writeRequests)
		}

		_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.Table: writeRequests[i:end],
			},
		})
		if err != nil {
			return fmt.Errorf("failed to batch write items to table '%s': %w", s.Table, err)
		}
	}
	return nil
}

func (s *DynamoStore) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}
