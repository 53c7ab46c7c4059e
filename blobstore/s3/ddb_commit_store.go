package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/vertexid/blobstore"
	"github.com/hupe1980/vertexid/internal/hash"
)

// DDBCommitStore implements blobstore.BlobStore backed by S3 with DynamoDB
// deciding which writer creates a name first.
//
// Every name written through the store gets an item in the table. Creating
// a blob is a conditional PutItem on that item followed by the S3 upload, so
// two processes initialising the same shard set cannot both win. All writes
// to the prefix must go through this store.
//
// Table schema:
//   - Partition key: base_uri (string) - the S3 bucket/prefix
//   - Sort key: blob_name (string)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name vertexid-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=blob_name,AttributeType=S \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=blob_name,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDBCommitStore struct {
	s3Store   *Store
	ddbClient DDBClient
	tableName string
	baseURI   string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// NewDDBCommitStore creates a new S3+DynamoDB commit store.
// The baseURI should be "s3://bucket/prefix" format used as partition key.
func NewDDBCommitStore(s3Store *Store, ddbClient DDBClient, tableName, baseURI string) *DDBCommitStore {
	return &DDBCommitStore{
		s3Store:   s3Store,
		ddbClient: ddbClient,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Get reads from S3.
func (s *DDBCommitStore) Get(ctx context.Context, name string) ([]byte, error) {
	return s.s3Store.Get(ctx, name)
}

// Put records the name unconditionally and uploads the blob.
func (s *DDBCommitStore) Put(ctx context.Context, name string, data []byte) error {
	if _, err := s.ddbClient.PutItem(ctx, s.itemInput(name, data, false)); err != nil {
		return fmt.Errorf("failed to record %s in DynamoDB: %w", name, err)
	}
	return s.s3Store.Put(ctx, name, data)
}

// PutIfAbsent claims the name in DynamoDB, then uploads the blob. If the
// upload fails the claim is released again.
func (s *DDBCommitStore) PutIfAbsent(ctx context.Context, name string, data []byte) error {
	if _, err := s.ddbClient.PutItem(ctx, s.itemInput(name, data, true)); err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return blobstore.ErrExists
		}
		return fmt.Errorf("failed to claim %s in DynamoDB: %w", name, err)
	}

	if err := s.s3Store.Put(ctx, name, data); err != nil {
		if _, delErr := s.ddbClient.DeleteItem(ctx, s.keyInput(name)); delErr != nil {
			return errors.Join(err, fmt.Errorf("failed to release claim on %s: %w", name, delErr))
		}
		return err
	}
	return nil
}

// Delete removes the blob, then its record.
func (s *DDBCommitStore) Delete(ctx context.Context, name string) error {
	if err := s.s3Store.Delete(ctx, name); err != nil {
		return err
	}
	if _, err := s.ddbClient.DeleteItem(ctx, s.keyInput(name)); err != nil {
		return fmt.Errorf("failed to delete %s from DynamoDB: %w", name, err)
	}
	return nil
}

// List lists blobs with prefix.
func (s *DDBCommitStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.s3Store.List(ctx, prefix)
}

func (s *DDBCommitStore) itemInput(name string, data []byte, conditional bool) *dynamodb.PutItemInput {
	in := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":  &types.AttributeValueMemberS{Value: s.baseURI},
			"blob_name": &types.AttributeValueMemberS{Value: name},
			"size":      &types.AttributeValueMemberN{Value: strconv.Itoa(len(data))},
			"crc32c":    &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(hash.CRC32C(data)), 10)},
		},
	}
	if conditional {
		in.ConditionExpression = aws.String("attribute_not_exists(blob_name)")
	}
	return in
}

func (s *DDBCommitStore) keyInput(name string) *dynamodb.DeleteItemInput {
	return &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"base_uri":  &types.AttributeValueMemberS{Value: s.baseURI},
			"blob_name": &types.AttributeValueMemberS{Value: name},
		},
	}
}
