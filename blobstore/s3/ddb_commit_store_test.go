package s3

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/vertexid/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommitStore() (*DDBCommitStore, *MockS3Client, *MockDDBClient) {
	s3Client := new(MockS3Client)
	ddbClient := new(MockDDBClient)
	store := NewDDBCommitStore(NewStore(s3Client, "bucket", "graphs"), ddbClient, "vertexid-commits", "s3://bucket/graphs")
	return store, s3Client, ddbClient
}

func claimFor(name string) interface{} {
	return mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		item, ok := in.Item["blob_name"].(*types.AttributeValueMemberS)
		return ok && item.Value == name && in.ConditionExpression != nil
	})
}

func TestDDBCommitStore_PutIfAbsent(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		store, s3Client, ddbClient := newCommitStore()
		ddbClient.On("PutItem", mock.Anything, claimFor("web/SHARDS")).Return(&dynamodb.PutItemOutput{}, nil).Once()
		s3Client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.Key == "graphs/web/SHARDS"
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		require.NoError(t, store.PutIfAbsent(context.Background(), "web/SHARDS", []byte("data")))
		ddbClient.AssertExpectations(t)
		s3Client.AssertExpectations(t)
	})

	t.Run("Exists", func(t *testing.T) {
		store, s3Client, ddbClient := newCommitStore()
		ddbClient.On("PutItem", mock.Anything, claimFor("web/SHARDS")).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.PutIfAbsent(context.Background(), "web/SHARDS", []byte("data"))
		assert.ErrorIs(t, err, blobstore.ErrExists)
		s3Client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	t.Run("UploadFailsReleasesClaim", func(t *testing.T) {
		store, s3Client, ddbClient := newCommitStore()
		boom := errors.New("upload failed")
		ddbClient.On("PutItem", mock.Anything, claimFor("web/SHARDS")).Return(&dynamodb.PutItemOutput{}, nil).Once()
		s3Client.On("PutObject", mock.Anything, mock.Anything).Return(nil, boom).Once()
		ddbClient.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
			item, ok := in.Key["blob_name"].(*types.AttributeValueMemberS)
			return ok && item.Value == "web/SHARDS"
		})).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

		err := store.PutIfAbsent(context.Background(), "web/SHARDS", []byte("data"))
		assert.ErrorIs(t, err, boom)
		ddbClient.AssertExpectations(t)
	})
}

func TestDDBCommitStore_PutIsUnconditional(t *testing.T) {
	store, s3Client, ddbClient := newCommitStore()
	ddbClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return in.ConditionExpression == nil
	})).Return(&dynamodb.PutItemOutput{}, nil).Once()
	s3Client.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

	require.NoError(t, store.Put(context.Background(), "web/SHARDS", []byte("data")))
	ddbClient.AssertExpectations(t)
	s3Client.AssertExpectations(t)
}

func TestDDBCommitStore_Delete(t *testing.T) {
	store, s3Client, ddbClient := newCommitStore()
	s3Client.On("DeleteObject", mock.Anything, mock.Anything).Return(&s3.DeleteObjectOutput{}, nil).Once()
	ddbClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

	require.NoError(t, store.Delete(context.Background(), "web/SHARDS"))
	ddbClient.AssertExpectations(t)
	s3Client.AssertExpectations(t)
}
