package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoScoreStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoScoreStorage) Get(ctx context.Context, tier string) (*BestScore, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": tier})
	if err != nil {
		logging.Log.Errorf("SCORES: failed to marshal key for tier %s: %v", tier, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SCORES: GetItem for tier %s failed: %v", tier, err)
		return nil, fmt.Errorf("get best score %s: %w", tier, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item scoreItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Warnf("SCORES: failed to unmarshal tier %s, treating as empty: %v", tier, err)
		return nil, nil
	}
	return decodeItem(item), nil
}

func (s *DynamoScoreStorage) GetAll(ctx context.Context) ([]*BestScore, error) {
	var (
		scores  []*BestScore
		startAt map[string]types.AttributeValue
	)

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: startAt,
		})
		if err != nil {
			logging.Log.Errorf("SCORES: scan failed: %v", err)
			return nil, fmt.Errorf("scan best scores: %w", err)
		}

		var items []scoreItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			logging.Log.Errorf("SCORES: failed to unmarshal list: %v", err)
			return nil, err
		}
		for _, item := range items {
			if score := decodeItem(item); score != nil {
				scores = append(scores, score)
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startAt = out.LastEvaluatedKey
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].Tier < scores[j].Tier })
	return scores, nil
}

func (s *DynamoScoreStorage) Put(ctx context.Context, score *BestScore) error {
	rec, err := encodeItem(score)
	if err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		logging.Log.Errorf("SCORES: failed to marshal score: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SCORES: failed to put score for tier %s: %v", score.Tier, err)
		return fmt.Errorf("put best score %s: %w", score.Tier, err)
	}
	return nil
}

// PutIfLower writes when the tier is new, its numeric Moves is missing (an
// unparsable or foreign record) or higher than the new count.
func (s *DynamoScoreStorage) PutIfLower(ctx context.Context, score *BestScore) (bool, error) {
	rec, err := encodeItem(score)
	if err != nil {
		return false, err
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		logging.Log.Errorf("SCORES: failed to marshal score: %v", err)
		return false, err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR attribute_not_exists(Moves) OR Moves > :moves"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":moves": &types.AttributeValueMemberN{Value: strconv.Itoa(score.Moves)},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Debugf("SCORES: kept existing best for tier %s", score.Tier)
			return false, nil
		}
		logging.Log.Errorf("SCORES: failed to put score for tier %s: %v", score.Tier, err)
		return false, fmt.Errorf("put best score %s: %w", score.Tier, err)
	}
	return true, nil
}

func (s *DynamoScoreStorage) Delete(ctx context.Context, tier string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": tier})
	if err != nil {
		logging.Log.Errorf("SCORES: failed to marshal delete key for tier %s: %v", tier, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SCORES: failed to delete tier %s: %v", tier, err)
		return fmt.Errorf("delete best score %s: %w", tier, err)
	}
	logging.Log.Infof("SCORES: deleted best score for tier %s", tier)
	return nil
}
