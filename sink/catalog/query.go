/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/fixturestore/registry"
	"github.com/suparena/fixturestore/storagemodels"
)

// Query performs a query against the catalog table using the provided
// parameters. It uses the RecordType attribute injected at append time
// to select the correct unmarshal function from the type registry, so
// each row comes back as its proper Go type.
func (s *Store[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]interface{}, error) {
	input := &dynamodb.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
	}
	out, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	var results []interface{}
	for _, item := range out.Items {
		var recordType string
		if attr, ok := item["RecordType"]; ok {
			if err := attributevalue.Unmarshal(attr, &recordType); err != nil {
				return nil, fmt.Errorf("failed to unmarshal RecordType: %w", err)
			}
		} else {
			return nil, fmt.Errorf("missing RecordType attribute in item")
		}

		unmarshalFn, err := registry.GetUnmarshalFunc(recordType)
		if err != nil {
			// Fallback: unmarshal into a generic map when no type is registered.
			var generic map[string]interface{}
			if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
				return nil, fmt.Errorf("failed to unmarshal generic item: %w", err)
			}
			results = append(results, generic)
			continue
		}

		obj, err := unmarshalFn(item)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal item for RecordType %q: %w", recordType, err)
		}
		results = append(results, obj)
	}

	return results, nil
}

// ListRange returns all records under the given partition key whose
// CreatedAt attribute falls between start and end.
func (s *Store[T]) ListRange(ctx context.Context, partitionKey string, start, end time.Time) ([]T, error) {
	filter := "CreatedAt BETWEEN :start AND :end"
	input := &dynamodb.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("PK = :pk"),
		FilterExpression:       &filter,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":    &types.AttributeValueMemberS{Value: partitionKey},
			":start": &types.AttributeValueMemberS{Value: start.Format(time.RFC3339)},
			":end":   &types.AttributeValueMemberS{Value: end.Format(time.RFC3339)},
		},
	}

	var results []T
	var lastKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = lastKey
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("ListRange query error: %w", err)
		}

		for _, item := range out.Items {
			var record T
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record: %w", err)
			}
			results = append(results, record)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}
