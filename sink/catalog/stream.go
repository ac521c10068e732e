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

	"github.com/suparena/fixturestore/storagemodels"
)

// Stream performs a paginated streaming query against the catalog with
// configurable buffering and retry behavior.
func (s *Store[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	go s.streamWorker(ctx, params, options, resultCh)
	return resultCh
}

func (s *Store[T]) streamWorker(
	ctx context.Context,
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler != nil {
			options.ProgressHandler(storagemodels.StreamProgress{
				ItemsProcessed: itemIndex,
				PagesProcessed: pageNumber,
				LastKey:        lastKey,
				StartTime:      startTime,
			})
		}
	}

	input := &dynamodb.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     aws.Int32(options.PageSize),
		ScanIndexForward:          params.ScanIndexForward,
	}

	var lastEvaluatedKey map[string]types.AttributeValue
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := s.queryWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				continue
			}
			resultCh <- storagemodels.StreamResult[T]{
				Error: fmt.Errorf("query failed: %w", err),
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			result := s.processItem(item, itemIndex, pageNumber)
			itemIndex++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	reportProgress(nil)
}

// queryWithRetry executes a query, retrying transient DynamoDB errors
// with linear backoff.
func (s *Store[T]) queryWithRetry(
	ctx context.Context,
	input *dynamodb.QueryInput,
	options storagemodels.StreamOptions,
) (*dynamodb.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts a raw catalog item to a typed stream result.
func (s *Store[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) storagemodels.StreamResult[T] {
	meta := storagemodels.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	var result T
	if err := attributevalue.UnmarshalMap(item, &result); err != nil {
		return storagemodels.StreamResult[T]{
			Error: fmt.Errorf("failed to unmarshal item to type %T: %w", result, err),
			Raw:   rawCopy,
			Meta:  meta,
		}
	}

	return storagemodels.StreamResult[T]{
		Item: result,
		Raw:  rawCopy,
		Meta: meta,
	}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}
	return false
}
