/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	fserrors "github.com/suparena/fixturestore/errors"
	"github.com/suparena/fixturestore/registry"
)

// Store implements sink.RecordSink[T] on top of a DynamoDB catalog
// table. Records are placed using the key templates registered for T in
// the index map registry; a RecordType attribute is injected at append
// time so heterogeneous rows can be resolved back to their Go types.
type Store[T any] struct {
	client    *sdk.Client
	tableName string
	closed    bool
}

// Config holds the catalog connection settings, typically read from the
// environment.
type Config struct {
	AccessKey string `env:"AWS_ACCESS_KEY"`
	SecretKey string `env:"AWS_SECRET_KEY"`
	Region    string `env:"AWS_REGION"`
	TableName string `env:"AWS_DDB_TABLE"`
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(cfg Config) (*sdk.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(awsCfg)

	log.Debug().
		Str("table", cfg.TableName).
		Str("region", cfg.Region).
		Msg("catalog client initialized")
	return client, nil
}

// New constructs a new catalog Store for type T.
func New[T any](cfg Config) (*Store[T], error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	return &Store[T]{
		client:    client,
		tableName: cfg.TableName,
	}, nil
}

// Append stores the given record, expanding the registered key templates
// against the record's own fields and injecting its RecordType.
func (s *Store[T]) Append(ctx context.Context, record T) error {
	if s.closed {
		return fserrors.NewSinkClosedError(s.tableName, "append")
	}

	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return fserrors.ErrNoIndexMap
	}

	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	expanded, err := expandMacros(indexMap, record)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av["RecordType"] = &types.AttributeValueMemberS{Value: recordTypeName[T]()}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Close finalizes the sink. The catalog holds no buffered state, so this
// only guards against further appends.
func (s *Store[T]) Close() error {
	if s.closed {
		return fserrors.NewSinkClosedError(s.tableName, "close")
	}
	s.closed = true
	return nil
}

// GetOne retrieves a single record using a string key expanded through
// the registered key templates. It returns nil without an error when no
// record matches.
func (s *Store[T]) GetOne(ctx context.Context, key string) (*T, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fserrors.ErrNoIndexMap
	}

	expanded := expandStringKey(indexMap, key)
	keyMap, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return result, nil
}

// Delete removes a record using a string key.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return fserrors.ErrNoIndexMap
	}

	expanded := expandStringKey(indexMap, key)
	keyMap, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// expandMacros replaces {Field} placeholders in each key template with
// the corresponding attribute of the record.
func expandMacros(indexMap map[string]string, record any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record for key expansion: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			val, ok := av[key]
			if !ok {
				return ""
			}
			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
		res[fieldName] = expanded
	}
	return res, nil
}

// expandStringKey substitutes the provided key for every macro in the
// index map templates. Templates without macros pass through unchanged.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllString(template, key)
	}
	return expanded
}

// buildKeyFromExpanded builds the table key from the expanded index map.
// It requires non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, errors.New("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// recordTypeName derives the registry name for T from its Go type.
func recordTypeName[T any]() string {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
