/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/registry"
)

// RunPartitionKey groups all run manifests under one partition so they
// can be listed by time range.
const RunPartitionKey = "RUN"

func init() {
	registry.RegisterIndexMap[fixtures.RunManifest](map[string]string{
		"PK": RunPartitionKey,
		"SK": "RUN#{Id}",
	})

	registry.RegisterType("RunManifest", func(item map[string]types.AttributeValue) (interface{}, error) {
		var m fixtures.RunManifest
		if err := attributevalue.UnmarshalMap(item, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}
