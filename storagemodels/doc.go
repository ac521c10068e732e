/*
Package storagemodels defines the data structures shared by catalog
sink implementations.

QueryParams carries the parameters for querying the run catalog:

	params := &QueryParams{
	    TableName:              "fixture-runs",
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "RUN#2026-08"},
	    },
	}

StreamResult wraps streamed items with per-item metadata, and
StreamOptions configures streaming via functional options:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	}
*/
package storagemodels
