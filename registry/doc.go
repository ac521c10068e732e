/*
Package registry manages type registration and index mapping for FixtureStore.

The registry system enables:
  - Polymorphic record storage in a single catalog table
  - Dynamic type resolution based on RecordType attributes
  - Flexible key patterns through index maps

Type Registry:
Maps record type names to unmarshal functions:

	registry.RegisterType("RunManifest", func(item map[string]types.AttributeValue) (interface{}, error) {
	    var m fixtures.RunManifest
	    err := attributevalue.UnmarshalMap(item, &m)
	    return &m, err
	})

Index Map Registry:
Associates Go types with catalog key patterns:

	indexMap := map[string]string{
	    "PK": "RUN#{Id}",
	    "SK": "RUN#{Id}",
	}
	registry.RegisterIndexMap[fixtures.RunManifest](indexMap)

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
