/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UnmarshalFunc takes a raw catalog item and returns the unmarshaled record.
type UnmarshalFunc func(item map[string]types.AttributeValue) (interface{}, error)

var (
	typeRegistry = make(map[string]UnmarshalFunc)
	typeMu       sync.RWMutex
)

// RegisterType registers an unmarshal function for a given record-type name.
// If a type is already registered under the name, it panics to prevent
// accidental overrides.
func RegisterType(name string, fn UnmarshalFunc) {
	typeMu.Lock()
	defer typeMu.Unlock()

	if _, exists := typeRegistry[name]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", name))
	}
	typeRegistry[name] = fn
}

// GetUnmarshalFunc returns the registered unmarshal function for the given
// record-type name. If no function is registered, it returns an error.
func GetUnmarshalFunc(name string) (UnmarshalFunc, error) {
	typeMu.RLock()
	defer typeMu.RUnlock()

	fn, ok := typeRegistry[name]
	if !ok {
		return nil, fmt.Errorf("type registry: no type registered for %q", name)
	}
	return fn, nil
}
