package docs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI3 renders the registered swagger document and converts it to OpenAPI 3
// with all references resolved.
func OpenAPI3() (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, fmt.Errorf("decode swagger document: %w", err)
	}

	converted, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger document: %w", err)
	}

	data, err := json.Marshal(converted)
	if err != nil {
		return nil, err
	}
	return openapi3.NewLoader().LoadFromData(data)
}

// Validate checks that the served document is a well-formed API description.
func Validate(ctx context.Context) error {
	doc, err := OpenAPI3()
	if err != nil {
		return err
	}
	if err = doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid API document: %w", err)
	}
	return nil
}
