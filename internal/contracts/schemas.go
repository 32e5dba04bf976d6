package contracts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed requests/region_metrics_request.json
var regionMetricsRequestSchema string

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	const schemaURL = "requests/region-metrics/v1.json"
	if err := compiler.AddResource(schemaURL, strings.NewReader(regionMetricsRequestSchema)); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", schemaURL, err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		log.Fatalf("failed to compile schema %s: %v", schemaURL, err)
	}

	compiledSchemas["RegionMetricsRequest/1.0.0"] = schema
}

// ValidateRequest checks a request body against the registered schema
// for the given request type and version.
func ValidateRequest(requestType, requestVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", requestType, requestVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for request '%s' version '%s' not found", requestType, requestVersion)
	}

	// Parse the JSON into a generic value first; schema validation is
	// impossible on an unparsable body.
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
