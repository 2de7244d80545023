// Package authlete provides Go models for the Authlete Web API: services,
// clients and the value types they share.
//
// Every model embeds model.Record and therefore converts to and from a
// generic object:
//
//	svc := authlete.NewService(map[string]any{
//	    "service_name":          "demo",
//	    "access_token_duration": 3600,
//	})
//	obj := svc.ToObject() // {"accessTokenDuration": 3600, ..., "serviceName": "demo", ...}
//
// Input keys may be camelCase, as on the wire, or snake_case. Output always
// uses the camelCase wire names, in declaration order. Unknown keys are
// dropped and mistyped values are stored as given; Check reports them.
//
// Models also implement json.Marshaler and json.Unmarshaler, so an API
// response can be decoded directly:
//
//	var svc authlete.Service
//	if err := json.Unmarshal(body, &svc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Accessors
//
// Each attribute has a getter and a chaining setter named after the wire
// name with Go initialisms (jwksUri becomes JWKSURI and SetJWKSURI). Getters
// return the zero value when the stored value has the wrong type; use Raw
// to see what was actually stored.
//
// # Concurrency
//
// Schemas are built once at package initialization and are safe for
// concurrent use. Model values are not; concurrent writes to the same value
// require external synchronization.
//
// # Subpackages
//
//   - model: the marshalling engine
//   - request, response: request and response models
//   - catalog: every model type by name
//   - codec: JSON, JSONC, YAML, CBOR and canonical JSON
//   - openapi: OpenAPI 3 schemas for the models
package authlete
