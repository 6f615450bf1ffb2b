// Package loader decodes YAML text into internal/yamlvalue.Value, the
// tree pkg/interpreter walks.
//
// Decoding goes through a plain interface{} via gopkg.in/yaml.v3 rather
// than a custom yaml.Node walk: yaml.v3 maps every mapping whose keys
// are all strings to map[string]interface{}, which is exactly the shape
// yamlvalue.Hash wants, so the adapter is a single recursive convert
// over Go's dynamically-typed decode result. A mapping with a
// non-string key decodes to another map type, which convert rejects as
// unsupported.
package loader
