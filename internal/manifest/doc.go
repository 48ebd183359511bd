// Package manifest reads and updates package.json manifests. Version
// updates are surgical: every other field, its value bytes, and the key
// order survive the rewrite, and the document is re-indented to the
// two-space form package manifests conventionally use. The package also
// provides JSON Schema validation for doctor-style health checks.
package manifest
