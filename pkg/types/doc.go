// Package types defines the core value types shared across the model
// selection module: model identifiers, the resolved model descriptor,
// and the resolution error taxonomy.
package types
