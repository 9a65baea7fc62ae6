// Package catalog provides the read-only registry of known providers and
// their models. A Catalog is built once, from the built-in defaults, a
// remote fetch, or both, and is immutable thereafter, so it can be shared
// across concurrent resolutions without locking.
package catalog
