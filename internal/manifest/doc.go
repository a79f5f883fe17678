// Package manifest defines the YAML manifest that tells hlist-gen which
// record types to derive, plus its loader and validation.
package manifest
