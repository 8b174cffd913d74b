// Package types defines the entity types, store configuration, and
// standard errors for the arcana reading ledger. The card catalog, the
// client store, and the CLI all share these definitions.
package types
