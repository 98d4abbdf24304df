// Package analysis turns a raw question into search terms, a coarse context
// and a fine-grained answer intent.
package analysis
