// Package corpus loads the bilingual rulebook and keeps an immutable,
// indexed snapshot of it for request handling.
package corpus
