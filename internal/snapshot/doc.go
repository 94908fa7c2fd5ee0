// Package snapshot encodes the persisted tracker state as a single JSON
// document and normalizes whatever shape a previous version wrote into the
// current one. Decoding is deliberately forgiving: a readable document always
// yields a usable album, no matter which fields are missing or malformed.
package snapshot
