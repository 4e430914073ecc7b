// Package upload manages the pending file selection and uploads it to the
// backend one file at a time, reporting per-file progress and results.
package upload
