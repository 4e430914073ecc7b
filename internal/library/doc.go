// Package library owns the session's list of image records. The Shell is
// the only writer; views receive snapshots through the change callback.
package library
