// Package gallery holds the gallery's non-visual logic: card descriptions
// for image records and the confirmed delete flow.
package gallery
