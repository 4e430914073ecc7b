// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the upload, gallery, and library services and renders the
// upload panel, the lazily loaded gallery, and settings. All UI strings are
// localized via Localization.
package ui
