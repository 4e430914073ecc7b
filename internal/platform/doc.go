// Package platform contains OS integration glue: turning paths and Fyne URIs
// into uploadable files and opening web addresses in the system browser.
package platform
