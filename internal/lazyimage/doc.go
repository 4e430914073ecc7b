// Package lazyimage implements the progressive image loader: a blurred
// placeholder while off-screen, a single fetch once visible, then either the
// decoded image or an error indicator.
package lazyimage
