package model

// Package model defines domain data structures used across the app: image
// records returned by the backend, pending uploads, and the status enums that
// drive upload rows and lazily loaded images.
