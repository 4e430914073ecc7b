package api

// Package api is the JSON REST client for the ImageBoost backend: listing,
// fetching, uploading (multipart with progress), and deleting image records,
// plus raw resource fetches used by the lazy image loader.
