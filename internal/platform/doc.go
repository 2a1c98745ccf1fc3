package platform

// Package platform contains OS integration glue: the per-user application
// data directory, filesystem helpers, and opening URLs in the default
// browser.
