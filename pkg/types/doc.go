// Package types defines the small interfaces shared across spark packages,
// such as the filesystem abstraction used when materializing templates.
package types
