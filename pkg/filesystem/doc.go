// Package filesystem implements types.FS on top of afero: the OS filesystem
// used when extracting templates and an in-memory one used by tests. It also
// lists the files of a directory tree when a template is generated from it.
package filesystem
