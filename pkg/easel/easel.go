// Package easel holds module-level metadata for the easel CLI.
package easel

// Version is the easel release version.
const Version = "0.1.0"
