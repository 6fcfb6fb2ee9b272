// Package types defines the Store interface, history record entity,
// configuration, and standard error values shared between the barcodec
// CLI and its storage backends.
package types
