// Package barcode implements the payload codec and content classifier for
// the barcodec tool: rendering structured templates into the exact text
// embedded in a generated barcode, and the inverse classification and
// field extraction of raw text decoded from a scanned barcode.
//
// All operations are pure functions over caller-owned values. The Registry
// is built once and read-only afterwards, so everything in this package is
// safe for concurrent use without locking.
package barcode
