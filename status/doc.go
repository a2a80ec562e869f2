// Package status provides a typed HTTP status code.
//
// Code is a plain uint16 newtype. Every uint16 is a valid Code: the IANA
// registered values have exported names and canonical reason phrases, and
// any other number is kept exactly as given and reported as unknown.
//
// Key characteristics:
//   - Total, lossless conversion in both directions (From / Uint16)
//   - Class predicates (IsInformational … IsServerError) over half-open ranges
//   - IsUnknown and CanonicalReason backed by a fixed table
//   - String renders the decimal number, never the reason phrase
//   - Text and YAML encoding for use in configuration files
//
// Values outside [100, 600) belong to no class: all five class predicates
// report false for them.
package status
