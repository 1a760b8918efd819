// Package content classifies raw file payloads as binary or text before
// they are encoded for upload.
//
// The heuristic matches common source-forge behavior: a null byte means
// binary, and otherwise the fraction of printable ASCII (plus tab, newline,
// and carriage return) decides. The 0.7 threshold is exclusive: a payload
// exactly at the boundary is text.
package content
