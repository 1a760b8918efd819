// Package push implements the ZIP-to-repository upload pipeline.
//
// A push provisions the destination repository, then walks the archive's
// file entries in order, classifying each as binary or text, redacting the
// known sensitive assignment from text, and committing every file through
// the GitHub contents API with base64 encoding. Archive parse failures and
// repository-creation failures are terminal; a single file's failure is
// recorded in the result counts and the walk continues. The operation is
// not atomic: nothing already uploaded is rolled back.
//
// Progress is reported to an optional [Sink]; the pipeline runs unchanged
// without one.
package push
