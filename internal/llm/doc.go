// Package llm is the conversational client that turns natural-language
// prompts into structured application designs.
//
// Every call offers the model exactly two tools: application_design, whose
// input is a full entity/attribute/key design, and generic_request for a
// plain reply. Temperature is pinned to zero and at most the last three
// conversation turns are prepended to the prompt. The caller receives the
// first tool invocation's input; a response without one is wrapped as a
// generic result.
//
// The HTTP client reads ANTHROPIC_API_KEY and honors an ANTHROPIC_API_URL
// override so tests can redirect calls to local httptest servers.
package llm
