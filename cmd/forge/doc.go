// Forge is a CLI for designing applications with an LLM and pushing
// generated code bundles into fresh GitHub repositories.
//
// The design command turns a natural-language prompt into a structured
// entity/attribute design; the push command creates a repository and
// uploads every file of a ZIP bundle into it, redacting known credential
// assignments from text files on the way.
//
// Usage:
//
//	forge design "a tool rental marketplace"   # one-shot design
//	forge design                               # interactive session
//	forge push app.zip --repo myapp --private  # push a bundle
//
// Credentials come from the GITHUB_TOKEN and ANTHROPIC_API_KEY environment
// variables.
package main
