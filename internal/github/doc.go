// Package github is a minimal client for the GitHub REST API operations the
// push pipeline needs: creating a repository, writing file contents, and
// resolving the authenticated user.
//
// Authentication uses a bearer token from GITHUB_TOKEN. GITHUB_API_URL
// overrides the API base URL so tests can redirect calls to local httptest
// servers without making live requests.
package github
