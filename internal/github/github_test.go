package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(server *httptest.Server) *Client {
	return &Client{
		token:   "test-token",
		apiURL:  server.URL,
		httpCli: server.Client(),
	}
}

func TestCreateRepository(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/user/repos" {
			t.Errorf("Path = %q, want /user/repos", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		var req createRepoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Name != "myrepo" {
			t.Errorf("Name = %q, want myrepo", req.Name)
		}
		if !req.Private {
			t.Error("Private = false, want true")
		}

		w.WriteHeader(201)
		w.Write([]byte(`{"html_url":"https://github.com/owner/myrepo"}`))
	}))
	defer server.Close()

	url, err := testClient(server).CreateRepository(context.Background(), "myrepo", true)
	if err != nil {
		t.Fatalf("CreateRepository error: %v", err)
	}
	if url != "https://github.com/owner/myrepo" {
		t.Errorf("url = %q", url)
	}
}

func TestCreateRepository_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		w.Write([]byte(`{"message":"name already exists"}`))
	}))
	defer server.Close()

	_, err := testClient(server).CreateRepository(context.Background(), "myrepo", false)
	if err == nil {
		t.Fatal("Expected error for 422")
	}
}

func TestCreateRepository_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	_, err := testClient(server).CreateRepository(context.Background(), "myrepo", false)
	if err == nil {
		t.Fatal("Expected error for 401")
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Errorf("error %T is not an AuthError: %v", err, err)
	}
}

func TestCreateFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("Method = %q, want PUT", r.Method)
		}
		if r.URL.Path != "/repos/owner/repo/contents/src/Main.kt" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}

		var req createFileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Content != "aGVsbG8=" {
			t.Errorf("Content = %q, want aGVsbG8=", req.Content)
		}
		if req.Encoding != "base64" {
			t.Errorf("Encoding = %q, want base64", req.Encoding)
		}
		if req.Message != "Initial commit" {
			t.Errorf("Message = %q", req.Message)
		}

		w.WriteHeader(201)
		w.Write([]byte(`{"content":{"path":"src/Main.kt"}}`))
	}))
	defer server.Close()

	err := testClient(server).CreateFile(context.Background(), "owner", "repo", "src/Main.kt", "aGVsbG8=", "Initial commit")
	if err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}
}

func TestCreateFile_UpdateAccepted(t *testing.T) {
	// 200 means the file already existed and was updated; still a success.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte(`{"content":{"path":"README.md"}}`))
	}))
	defer server.Close()

	err := testClient(server).CreateFile(context.Background(), "owner", "repo", "README.md", "aGVsbG8=", "update")
	if err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}
}

func TestCreateFile_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		w.Write([]byte(`{"message":"content is not valid Base64"}`))
	}))
	defer server.Close()

	err := testClient(server).CreateFile(context.Background(), "owner", "repo", "a.txt", "!!!", "msg")
	if err == nil {
		t.Fatal("Expected error for 422")
	}
}

func TestAuthenticatedUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("Path = %q, want /user", r.URL.Path)
		}
		w.Write([]byte(`{"login":"octocat"}`))
	}))
	defer server.Close()

	login, err := testClient(server).AuthenticatedUser(context.Background())
	if err != nil {
		t.Fatalf("AuthenticatedUser error: %v", err)
	}
	if login != "octocat" {
		t.Errorf("login = %q, want octocat", login)
	}
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"src/Main.kt", "src/Main.kt"},
		{"docs/read me.md", "docs/read%20me.md"},
		{"a/b/c", "a/b/c"},
	}
	for _, tt := range tests {
		if got := escapePath(tt.in); got != tt.want {
			t.Errorf("escapePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
