package push

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/qoonic/forge/internal/content"
	"github.com/qoonic/forge/internal/github"
	"github.com/qoonic/forge/internal/redact"
)

// ErrBadArchive indicates the payload is not a valid ZIP container.
var ErrBadArchive = errors.New("invalid zip archive")

// DefaultCommitMessage is used when the caller does not supply one.
const DefaultCommitMessage = "Initial commit"

// Result is the aggregate outcome of one push.
type Result struct {
	RunID     string
	Attempted int
	Succeeded int
	Failed    int
	RepoURL   string
}

// Pusher uploads the entries of a ZIP archive into a freshly created
// repository, one blocking API call per file.
type Pusher struct {
	gh       *github.Client
	redactor *redact.Redactor
	sink     Sink
}

// New creates a Pusher. The redactor scrubs text entries before upload.
func New(gh *github.Client, redactor *redact.Redactor) *Pusher {
	return &Pusher{gh: gh, redactor: redactor}
}

// SetSink attaches an optional progress sink. The pipeline is fully
// functional with no sink attached.
func (p *Pusher) SetSink(s Sink) { p.sink = s }

// Push creates the destination repository and uploads every file entry of
// the archive into it, in archive order. A failure to parse the archive or
// to create the repository aborts the whole push before any file is
// written. Individual upload failures are counted and never abort the
// remaining entries; already-uploaded files are not rolled back.
func (p *Pusher) Push(ctx context.Context, owner, repoName string, archive []byte, message string, private bool) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadArchive, err)
	}
	if message == "" {
		message = DefaultCommitMessage
	}

	// First pass counts file entries so progress can be reported as a
	// fraction during the upload pass.
	total := 0
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			total++
		}
	}

	repoURL, err := p.gh.CreateRepository(ctx, repoName, private)
	if err != nil {
		return nil, fmt.Errorf("provisioning repository %s: %w", repoName, err)
	}

	result := &Result{
		RunID:   uuid.New().String(),
		RepoURL: repoURL,
	}

	processed := 0
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		processed++

		path := NormalizePath(f.Name, repoName)
		if path == "" {
			p.progress(processed, total)
			continue
		}

		result.Attempted++
		if err := p.processEntry(ctx, owner, repoName, f, path, message); err != nil {
			result.Failed++
			p.fileEvent(path, EventFailure, err.Error())
		} else {
			result.Succeeded++
			p.fileEvent(path, EventSuccess, "")
		}
		p.progress(processed, total)
	}

	return result, nil
}

// processEntry reads one archive entry and uploads it. A panic while
// handling the entry is converted into an error so one corrupt entry
// cannot abort the push.
func (p *Pusher) processEntry(ctx context.Context, owner, repoName string, f *zip.File, path, message string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("processing %s: %v", path, r)
		}
	}()

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", f.Name, err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("reading entry %s: %w", f.Name, err)
	}

	return p.uploadFile(ctx, owner, repoName, path, data, message)
}

// uploadFile encodes one file and commits it through the contents API.
// Binary payloads are base64-encoded as-is. Text payloads are redacted
// first; payloads that fail UTF-8 validation silently fall back to the
// binary path. Base64 is always the wire encoding.
func (p *Pusher) uploadFile(ctx context.Context, owner, repoName, path string, data []byte, message string) error {
	p.fileEvent(path, EventAnalyzing, "")

	var encoded string
	switch {
	case content.IsBinary(data):
		p.fileEvent(path, EventBinaryDetected, "")
		encoded = base64.StdEncoding.EncodeToString(data)
	case !utf8.Valid(data):
		encoded = base64.StdEncoding.EncodeToString(data)
	default:
		text := p.redactor.Redact(string(data), filepath.Ext(path))
		encoded = base64.StdEncoding.EncodeToString([]byte(text))
	}

	p.fileEvent(path, EventUploading, "")
	return p.gh.CreateFile(ctx, owner, repoName, path, encoded, message)
}

// NormalizePath strips a leading path segment equal to the repository name.
// Archives exported by generators often wrap everything in a directory
// named after the project; that wrapper should not appear in the pushed
// tree. Any other path is returned unchanged.
func NormalizePath(entryPath, repoName string) string {
	parts := strings.Split(entryPath, "/")
	if len(parts) > 0 && parts[0] == repoName {
		return strings.Join(parts[1:], "/")
	}
	return entryPath
}
