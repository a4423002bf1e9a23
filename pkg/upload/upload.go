// Package upload stages image attachments on local disk.
//
// Stage validates every file before writing anything, so a rejected submission
// leaves no trace on disk. The returned Batch deletes its files on Release
// unless Commit was called, which lets handlers write
//
//	batch, err := store.Stage(kind, files)
//	...
//	defer batch.Release()
//	if err := save(batch); err != nil { return }
//	batch.Commit()
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrTooManyFiles    = errors.New("too many files")
	ErrInvalidForm     = errors.New("invalid multipart form")
)

var allowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// MaxFilesPerSubmission bounds every Stage call.
const MaxFilesPerSubmission = 2

const formFieldsBytes = 1 << 20

type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Stored is one attachment written to disk. Name is relative to the store dir
// and uses forward slashes, it is what gets persisted and served under /uploads/.
type Stored struct {
	Field string
	Name  string
	path  string
}

type Batch struct {
	files     []Stored
	committed bool
}

// Stage validates and writes the given files under dir/kind. Nil headers are skipped.
func (s *Store) Stage(kind string, files map[string]*multipart.FileHeader) (*Batch, error) {
	present := make(map[string]*multipart.FileHeader, len(files))
	for field, fh := range files {
		if fh != nil {
			present[field] = fh
		}
	}
	if len(present) > MaxFilesPerSubmission {
		return nil, ErrTooManyFiles
	}

	exts := make(map[string]string, len(present))
	for field, fh := range present {
		ext, err := s.check(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		exts[field] = ext
	}

	batch := &Batch{}
	if len(present) == 0 {
		return batch, nil
	}

	if err := os.MkdirAll(filepath.Join(s.dir, kind), 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload dir: %w", err)
	}
	for field, fh := range present {
		name := path.Join(kind, generateName(exts[field]))
		full := filepath.Join(s.dir, filepath.FromSlash(name))
		if err := writeFile(fh, full); err != nil {
			batch.Release()
			return nil, fmt.Errorf("can't store %s: %w", field, err)
		}
		batch.files = append(batch.files, Stored{Field: field, Name: name, path: full})
	}
	return batch, nil
}

func (s *Store) check(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, s.maxBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedType, mt.String())
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" || len(ext) > 5 {
		ext = mt.Extension()
	}
	return ext, nil
}

// Name returns the stored name for field, or nil when no file was sent for it.
func (b *Batch) Name(field string) *string {
	for _, f := range b.files {
		if f.Field == field {
			name := f.Name
			return &name
		}
	}
	return nil
}

func (b *Batch) Files() []Stored {
	return b.files
}

func (b *Batch) Commit() {
	b.committed = true
}

// Release removes every staged file unless the batch was committed. Safe to call twice.
func (b *Batch) Release() {
	if b == nil || b.committed {
		return
	}
	for _, f := range b.files {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			zap.L().Error("can't remove staged upload", zap.String("path", f.path), zap.Error(err))
		}
	}
	b.files = nil
}

// ParseForm caps the body at what a full submission may need and parses it.
// Errors wrap ErrFileTooLarge or ErrInvalidForm.
func (s *Store) ParseForm(w http.ResponseWriter, r *http.Request) error {
	limit := s.formLimit()
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	// the memory threshold matches the body cap, so accepted files never spill to os.TempDir
	err := r.ParseMultipartForm(limit)
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w (max %d bytes)", ErrFileTooLarge, s.maxBytes)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

func (s *Store) formLimit() int64 {
	return s.maxBytes*MaxFilesPerSubmission + formFieldsBytes
}

// Rejected reports whether err was caused by the client's files rather than the disk.
func Rejected(err error) bool {
	return errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrTooManyFiles) ||
		errors.Is(err, ErrInvalidForm)
}

// FormFiles picks the first file of each named field from a parsed multipart request.
func FormFiles(r *http.Request, fields ...string) map[string]*multipart.FileHeader {
	out := make(map[string]*multipart.FileHeader, len(fields))
	if r.MultipartForm == nil {
		return out
	}
	for _, field := range fields {
		if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
			out[field] = fhs[0]
		}
	}
	return out
}

func generateName(ext string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}

func writeFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err = out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}
