package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/folio-panel/folio/util/common"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/unicode/norm"
)

// Upload slots accepted by the profile form.
const (
	SlotProfilePicture = "profile_picture"
	SlotResume         = "resume"
)

var (
	allowedExtensions   = []any{"png", "jpg", "jpeg", "gif", "pdf", "svg"}
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	pathSeparators      = strings.NewReplacer("/", " ", "\\", " ")
)

// SecureFilename reduces name to a flat ASCII filename that is safe to join
// onto the upload folder. It returns "" when nothing usable is left.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)
	var b strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	name = pathSeparators.Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// UploadService validates and stores uploaded assets under one folder.
type UploadService struct {
	folder string
}

func NewUploadService(folder string) *UploadService {
	return &UploadService{folder: folder}
}

func (s *UploadService) Folder() string {
	return s.folder
}

// Check returns the sanitized filename for an upload in slot, or a
// ValidationError when its extension is not allow-listed.
func (s *UploadService) Check(slot, filename string) (string, error) {
	name := SecureFilename(filename)
	ext := ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = strings.ToLower(name[i+1:])
	}
	err := validation.Validate(ext, validation.Required, validation.In(allowedExtensions...))
	if err != nil {
		return "", common.NewValidationError(slot, "file type not allowed")
	}
	return name, nil
}

// Store writes the upload as name inside the upload folder, replacing any
// file with the same name.
func (s *UploadService) Store(fh *multipart.FileHeader, name string) error {
	if err := os.MkdirAll(s.folder, 0o755); err != nil {
		return err
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.folder, name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("store upload %s: %w", name, err)
	}
	return dst.Close()
}

