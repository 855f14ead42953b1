package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode is the active submission path. Exactly one mode is active at a time.
type Mode int

const (
	ModeUpload Mode = iota
	ModeText
)

func (m Mode) String() string {
	if m == ModeText {
		return "text"
	}
	return "upload"
}

// ValidationError is a locally recoverable input problem. Its reason is
// shown to the user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var allowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// FileInput is an accepted resume file. Contents are read from Path at
// submission time.
type FileInput struct {
	Name string
	Size int64
	Path string
}

// Candidate is the currently active input. Exactly one variant is live:
// File when Kind is ModeUpload, Text when Kind is ModeText.
type Candidate struct {
	Kind Mode
	File *FileInput
	Text string
}

// ValidateName accepts a file iff its extension (after the last dot,
// case-insensitive) is pdf or txt. The MIME type is never consulted.
func ValidateName(name string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		return &ValidationError{Reason: "Only PDF and TXT files are supported"}
	}
	return nil
}

// SizeLabel is the human-readable selection label: file name plus size in
// kilobytes rounded to one decimal.
func (f *FileInput) SizeLabel() string {
	return fmt.Sprintf("%s (%.1f KB)", f.Name, float64(f.Size)/1024)
}
