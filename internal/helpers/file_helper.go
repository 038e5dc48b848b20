package helpers

import (
	"io"
	"os"
	"strings"
	"unicode"
)

// SanitizeFilename reduces a user-supplied name to alphanumerics and
// underscores so it is safe to embed in an export or backup filename.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// CopyFile copies src to dst. The copy keeps its own modification time so
// backup rotation orders copies by when they were taken, not by the source's
// mtime.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func(in *os.File) {
		err = in.Close()
		if err != nil {
			return
		}
	}(in)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func DeleteFile(path string, recurse bool) error {
	if recurse {
		err := os.RemoveAll(path)
		if err != nil {
			return err
		}
	} else {
		err := os.Remove(path)
		if err != nil {
			return err
		}
	}
	return nil
}
