package backup

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Suffix is appended to the original file name to form the backup name.
const Suffix = ".bak.zst"

// Create writes a zstd-compressed copy of the file at path alongside it
// (path + Suffix) and returns the hex sha256 of the original contents. An
// existing backup with the same name is overwritten.
func Create(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path + Suffix)
	if err != nil {
		return "", err
	}

	enc, err := zstd.NewWriter(dst)
	if err != nil {
		dst.Close()
		return "", err
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(enc, h), src); err != nil {
		enc.Close()
		dst.Close()
		return "", fmt.Errorf("failed to write backup of %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to finalize backup of %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Restore decompresses the backup of the file at path (path + Suffix) back
// over the original.
func Restore(path string) error {
	src, err := os.Open(path + Suffix)
	if err != nil {
		return err
	}
	defer src.Close()

	dec, err := zstd.NewReader(src)
	if err != nil {
		return err
	}
	defer dec.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, dec); err != nil {
		dst.Close()
		return fmt.Errorf("failed to restore %s from backup: %w", path, err)
	}
	return dst.Close()
}
