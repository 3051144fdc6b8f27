package app

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Digest returns the hex-encoded blake3-256 digest of the file at path.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
