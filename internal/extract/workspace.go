package extract

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
)

const tempPrefix = "govdoc_"

// tempPath returns a fresh scratch path inside dir. The name is built
// from a random token, never from caller-supplied file names, so
// concurrent requests cannot collide and no path injection is possible.
func tempPath(dir, ext string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate temp name: %w", err)
	}
	return filepath.Join(dir, tempPrefix+hex.EncodeToString(buf)+"."+ext), nil
}
