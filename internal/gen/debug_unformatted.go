package gen

import (
	"os"
	"path/filepath"
)

// writeDebugUnformatted dumps template output that failed go/format, so the
// broken source can be inspected. Best effort; errors are reported to the
// caller but generation has already failed at this point.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	debugPath := filepath.Join(dir, filename+".unformatted")

	return os.WriteFile(debugPath, content, filePerm)
}
