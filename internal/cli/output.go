package cli

import (
	"fmt"
	"os"
)

// writeOutput writes text to path, or to stdout when path is empty.
// File writes are confirmed with a printed output line.
func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// readSource reads an lvc source file.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
