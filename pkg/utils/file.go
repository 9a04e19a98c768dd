package utils

import "os"

// WriteFile writes content to a file
func WriteFile(path string, data []byte) error {
	// Reports are readable by the owner only
	return os.WriteFile(path, data, 0600)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
