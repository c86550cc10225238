package source

import "os"

// Load reads the full contents of the file at path as UTF-8 text. The
// pipeline consumes the text as-is; there is no other file format.
func Load(path string) (string, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
