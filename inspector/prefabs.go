package inspector

import (
	"fmt"
	"os"
)

// ListPrefabs returns the names of the regular files in dir, sorted, for
// use as State.Prefabs. A missing or unreadable directory yields an empty
// list and the wrapped error.
func ListPrefabs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}, fmt.Errorf("listing prefabs in %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
