package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/edusense/internal/store"
)

// WriteJSON encodes ds with two-space indentation.
func WriteJSON(w io.Writer, ds *Dataset) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeJSONFile(ds *Dataset, path string) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteJSON(file, ds); err != nil {
		return err
	}
	return file.Close()
}
