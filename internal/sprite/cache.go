package sprite

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileCache stores fetched sprite images on disk, keyed by species id.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(speciesID uint) string {
	return filepath.Join(f.rootDir, fmt.Sprintf("%d.png", speciesID))
}

func (cache *FileCache) cache(speciesID uint, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(speciesID)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(speciesID)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, fmt.Errorf("fetch sprite > %w", err)
	}

	file, err := os.Create(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(speciesID uint) ([]byte, error) {
	file, err := os.Open(cache.filePath(speciesID))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
