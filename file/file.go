package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	Ext = ".conllu"

	// BlockSeparator separates two sentences in a CoNLL-U file.
	BlockSeparator = "\n\n"
)

// Find returns the CoNLL-U files under root, in lexical order. If root is a
// regular file it is returned as is, whatever its extension.
func Find(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(d.Name()) == Ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// ReadBlocks reads a CoNLL-U file and returns its sentences as raw text
// blocks, without the separating blank lines.
func ReadBlocks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}

	return strings.Split(content, BlockSeparator), nil
}

// WriteBlocks writes blocks to path, each one followed by a blank line.
func WriteBlocks(path string, blocks []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(strings.TrimSpace(block))
		b.WriteString(BlockSeparator)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
