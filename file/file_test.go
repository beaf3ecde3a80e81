package file

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{
		filepath.Join(dir, "top.conllu"),
		filepath.Join(sub, "deep.conllu"),
		filepath.Join(sub, "notes.txt"),
	} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{filepath.Join(sub, "deep.conllu"), filepath.Join(dir, "top.conllu")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Find() = %v, want %v", paths, want)
	}

	single, err := Find(filepath.Join(sub, "notes.txt"))
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(single) != 1 {
		t.Errorf("expected the file itself, got %v", single)
	}

	if _, err := Find(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestReadWriteBlocks(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.conllu")
	content := "\n# sent_id = 1\n1\ta\n\n# sent_id = 2\n1\tb\n\n\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	blocks, err := ReadBlocks(in)
	if err != nil {
		t.Fatalf("ReadBlocks() error = %v", err)
	}
	want := []string{"# sent_id = 1\n1\ta", "# sent_id = 2\n1\tb"}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("ReadBlocks() = %q, want %q", blocks, want)
	}

	out := filepath.Join(dir, "out.conllu")
	if err := WriteBlocks(out, blocks); err != nil {
		t.Fatalf("WriteBlocks() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# sent_id = 1\n1\ta\n\n# sent_id = 2\n1\tb\n\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestReadBlocksEmpty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.conllu")
	if err := os.WriteFile(p, []byte("\n \n"), 0644); err != nil {
		t.Fatal(err)
	}

	blocks, err := ReadBlocks(p)
	if err != nil {
		t.Fatalf("ReadBlocks() error = %v", err)
	}
	if blocks != nil {
		t.Errorf("expected no blocks, got %q", blocks)
	}
}
