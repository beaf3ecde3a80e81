package conllu

import (
	"errors"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) *Scanner {
	t.Helper()
	return NewScanner(strings.NewReader(input))
}

func TestScanner(t *testing.T) {
	input := "# sent_id = a-1\n# text = Dog barks\n1\tDog\n2\tbarks\n\n\n" +
		"# text = no id\n1\tHi\n\n" +
		"# sent_id\n1\tYo\n"

	s := scanAll(t, input)

	var ids []string
	var blocks int
	for s.Scan() {
		b := s.Block()
		ids = append(ids, b.Id)
		blocks++

		if b.Index != blocks {
			t.Errorf("block index = %d, want %d", b.Index, blocks)
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := []string{"a-1", "2", "3"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("ids = %v, want %v", ids, want)
	}

	if s.BytesRead() != int64(len(input)) {
		t.Errorf("BytesRead = %d, want %d", s.BytesRead(), len(input))
	}
}

func TestScannerKeepsLinesVerbatim(t *testing.T) {
	s := scanAll(t, "# c1\n1\ta \t_ \n2\tb\n\n")

	if !s.Scan() {
		t.Fatal("expected one block")
	}
	b := s.Block()
	if len(b.Comments) != 1 || b.Comments[0] != "# c1" {
		t.Errorf("comments = %q", b.Comments)
	}
	if len(b.Lines) != 2 || b.Lines[0] != "1\ta \t_ " {
		t.Errorf("lines = %q", b.Lines)
	}
	if b.EndLine != 4 {
		t.Errorf("EndLine = %d, want 4", b.EndLine)
	}
	if s.Scan() {
		t.Error("expected no more blocks")
	}
}

func TestScannerCommentsCarryOverEmptyBlocks(t *testing.T) {
	s := scanAll(t, "# first\n\n# sent_id = x\n1\ta\n")

	if !s.Scan() {
		t.Fatal("expected one block")
	}
	b := s.Block()
	if len(b.Comments) != 2 {
		t.Errorf("expected both comments, got %q", b.Comments)
	}
	if b.Id != "x" {
		t.Errorf("id = %q, want x", b.Id)
	}
}

func TestScannerEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "# only a comment\n"} {
		s := scanAll(t, input)
		if s.Scan() {
			t.Errorf("input %q: expected no block", input)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScannerReadError(t *testing.T) {
	s := NewScanner(failingReader{})
	if s.Scan() {
		t.Fatal("expected Scan to fail")
	}
	if s.Err() == nil {
		t.Fatal("expected an error")
	}
}
