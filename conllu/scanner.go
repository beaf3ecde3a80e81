package conllu

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/udclean/sentence"
)

const sentIdPrefix = "# sent_id"

// Scanner reads a CoNLL-U stream and splits it into sentence blocks.
//
// Comment lines are buffered with the sentence that follows them, token
// lines are kept verbatim and a blank line closes the sentence. A blank line
// with no pending token lines is ignored. A stream that does not end with a
// blank line still yields its last sentence.
type Scanner struct {
	r *bufio.Reader

	lineNum   int
	bytesRead int64
	count     int

	block sent.Block
	err   error
	eof   bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next sentence, which is then available through Block.
// It returns false at the end of the stream or on a read error.
func (s *Scanner) Scan() bool {
	if s.eof || s.err != nil {
		return false
	}

	var comments, lines []string
	id := ""

	for {
		line, err := s.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}

		if len(line) > 0 {
			s.lineNum++
			s.bytesRead += int64(len(line))
			line = strings.TrimSuffix(line, "\n")

			switch {
			case strings.HasPrefix(line, CommentPrefix):
				comments = append(comments, line)
				if strings.HasPrefix(line, sentIdPrefix) {
					id = s.sentId(line)
				}

			case strings.TrimSpace(line) == "":
				if len(lines) > 0 {
					s.emit(comments, lines, id)
					return true
				}

			default:
				lines = append(lines, line)
			}
		}

		if err != nil {
			s.eof = true
			if len(lines) > 0 {
				s.emit(comments, lines, id)
				return true
			}
			return false
		}
	}
}

// sentId extracts the identifier of a `# sent_id = ...` comment. A comment
// without "=" gets the position the sentence will have in the stream.
func (s *Scanner) sentId(line string) string {
	_, value, ok := strings.Cut(line, "=")
	if !ok {
		return strconv.Itoa(s.count + 1)
	}
	return strings.TrimSpace(value)
}

func (s *Scanner) emit(comments, lines []string, id string) {
	s.count++
	if id == "" {
		id = strconv.Itoa(s.count)
	}

	s.block = sent.Block{
		Index:    s.count,
		Id:       id,
		Comments: comments,
		Lines:    lines,
		EndLine:  s.lineNum,
	}
}

// Block returns the sentence read by the last call to Scan.
func (s *Scanner) Block() sent.Block {
	return s.block
}

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// BytesRead returns the number of bytes consumed so far.
func (s *Scanner) BytesRead() int64 {
	return s.bytesRead
}
