// Package conllu parses and structurally validates CoNLL-U sentences.
package conllu

import (
	"fmt"
	"strconv"
	"strings"

	sent "github.com/revelaction/udclean/sentence"
)

const (
	// NumFields is the number of tab separated columns of a token line.
	NumFields = 10

	// Placeholder marks an empty or unspecified field.
	Placeholder = "_"

	// CommentPrefix starts every comment line.
	CommentPrefix = "#"
)

// IsStructural reports whether id denotes a regular token. Multiword spans
// ("3-4") and empty nodes ("3.1") do not take part in the dependency tree.
func IsStructural(id string) bool {
	return !strings.ContainsAny(id, "-.")
}

// Parse turns the token lines of one sentence into its structural tokens.
// Lines that cannot be parsed produce a diagnostic and are left out; parsing
// always continues with the next line.
func Parse(lines []string) ([]sent.Token, []string) {
	var tokens []sent.Token
	var diags []string

	for i, line := range lines {
		lineNum := i + 1

		fields := strings.Split(line, "\t")
		if len(fields) != NumFields {
			diags = append(diags, fmt.Sprintf("Line %d: Expected %d fields, got %d", lineNum, NumFields, len(fields)))
			continue
		}

		if !IsStructural(fields[0]) {
			continue
		}

		id, idErr := strconv.Atoi(fields[0])
		head, headErr := strconv.Atoi(fields[6])
		if idErr != nil || headErr != nil {
			diags = append(diags, fmt.Sprintf("Line %d: Invalid token ID or head: %s, %s", lineNum, fields[0], fields[6]))
			continue
		}

		tokens = append(tokens, sent.Token{
			Id:     id,
			Form:   fields[1],
			Lemma:  fields[2],
			Upos:   fields[3],
			Xpos:   fields[4],
			Feats:  fields[5],
			Head:   head,
			Deprel: fields[7],
			Deps:   fields[8],
			Misc:   fields[9],
			Line:   lineNum,
		})
	}

	return tokens, diags
}
