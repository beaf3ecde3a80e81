package conllu

import (
	"fmt"
	"strconv"
	"strings"

	sent "github.com/revelaction/udclean/sentence"
)

// Verdict is the outcome of validating one sentence.
type Verdict struct {
	Valid  bool
	Errors []string
}

// Validate checks the token lines of one sentence against the structural
// rules of a dependency tree. Every rule is evaluated so that Errors holds
// all the problems of the sentence, not only the first one.
func Validate(lines []string) Verdict {
	if len(lines) == 0 {
		return Verdict{Errors: []string{"Empty sentence"}}
	}

	tokens, errs := Parse(lines)

	errs = append(errs, checkRoots(tokens)...)
	errs = append(errs, checkHeads(tokens)...)

	if hasCycle(tokens) {
		errs = append(errs, "Dependency cycle detected")
	}

	errs = append(errs, checkFields(tokens)...)

	return Verdict{Valid: len(errs) == 0, Errors: errs}
}

func checkRoots(tokens []sent.Token) []string {
	var roots []int
	for _, t := range tokens {
		if t.Head == 0 {
			roots = append(roots, t.Id)
		}
	}

	switch {
	case len(roots) == 0:
		return []string{"No root found (no token with head=0)"}
	case len(roots) > 1:
		return []string{fmt.Sprintf("Multiple roots found: tokens %s all have head=0", formatIds(roots))}
	}

	return nil
}

func checkHeads(tokens []sent.Token) []string {
	ids := make(map[int]struct{}, len(tokens))
	for _, t := range tokens {
		ids[t.Id] = struct{}{}
	}

	var errs []string
	for _, t := range tokens {
		if t.Head == 0 {
			continue
		}
		if _, ok := ids[t.Head]; !ok {
			errs = append(errs, fmt.Sprintf("Token %d has invalid head %d", t.Id, t.Head))
		}
	}

	return errs
}

const (
	unvisited = iota
	onPath
	done
)

// hasCycle walks the head chain of every token until it reaches 0 or a head
// that is not a token of the sentence. Chains already known to terminate are
// not walked again.
func hasCycle(tokens []sent.Token) bool {
	heads := make(map[int]int, len(tokens))
	for _, t := range tokens {
		heads[t.Id] = t.Head
	}

	state := make(map[int]int, len(heads))
	var path []int

	for _, t := range tokens {
		path = path[:0]
		current := t.Id

		for current != 0 {
			head, ok := heads[current]
			if !ok || state[current] == done {
				break
			}
			if state[current] == onPath {
				return true
			}

			state[current] = onPath
			path = append(path, current)
			current = head
		}

		for _, id := range path {
			state[id] = done
		}
	}

	return false
}

func checkFields(tokens []sent.Token) []string {
	var errs []string
	for _, t := range tokens {
		if isMissing(t.Form) {
			errs = append(errs, fmt.Sprintf("Token %d: Empty or missing form", t.Id))
		}
		if isMissing(t.Upos) {
			errs = append(errs, fmt.Sprintf("Token %d: Empty or missing UPOS", t.Id))
		}
		if isMissing(t.Deprel) {
			errs = append(errs, fmt.Sprintf("Token %d: Empty or missing deprel", t.Id))
		}
	}

	return errs
}

func isMissing(field string) bool {
	return field == "" || field == Placeholder
}

// formatIds renders ids as "[1, 2]".
func formatIds(ids []int) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
