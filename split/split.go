// Package split shuffles a sentence corpus and partitions it into train and
// dev sets.
package split

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/revelaction/udclean/conllu"
)

const (
	DefaultSeed  = 1337
	DefaultRatio = 0.9
)

var ErrRatio = errors.New("split: ratio must be in (0, 1]")

// Split shuffles blocks with a generator seeded by seed and returns the first
// int(n*ratio) blocks as train and the rest as dev. The same seed always
// produces the same partition. blocks is not modified.
func Split(blocks []string, ratio float64, seed int64) (train, dev []string, err error) {
	if ratio <= 0 || ratio > 1 {
		return nil, nil, ErrRatio
	}

	shuffled := make([]string, len(blocks))
	copy(shuffled, blocks)

	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	point := int(float64(len(shuffled)) * ratio)
	return shuffled[:point], shuffled[point:], nil
}

// Filter keeps the blocks whose sentences pass structural validation and
// returns the number of dropped blocks.
func Filter(blocks []string) ([]string, int) {
	var kept []string
	dropped := 0

	for _, b := range blocks {
		if isValid(b) {
			kept = append(kept, b)
		} else {
			dropped++
		}
	}

	return kept, dropped
}

func isValid(block string) bool {
	sc := conllu.NewScanner(strings.NewReader(block))

	n := 0
	for sc.Scan() {
		n++
		if !conllu.Validate(sc.Block().Lines).Valid {
			return false
		}
	}

	return n > 0 && sc.Err() == nil
}
