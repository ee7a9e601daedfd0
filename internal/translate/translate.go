// Package translate pre-translates non-English input before parsing.
package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"

	appLog "recurrent/internal/log"
)

// ErrClosed is returned by a Translator used after Close.
var ErrClosed = errors.New("translator closed")

// Translator turns text into English. Implementations may hold remote
// connections, so callers must Close them.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
	Close() error
}

// IsRussian reports whether text contains Cyrillic letters.
func IsRussian(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

type phrase struct {
	from, to string
}

// Dictionary is a phrase substitution table. Longer phrases are replaced
// first so that "каждый день" wins over "день".
type Dictionary struct {
	mu      sync.RWMutex
	phrases []phrase
	closed  bool
}

// NewDictionary builds a Dictionary from source phrase to English phrase.
func NewDictionary(entries map[string]string) *Dictionary {
	d := &Dictionary{}
	for from, to := range entries {
		from = strings.ToLower(strings.TrimSpace(from))
		if from == "" {
			continue
		}
		d.phrases = append(d.phrases, phrase{from: from, to: strings.TrimSpace(to)})
	}
	sort.Slice(d.phrases, func(i, j int) bool {
		a, b := d.phrases[i].from, d.phrases[j].from
		if len([]rune(a)) != len([]rune(b)) {
			return len([]rune(a)) > len([]rune(b))
		}
		return a < b
	})
	return d
}

// LoadDictionary reads a YAML mapping of phrases.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return nil, errors.New("dictionary path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	appLog.Debug("dictionary loaded", "path", path, "phrases", len(entries))
	return NewDictionary(entries), nil
}

// Translate replaces every known phrase on whole-word boundaries. Unknown
// words are kept.
func (d *Dictionary) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return "", ErrClosed
	}
	words := strings.Fields(strings.ToLower(text))
	var out []string
	for i := 0; i < len(words); {
		n, to := d.lookup(words[i:])
		if n == 0 {
			out = append(out, words[i])
			i++
			continue
		}
		if to != "" {
			out = append(out, to)
		}
		i += n
	}
	return strings.Join(out, " "), nil
}

// lookup finds the longest phrase starting at words[0] and returns how many
// words it spans.
func (d *Dictionary) lookup(words []string) (int, string) {
	for _, p := range d.phrases {
		pw := strings.Fields(p.from)
		if len(pw) > len(words) {
			continue
		}
		match := true
		for i, w := range pw {
			if strings.Trim(words[i], ",.") != w {
				match = false
				break
			}
		}
		if match {
			return len(pw), p.to
		}
	}
	return 0, ""
}

func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
