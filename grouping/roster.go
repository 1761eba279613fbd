package grouping

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// NormalizeName trims `name` and reports whether anything is left.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	return name, len(name) > 0
}

// NormalizeNames trims every name and drops blank ones.
func NormalizeNames(names []string) []string {
	return lo.FilterMap(names, func(name string, _ int) (string, bool) {
		return NormalizeName(name)
	})
}

// Initials returns the first letter of every word in `name`, e.g. "Ada Lovelace" -> "AL".
// Runs of whitespace count as a single separator, so "Ada  Lovelace" is "AL" too.
func Initials(name string) string {
	words := strings.Fields(name)

	return strings.Join(lo.Map(words, func(word string, _ int) string {
		r, _ := utf8.DecodeRuneInString(word)
		return string(r)
	}), "")
}

// Roster is the insertion ordered list of entered names. Duplicates are
// allowed and distinguished by position.
type Roster struct {
	people []string
}

// NewRoster returns a roster holding the non-blank `names`.
func NewRoster(names ...string) *Roster {
	return &Roster{people: NormalizeNames(names)}
}

// Add appends the trimmed `name`. Blank names leave the roster unchanged.
func (r *Roster) Add(name string) error {
	name, ok := NormalizeName(name)
	if !ok {
		return ErrBlankName
	}

	r.people = append(r.people, name)

	return nil
}

// Remove deletes the person at `index`.
func (r *Roster) Remove(index int) error {
	if index < 0 || index >= len(r.people) {
		return errors.WithMessagef(ErrIndexOutOfRange, "index = %v, len = %v", index, len(r.people))
	}

	people := make([]string, 0, len(r.people)-1)
	people = append(people, r.people[:index]...)
	r.people = append(people, r.people[index+1:]...)

	return nil
}

// People returns a copy of the roster.
func (r *Roster) People() []string {
	people := make([]string, len(r.people))
	copy(people, r.people)
	return people
}

func (r *Roster) Len() int {
	return len(r.people)
}

func (r *Roster) Reset() {
	r.people = nil
}
