package grouping

import (
	"github.com/0glabs/lunch-buddies/common/util"
	"golang.org/x/exp/rand"
)

// Group is one ordered subset of the roster.
type Group []string

// Grouping is the ordered collection of groups produced by one partition.
type Grouping []Group

// Count returns the number of groups.
func (g Grouping) Count() int {
	return len(g)
}

// Sizes returns the member count of each group in group order.
func (g Grouping) Sizes() []int {
	sizes := make([]int, len(g))
	for i, group := range g {
		sizes[i] = len(group)
	}

	return sizes
}

// Members returns the total number of names across all groups.
func (g Grouping) Members() int {
	var total int
	for _, group := range g {
		total += len(group)
	}

	return total
}

type Option struct {
	Rand *rand.Rand // shuffle source, time seeded if nil
}

// NumGroups returns ceil(people / groupSize), or 0 if nothing can be grouped.
func NumGroups(people, groupSize int) int {
	if people <= 0 || groupSize < 1 {
		return 0
	}

	numGroups := people / groupSize
	if people%groupSize != 0 {
		numGroups++
	}

	return numGroups
}

// Partition shuffles a copy of `roster` and deals it round robin into
// ceil(len(roster) / groupSize) groups, so group sizes differ by at most one.
//
// An empty roster or a `groupSize` below 1 yields an empty grouping.
func Partition(roster []string, groupSize int, option ...Option) Grouping {
	numGroups := NumGroups(len(roster), groupSize)
	if numGroups == 0 {
		return Grouping{}
	}

	var opt Option
	if len(option) > 0 {
		opt = option[0]
	}

	rng := opt.Rand
	if rng == nil {
		rng = util.NewRand(0)
	}

	shuffled := make([]string, len(roster))
	copy(shuffled, roster)
	util.ShuffleWith(rng, shuffled)

	groups := make(Grouping, numGroups)
	for i, person := range shuffled {
		groups[i%numGroups] = append(groups[i%numGroups], person)
	}

	return groups
}
