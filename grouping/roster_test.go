package grouping_test

import (
	"testing"

	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestRosterAdd(t *testing.T) {
	roster := grouping.NewRoster()

	assert.NilError(t, roster.Add("  Alice "))
	assert.NilError(t, roster.Add("Bob"))
	assert.NilError(t, roster.Add("Alice"))

	assert.DeepEqual(t, roster.People(), []string{"Alice", "Bob", "Alice"})
}

func TestRosterAddBlank(t *testing.T) {
	roster := grouping.NewRoster("Alice")

	err := roster.Add("   \t")
	assert.Equal(t, errors.Is(err, grouping.ErrBlankName), true)
	assert.Equal(t, roster.Len(), 1)
}

func TestRosterRemove(t *testing.T) {
	roster := grouping.NewRoster("A", "B", "C")

	assert.NilError(t, roster.Remove(1))
	assert.DeepEqual(t, roster.People(), []string{"A", "C"})

	assert.NilError(t, roster.Remove(1))
	assert.DeepEqual(t, roster.People(), []string{"A"})
}

func TestRosterRemoveOutOfRange(t *testing.T) {
	roster := grouping.NewRoster("A", "B")

	for _, index := range []int{-1, 2, 10} {
		err := roster.Remove(index)
		assert.Equal(t, errors.Is(err, grouping.ErrIndexOutOfRange), true)
	}

	assert.DeepEqual(t, roster.People(), []string{"A", "B"})
}

func TestRosterPeopleIsCopy(t *testing.T) {
	roster := grouping.NewRoster("A", "B")

	people := roster.People()
	people[0] = "Z"

	assert.DeepEqual(t, roster.People(), []string{"A", "B"})
}

func TestRosterReset(t *testing.T) {
	roster := grouping.NewRoster("A", "B")
	roster.Reset()

	assert.Equal(t, roster.Len(), 0)
	assert.Equal(t, len(roster.People()), 0)
}

func TestNormalizeNames(t *testing.T) {
	assert.DeepEqual(t, grouping.NormalizeNames([]string{" a", "", "  ", "b "}), []string{"a", "b"})
}

func TestInitials(t *testing.T) {
	assert.Equal(t, grouping.Initials("Ada Lovelace"), "AL")
	assert.Equal(t, grouping.Initials("  grace   hopper "), "gh")
	assert.Equal(t, grouping.Initials("Ada  Lovelace"), "AL")
	assert.Equal(t, grouping.Initials("Émile"), "É")
	assert.Equal(t, grouping.Initials(""), "")
}
