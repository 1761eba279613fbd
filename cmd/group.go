package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0glabs/lunch-buddies/common/util"
	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	groupArgs struct {
		file string
		size int
		seed uint64
		json bool
	}

	groupCmd = &cobra.Command{
		Use:   "group [names...]",
		Short: "Shuffle names into groups and print them",
		RunE:  runGroup,
	}
)

func init() {
	groupCmd.Flags().StringVar(&groupArgs.file, "file", "", "File to read names from, one per line, - for stdin")
	groupCmd.Flags().IntVar(&groupArgs.size, "size", session.DefaultGroupSize, "Target group size")
	groupCmd.Flags().Uint64Var(&groupArgs.seed, "seed", 0, "Shuffle seed for reproducible groups, random if 0")
	groupCmd.Flags().BoolVar(&groupArgs.json, "json", false, "Print groups as JSON")

	rootCmd.AddCommand(groupCmd)
}

func runGroup(cmd *cobra.Command, args []string) error {
	names := args

	if len(groupArgs.file) > 0 {
		fromFile, err := readNamesFrom(groupArgs.file, cmd.InOrStdin())
		if err != nil {
			return err
		}

		names = append(names, fromFile...)
	}

	roster := grouping.NewRoster(names...)

	if roster.Len() == 0 {
		return errors.New("No names specified")
	}

	if groupArgs.size < 1 {
		return errors.Errorf("Invalid group size %v", groupArgs.size)
	}

	groups := grouping.Partition(roster.People(), groupArgs.size, grouping.Option{
		Rand: util.NewRand(groupArgs.seed),
	})

	logrus.WithFields(logrus.Fields{
		"people": roster.Len(),
		"size":   groupArgs.size,
		"groups": groups.Count(),
	}).Debug("Groups created")

	if groupArgs.json {
		return writeJSON(cmd.OutOrStdout(), groups)
	}

	writeTable(cmd.OutOrStdout(), groups)

	return nil
}

func readNamesFrom(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readNames(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "Failed to open names file %v", path)
	}
	defer file.Close()

	return readNames(file)
}

// readNames reads one name per line, skipping blank lines.
func readNames(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name, ok := grouping.NormalizeName(scanner.Text()); ok {
			names = append(names, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.WithMessage(err, "Failed to read names")
	}

	return names, nil
}

func writeJSON(w io.Writer, groups grouping.Grouping) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(groups)
}

func writeTable(w io.Writer, groups grouping.Grouping) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "Size", "Members"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, group := range groups {
		table.Append([]string{
			fmt.Sprintf("Group %v", i+1),
			fmt.Sprint(len(group)),
			strings.Join(group, ", "),
		})
	}

	table.Render()
}
