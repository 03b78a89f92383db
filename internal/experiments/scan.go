// Package experiments discovers selectable experiment names by scanning a
// Borealis experiments directory.
package experiments

import (
	"os"
	"sort"
	"strings"
)

// excluded lists python modules in the experiments directory that are not
// runnable experiments.
var excluded = map[string]bool{
	"__init__":                true,
	"superdarn_common_fields": true,
	"experiment_prototype":    true,
	"experiment_unittests":    true,
	"testing_archive":         true,
}

// Scan lists the experiment module names in dir: every *.py file minus the
// known non-experiment modules, sorted by name. The returned list feeds the
// experiment picker and membership validation.
func Scan(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(de.Name(), ".py")
		if !ok || excluded[name] {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
