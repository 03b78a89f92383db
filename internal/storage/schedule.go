// Package storage reads and writes schedule files. Loading is
// all-or-nothing: a single undecodable line rejects the whole file. Saving
// always copies the existing file to its backup sibling before the
// destructive rewrite.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nordlys/scdmod/internal/schedule"
)

// ScheduleExt is the schedule file extension.
const ScheduleExt = ".scd"

// Load reads the schedule file and decodes every non-empty line. Entries
// are returned most-recent-first (the file is ascending; entries are sorted
// ascending and reversed). Any decode failure aborts the load; a partial
// schedule is never accepted.
func Load(path string) ([]schedule.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var entries []schedule.Entry
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := schedule.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNumber, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	schedule.SortDescending(entries)
	return entries, nil
}

// Save rewrites the schedule file from entries. The existing file is copied
// to its backup path first; if that copy fails the save is aborted and the
// original is untouched. Entries are written in ascending order (the
// reverse of the in-memory convention), one encoded line each.
func Save(path string, entries []schedule.Entry) error {
	if err := CreateBackup(path); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}

	ascending := make([]schedule.Entry, len(entries))
	copy(ascending, entries)
	schedule.SortAscending(ascending)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	for _, e := range ascending {
		if _, err := file.WriteString(schedule.Encode(e) + "\n"); err != nil {
			return err
		}
	}

	return nil
}
