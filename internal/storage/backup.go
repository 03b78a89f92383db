package storage

import "os"

// BackupSuffix is appended to the schedule path to form the backup path.
// The backup is overwritten on every save; there is no rotation.
const BackupSuffix = ".bak"

// BackupPath returns the sibling backup path for a schedule file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the schedule file to its backup path. A missing
// schedule file is not an error; there is nothing to back up. Any other
// failure is returned so the caller can abort before a destructive write.
func CreateBackup(path string) error {
	source, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer func() { _ = source.Close() }()

	dest, err := os.Create(BackupPath(path))
	if err != nil {
		return err
	}

	if _, err := dest.ReadFrom(source); err != nil {
		_ = dest.Close()
		return err
	}
	return dest.Close()
}
