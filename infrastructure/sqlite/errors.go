package sqlite

import "strings"

// IsForeignKeyViolation reports whether err is a sqlite foreign key failure,
// i.e. a referenced row is in use or a reference points nowhere.
func IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether err is a sqlite unique constraint failure.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
