package batch

import (
	"errors"
	"fmt"
	"strings"
)

// Dialog titles and fixed texts shown to the user.
const (
	ErrorTitle     = "Error!"
	ResultTitle    = "Conversion executed!"
	SuccessMessage = "All files were successfully converted"

	Version  = "Version 0.1 - 2021-10-11"
	Contacts = "For support and inquiries, please visit https://gg8.eu/ or send an email to mail@provider.com"
)

var errorMessages = map[string]string{
	"001": "Please select one or more files to be converted.",
	"002": "Selected files are not in line with the conversion mode.",
	"003": "Please select a destination folder.",
}

// ErrorMessage returns the numbered message for a validation error.
// ok is false when err carries no known error code.
func ErrorMessage(err error) (msg string, ok bool) {
	var coded interface{ Code() string }
	if !errors.As(err, &coded) {
		return "", false
	}
	text, found := errorMessages[coded.Code()]
	if !found {
		return "", false
	}
	return fmt.Sprintf("Error code: %s\n%s", coded.Code(), text), true
}

// FailureMessage lists the files that could not be converted.
func FailureMessage(paths []string) string {
	return "The following files were not converted due to formatting errors:\n" +
		strings.Join(paths, "\n") +
		"\n\nPlease check the conversion parameters."
}

// CancelledMessage reports how far a cancelled run got.
func CancelledMessage(done, total int) string {
	return fmt.Sprintf("Conversion cancelled after %d of %d files.", done, total)
}

// Info is the text of the about box.
func Info() string {
	return Version + "\n\n" + Contacts
}
