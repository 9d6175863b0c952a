package main

import "github.com/pmed/yas/errors"

// Exit codes by error kind. Errors without a kind exit with exitFailure.
const (
	exitFailure    = 1
	exitUsage      = 2
	exitNotArchive = 3
	exitTruncated  = 4
	exitNoHeader   = 5
)

func exitCode(err error) int {
	switch errors.KindOf(err) {
	case errors.KindInvalidInput:
		return exitUsage
	case errors.KindBadArchiveInformation, errors.KindInvalidHexDigit:
		return exitNotArchive
	case errors.KindEmptyArchive:
		return exitTruncated
	case errors.KindNoHeader:
		return exitNoHeader
	}
	return exitFailure
}
