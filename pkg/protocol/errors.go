package protocol

import "errors"

var (
	ErrInvalidTagLen      = errors.New("protocol: tag length exceeds maximum")
	ErrShortHeader        = errors.New("protocol: short header")
	ErrUnsupportedVersion = errors.New("protocol: unsupported header version")
	ErrShortRecord        = errors.New("protocol: truncated record")
	ErrMissingTerminator  = errors.New("protocol: missing null terminator")
	ErrLengthMismatch     = errors.New("protocol: header length does not match record size")
)
