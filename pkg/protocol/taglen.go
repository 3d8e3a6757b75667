package protocol

import "fmt"

// Validates a tag length (including '\0') against MaxTagLen.
// Returns an error wrapping ErrInvalidTagLen instead of clamping.
func NewTagLen(length int) (tagLen TagLen, err error) {
	if length < 0 || length > MaxTagLen {
		err = fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidTagLen, length, MaxTagLen)
		return
	}
	tagLen = TagLen{value: uint16(length)}
	return
}

// Validated length
func (tagLen TagLen) Value() uint16 {
	return tagLen.value
}
