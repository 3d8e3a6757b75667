package protocol

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Builds the header for this record.
// Fails when the tag (plus terminator) does not fit MaxTagLen.
// Message bodies longer than MaxLogLen-1 bytes are truncated by Encode, not here.
func (record Record) Header() (header Header, err error) {
	tagLen, err := NewTagLen(len(record.Tag) + 1)
	if err != nil {
		err = fmt.Errorf("invalid tag %q: %w", record.Tag, err)
		return
	}

	msgLen := len(truncateMessage(record.Message)) + 1

	header = Header{
		Len:     uint16(HeaderLen + int(tagLen.Value()) + msgLen),
		Meta:    NewMetaField(record.Type, record.Level, tagLen),
		TvSec:   record.TvSec,
		TvNsec:  record.TvNsec,
		MonoSec: record.MonoSec,
		Pid:     record.Pid,
		Tid:     record.Tid,
		Domain:  record.Domain,
	}
	return
}

// Serializes record into a single datagram: header | tag '\0' | message '\0'
func (record Record) Encode() (datagram []byte, err error) {
	header, err := record.Header()
	if err != nil {
		return
	}

	msg := truncateMessage(record.Message)

	datagram = make([]byte, 0, header.Len)
	datagram, err = header.AppendBinary(datagram)
	if err != nil {
		return
	}
	datagram = append(datagram, record.Tag...)
	datagram = append(datagram, terminatorByte)
	datagram = append(datagram, msg...)
	datagram = append(datagram, terminatorByte)
	return
}

// Deserializes a full datagram produced by Encode (or the hilog C client)
func DecodeRecord(datagram []byte) (record Record, err error) {
	header, err := DecodeHeader(datagram)
	if err != nil {
		return
	}

	if int(header.Len) != len(datagram) {
		err = fmt.Errorf("%w: header says %d, received %d", ErrLengthMismatch, header.Len, len(datagram))
		return
	}

	tagLen := header.Meta.TagLen()
	if tagLen > MaxTagLen {
		err = fmt.Errorf("%w: %d", ErrInvalidTagLen, tagLen)
		return
	}
	if HeaderLen+tagLen+1 > len(datagram) {
		err = fmt.Errorf("%w: tag length %d leaves no room for message", ErrShortRecord, tagLen)
		return
	}

	var tag string
	if tagLen > 0 {
		rawTag := datagram[HeaderLen : HeaderLen+tagLen]
		if rawTag[tagLen-1] != terminatorByte {
			err = fmt.Errorf("%w: tag", ErrMissingTerminator)
			return
		}
		tag = string(rawTag[:tagLen-1])
	}

	body := datagram[HeaderLen+tagLen:]
	if body[len(body)-1] != terminatorByte {
		err = fmt.Errorf("%w: message", ErrMissingTerminator)
		return
	}
	body = body[:len(body)-1]

	// Writers may pad past the first terminator; the message ends there
	if idx := bytes.IndexByte(body, terminatorByte); idx >= 0 {
		body = body[:idx]
	}

	record = Record{
		Type:    header.Meta.Type(),
		Level:   header.Meta.Level(),
		Tag:     tag,
		Message: string(body),
		TvSec:   header.TvSec,
		TvNsec:  header.TvNsec,
		MonoSec: header.MonoSec,
		Pid:     header.Pid,
		Tid:     header.Tid,
		Domain:  header.Domain,
	}
	return
}

// Cuts messages longer than MaxLogLen-1 bytes, backing off to a UTF-8 rune start.
// Never backs off more than one rune, so non-text bodies lose at most 3 extra bytes.
func truncateMessage(msg string) (truncated string) {
	truncated = msg
	if len(msg) <= MaxLogLen-1 {
		return
	}

	cut := MaxLogLen - 1
	for back := 0; back < utf8.UTFMax-1 && !utf8.RuneStart(msg[cut]); back++ {
		cut--
	}
	truncated = msg[:cut]
	return
}
