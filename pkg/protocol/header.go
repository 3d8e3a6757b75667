package protocol

import (
	"encoding/binary"
	"fmt"
)

// Serializes the header into its fixed wire image.
// Fields are written in declaration order, little-endian (the native order of
// every platform the hilog daemon runs on), with no padding.
func (header Header) Bytes() (buf [HeaderLen]byte) {
	binary.LittleEndian.PutUint16(buf[offLen:], header.Len)
	binary.LittleEndian.PutUint16(buf[offMeta:], uint16(header.Meta))
	binary.LittleEndian.PutUint32(buf[offTvSec:], header.TvSec)
	binary.LittleEndian.PutUint32(buf[offTvNsec:], header.TvNsec)
	binary.LittleEndian.PutUint32(buf[offMonoSec:], header.MonoSec)
	binary.LittleEndian.PutUint32(buf[offPid:], header.Pid)
	binary.LittleEndian.PutUint32(buf[offTid:], header.Tid)
	binary.LittleEndian.PutUint32(buf[offDomain:], header.Domain)
	return
}

// Appends the wire image to dst (encoding.BinaryAppender)
func (header Header) AppendBinary(dst []byte) (out []byte, err error) {
	wire := header.Bytes()
	out = append(dst, wire[:]...)
	return
}

// encoding.BinaryMarshaler
func (header Header) MarshalBinary() (data []byte, err error) {
	data, err = header.AppendBinary(make([]byte, 0, HeaderLen))
	return
}

// encoding.BinaryUnmarshaler
func (header *Header) UnmarshalBinary(data []byte) (err error) {
	*header, err = DecodeHeader(data)
	return
}

// Deserializes the first HeaderLen bytes of buf.
// Trailing bytes (tag, message) are ignored.
func DecodeHeader(buf []byte) (header Header, err error) {
	if len(buf) < HeaderLen {
		err = fmt.Errorf("%w: got %d bytes, need %d", ErrShortHeader, len(buf), HeaderLen)
		return
	}

	header = Header{
		Len:     binary.LittleEndian.Uint16(buf[offLen:]),
		Meta:    MetaField(binary.LittleEndian.Uint16(buf[offMeta:])),
		TvSec:   binary.LittleEndian.Uint32(buf[offTvSec:]),
		TvNsec:  binary.LittleEndian.Uint32(buf[offTvNsec:]),
		MonoSec: binary.LittleEndian.Uint32(buf[offMonoSec:]),
		Pid:     binary.LittleEndian.Uint32(buf[offPid:]),
		Tid:     binary.LittleEndian.Uint32(buf[offTid:]),
		Domain:  binary.LittleEndian.Uint32(buf[offDomain:]),
	}

	if header.Meta.Version() != Version {
		err = fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Meta.Version())
		header = Header{}
		return
	}
	return
}
