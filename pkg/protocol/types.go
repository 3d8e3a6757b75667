package protocol

// Log category code (APP, INIT, CORE, KMSG...). Values are platform defined and trusted to fit 4 bits.
type LogType uint8

// Log severity code. Values are platform defined and trusted to fit 3 bits.
type LogLevel uint8

// Validated tag length (including '\0'), bounded by MaxTagLen
type TagLen struct {
	value uint16
}

// Packed 16-bit field equivalent to the C bitfield:
//
//	uint16_t version : 3;
//	uint16_t type    : 4; /* APP,CORE,INIT,SEC etc */
//	uint16_t level   : 3;
//	uint16_t tagLen  : 6; /* include '\0' */
type MetaField uint16

// Fixed record header (HilogMsg).
// Encoded as HeaderLen bytes with no padding, fields in declaration order.
type Header struct {
	Len     uint16 // total record length including header
	Meta    MetaField
	TvSec   uint32 // realtime seconds
	TvNsec  uint32 // realtime nanosecond remainder
	MonoSec uint32 // monotonic seconds
	Pid     uint32
	Tid     uint32
	Domain  uint32
}

// Complete datagram contents: header fields plus tag and message body.
// Tag and Message are NUL terminated on the wire, so an embedded NUL ends the
// decoded text there. Messages over MaxLogLen-1 bytes are truncated on a rune boundary.
type Record struct {
	Type    LogType
	Level   LogLevel
	Tag     string
	Message string
	TvSec   uint32
	TvNsec  uint32
	MonoSec uint32
	Pid     uint32
	Tid     uint32
	Domain  uint32
}
