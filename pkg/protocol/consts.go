package protocol

const (
	// Local transport endpoint of the hilog daemon
	SocketFileDir   string = "/dev/unix/socket/"
	InputSocketName string = "hilogInput"
	SocketPath      string = SocketFileDir + InputSocketName

	// Maximum length of a log message body, including '\0'
	MaxLogLen int = 4096
	// Maximum length of a tag, including '\0'
	MaxTagLen int = 32

	// Wire-format revision understood by this encoder (may change with future hilog releases)
	Version uint16 = 0

	terminatorByte byte = 0x00

	// Meta bitfield widths, least significant first
	versionBits uint = 3
	typeBits    uint = 4
	levelBits   uint = 3
	tagLenBits  uint = 6

	// Meta bitfield offsets
	versionOffset uint = 0
	typeOffset    uint = versionOffset + versionBits
	levelOffset   uint = typeOffset + typeBits
	tagLenOffset  uint = levelOffset + levelBits
	metaBits      uint = tagLenOffset + tagLenBits

	versionMask uint16 = 1<<versionBits - 1
	typeMask    uint16 = 1<<typeBits - 1
	levelMask   uint16 = 1<<levelBits - 1
	tagLenMask  uint16 = 1<<tagLenBits - 1

	// Protocol wire field lengths (fixed header)
	lenLen     int = 2
	lenMeta    int = 2
	lenTvSec   int = 4
	lenTvNsec  int = 4
	lenMonoSec int = 4
	lenPid     int = 4
	lenTid     int = 4
	lenDomain  int = 4

	// Header field offsets
	offLen     int = 0
	offMeta    int = offLen + lenLen
	offTvSec   int = offMeta + lenMeta
	offTvNsec  int = offTvSec + lenTvSec
	offMonoSec int = offTvNsec + lenTvNsec
	offPid     int = offMonoSec + lenMonoSec
	offTid     int = offPid + lenPid
	offDomain  int = offTid + lenTid

	// Calculated
	HeaderLen int = offDomain + lenDomain
	// Smallest valid record: header, empty tag terminator, empty message terminator
	MinRecordLen int = HeaderLen + 1 + 1
	// Largest valid record: header, full tag, full message
	MaxRecordLen int = HeaderLen + MaxTagLen + MaxLogLen
)
