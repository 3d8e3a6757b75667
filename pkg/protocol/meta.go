package protocol

// Packs the log type, level and tag length with the current wire Version.
// Type and level are trusted caller input; tagLen is bounded by its constructor.
func NewMetaField(logType LogType, level LogLevel, tagLen TagLen) (field MetaField) {
	field = PackMeta(Version, uint16(logType), uint16(level), tagLen.Value())
	return
}

// Places each sub-field into its bit range.
// Values are masked to their widths so a field can never spill into its neighbour.
func PackMeta(version, logType, level, tagLen uint16) (field MetaField) {
	field = MetaField((version&versionMask)<<versionOffset |
		(logType&typeMask)<<typeOffset |
		(level&levelMask)<<levelOffset |
		(tagLen&tagLenMask)<<tagLenOffset)
	return
}

// Reverses PackMeta
func (field MetaField) Unpack() (version, logType, level, tagLen uint16) {
	raw := uint16(field)
	version = raw >> versionOffset & versionMask
	logType = raw >> typeOffset & typeMask
	level = raw >> levelOffset & levelMask
	tagLen = raw >> tagLenOffset & tagLenMask
	return
}

func (field MetaField) Version() uint16 {
	return uint16(field) >> versionOffset & versionMask
}

func (field MetaField) Type() LogType {
	return LogType(uint16(field) >> typeOffset & typeMask)
}

func (field MetaField) Level() LogLevel {
	return LogLevel(uint16(field) >> levelOffset & levelMask)
}

// Tag length in bytes, including '\0'
func (field MetaField) TagLen() int {
	return int(uint16(field) >> tagLenOffset & tagLenMask)
}

func (field MetaField) Uint16() uint16 {
	return uint16(field)
}
