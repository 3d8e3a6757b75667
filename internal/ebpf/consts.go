package ebpf

const (
	FilterProgName string = "hilog_minlen"
	FilterLicense  string = "GPL"

	// struct __sk_buff offset of 'len'
	skbLenOffset int16 = 0

	keepPacket int32 = -1 // return value keeps the full packet
	dropPacket int32 = 0
)
