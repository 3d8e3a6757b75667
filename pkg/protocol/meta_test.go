package protocol

import "testing"

func mustTagLen(t testing.TB, length int) TagLen {
	t.Helper()
	tagLen, err := NewTagLen(length)
	if err != nil {
		t.Fatalf("NewTagLen(%d): %v", length, err)
	}
	return tagLen
}

func TestNewMetaField_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		logType  LogType
		level    LogLevel
		tagLen   int
		expected uint16
	}{
		{"Zero", 0, 0, 0, 0},
		{"Scenario", 2, 4, 10, (2 << 3) | (4 << 7) | (10 << 10)},
		{"ScenarioLiteral", 2, 4, 10, 10768},
		{"TypeFiveLevelThree", 5, 3, 10, (5 << 3) | (3 << 7) | (10 << 10)},
		{"AllMax", 15, 7, 32, (15 << 3) | (7 << 7) | (32 << 10)},
		{"OnlyType", 15, 0, 0, 0x0078},
		{"OnlyLevel", 0, 7, 0, 0x0380},
		{"OnlyTagLen", 0, 0, 32, 0x8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := NewMetaField(tt.logType, tt.level, mustTagLen(t, tt.tagLen))
			if field.Uint16() != tt.expected {
				t.Fatalf("expected 0x%04X, got 0x%04X", tt.expected, field.Uint16())
			}
		})
	}
}

func TestMetaField_BitRanges(t *testing.T) {
	tests := []struct {
		name  string
		field MetaField
		mask  uint16
	}{
		{"Version", PackMeta(0x7, 0, 0, 0), 0x0007},
		{"Type", PackMeta(0, 0xF, 0, 0), 0x0078},
		{"Level", PackMeta(0, 0, 0x7, 0), 0x0380},
		{"TagLen", PackMeta(0, 0, 0, 0x3F), 0xFC00},
	}

	var union uint16
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Uint16() != tt.mask {
				t.Fatalf("expected field to occupy 0x%04X, got 0x%04X", tt.mask, tt.field.Uint16())
			}
			if union&tt.mask != 0 {
				t.Fatalf("range 0x%04X overlaps previous ranges 0x%04X", tt.mask, union)
			}
		})
		union |= tt.mask
	}
	if union != 0xFFFF {
		t.Fatalf("bit ranges do not cover 16 bits: 0x%04X", union)
	}
}

func TestMetaField_RoundTrip(t *testing.T) {
	for logType := 0; logType < 16; logType++ {
		for level := 0; level < 8; level++ {
			for length := 0; length <= MaxTagLen; length++ {
				field := NewMetaField(LogType(logType), LogLevel(level), mustTagLen(t, length))

				version, gotType, gotLevel, gotTagLen := field.Unpack()
				if version != Version {
					t.Fatalf("version: expected %d, got %d", Version, version)
				}
				if int(gotType) != logType || int(gotLevel) != level || int(gotTagLen) != length {
					t.Fatalf("round trip (%d,%d,%d) returned (%d,%d,%d)",
						logType, level, length, gotType, gotLevel, gotTagLen)
				}
				if int(field.Type()) != logType || int(field.Level()) != level || field.TagLen() != length {
					t.Fatalf("accessors disagree with Unpack for (%d,%d,%d)", logType, level, length)
				}
			}
		}
	}
}

func TestPackMeta_MasksOversizedFields(t *testing.T) {
	// Out of range type/level must not bleed into neighbouring fields
	field := PackMeta(0, 0x1F, 0xF, 10)

	_, logType, level, tagLen := field.Unpack()
	if logType != 0xF {
		t.Errorf("type: expected 0xF, got 0x%X", logType)
	}
	if level != 0x7 {
		t.Errorf("level: expected 0x7, got 0x%X", level)
	}
	if tagLen != 10 {
		t.Errorf("tag length corrupted: expected 10, got %d", tagLen)
	}
	if field.Version() != 0 {
		t.Errorf("version corrupted: %d", field.Version())
	}
}
