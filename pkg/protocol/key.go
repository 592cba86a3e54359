package protocol

import "hash/crc32"

// ContentKey returns the CRC-32 (IEEE polynomial) of the name's bytes.
// It is the wire identifier used in place of component, property, and
// type names so that property commands never carry variable-length
// strings. The same name always yields the same key on every peer that
// shares the standard CRC-32 table.
func ContentKey(name string) uint32 {
	return crc32.ChecksumIEEE([]byte(name))
}
