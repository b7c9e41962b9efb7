package encoder

// crcPoly is the reversed CRC-32 polynomial used by PNG (ISO 3309, ITU-T V.42).
const crcPoly = 0xEDB88320

// crcTable caches the per-byte result of the bitwise algorithm below.
// Built once at init and only read afterwards.
var crcTable [256]uint32

func init() {
	for n := range crcTable {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPoly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crcTable[n] = c
	}
}

// UpdateCRC32 continues a running checksum over data. Start with 0 and
// feed successive slices to checksum their concatenation.
func UpdateCRC32(crc uint32, data []byte) uint32 {
	c := ^crc
	for _, b := range data {
		c = crcTable[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}

// CRC32 returns the PNG chunk checksum of data.
// The empty input yields 0.
func CRC32(data []byte) uint32 {
	return UpdateCRC32(0, data)
}
