// Package stream implements the packetized framing, CRC integrity, and
// reassembly protocol used to carry a payload too large for a single QR
// symbol across a sequence of frames.
package stream

import (
	"encoding/binary"
	"errors"
)

const (
	headerSize = 9
	magicQS    = "QS"
)

// Packet flag bits, a bit set over FIRST/LAST/RETRANSMIT/ACK.
const (
	FlagFirst      byte = 0x01
	FlagLast       byte = 0x02
	FlagRetransmit byte = 0x04
	FlagAck        byte = 0x08
)

// ErrInvalidMagic means the leading two bytes of a frame don't read "QS".
var ErrInvalidMagic = errors.New("stream: invalid magic")

// ErrFrameTooShort means a frame is shorter than the 9-byte header.
var ErrFrameTooShort = errors.New("stream: frame shorter than header")

// Packet is one framed unit: a sequence number, the total packet count for
// its stream, a flag set, and an opaque payload protected by a CRC-16.
type Packet struct {
	Seq     uint16
	Total   uint16
	Flags   byte
	Payload []byte
}

// Encode serializes p as magic|seq|total|flags|crc16|payload, all
// multi-byte integers big-endian, crc16 computed over payload only.
func Encode(p Packet) []byte {
	out := make([]byte, headerSize+len(p.Payload))
	copy(out[0:2], magicQS)
	binary.BigEndian.PutUint16(out[2:4], p.Seq)
	binary.BigEndian.PutUint16(out[4:6], p.Total)
	out[6] = p.Flags
	binary.BigEndian.PutUint16(out[7:9], CRC16(p.Payload))
	copy(out[headerSize:], p.Payload)
	return out
}

// Decode parses a frame into a Packet and reports whether its CRC matches
// its payload. It only fails (err != nil) on structural problems: a short
// frame or a bad magic; a CRC mismatch is reported via crcOK, not err, so
// callers can still inspect Seq for a corrupted packet.
func Decode(data []byte) (p Packet, crcOK bool, err error) {
	if len(data) < headerSize {
		return Packet{}, false, ErrFrameTooShort
	}
	if string(data[0:2]) != magicQS {
		return Packet{}, false, ErrInvalidMagic
	}
	payload := data[headerSize:]
	p = Packet{
		Seq:     binary.BigEndian.Uint16(data[2:4]),
		Total:   binary.BigEndian.Uint16(data[4:6]),
		Flags:   data[6],
		Payload: append([]byte(nil), payload...),
	}
	storedCRC := binary.BigEndian.Uint16(data[7:9])
	return p, CRC16(payload) == storedCRC, nil
}
