package stream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNack means a packet lacking the RETRANSMIT flag was passed to
// ParseNack.
var ErrNotNack = errors.New("stream: packet is not a nack")

// CreateNack builds a RETRANSMIT packet (seq=0, total=0) whose payload is
// an ASCII comma-joined list of missing sequence numbers.
func CreateNack(missing []uint16) Packet {
	parts := make([]string, len(missing))
	for i, seq := range missing {
		parts[i] = strconv.Itoa(int(seq))
	}
	return Packet{Flags: FlagRetransmit, Payload: []byte(strings.Join(parts, ","))}
}

// ParseNack extracts the missing-sequence list from a NACK packet.
func ParseNack(p Packet) ([]uint16, error) {
	if p.Flags&FlagRetransmit == 0 {
		return nil, ErrNotNack
	}
	if len(p.Payload) == 0 {
		return nil, nil
	}
	parts := strings.Split(string(p.Payload), ",")
	out := make([]uint16, 0, len(parts))
	for _, s := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("stream: invalid nack sequence %q: %w", s, err)
		}
		out = append(out, uint16(v))
	}
	return out, nil
}
