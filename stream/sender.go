package stream

import (
	"log/slog"
	"time"
)

// Sender partitions a payload into fixed-size packets and hands them out
// either on demand (Next) or on a fps-driven schedule (Start/Stop).
type Sender struct {
	packets    []Packet
	index      int
	retransmit []uint16
	fps        float64
	stopCh     chan struct{}
}

// NewSender splits payload into ceil(len(payload)/chunkSize) packets; the
// first carries FlagFirst, the last carries FlagLast. chunkSize <= 0 falls
// back to 1800. An empty payload produces no packets at all.
func NewSender(payload []byte, chunkSize int) *Sender {
	if chunkSize <= 0 {
		chunkSize = 1800
	}
	total := (len(payload) + chunkSize - 1) / chunkSize
	packets := make([]Packet, total)
	for i := 0; i < total; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > len(payload) {
			end = len(payload)
		}
		var flags byte
		if i == 0 {
			flags |= FlagFirst
		}
		if i == total-1 {
			flags |= FlagLast
		}
		packets[i] = Packet{Seq: uint16(i), Total: uint16(total), Flags: flags, Payload: payload[start:end]}
	}
	return &Sender{packets: packets, fps: 4}
}

// SetFPS overrides the schedule rate used by Start. Must be called before
// Start; has no effect on Next-driven use.
func (s *Sender) SetFPS(fps float64) {
	if fps > 0 {
		s.fps = fps
	}
}

// Next pops from the retransmit queue first, then returns the packet at
// the monotonic send index; returns ok=false once both are exhausted.
func (s *Sender) Next() (Packet, bool) {
	for len(s.retransmit) > 0 {
		seq := s.retransmit[0]
		s.retransmit = s.retransmit[1:]
		if p, ok := s.packetBySeq(seq); ok {
			return p, true
		}
	}
	if s.index >= len(s.packets) {
		return Packet{}, false
	}
	p := s.packets[s.index]
	s.index++
	return p, true
}

func (s *Sender) packetBySeq(seq uint16) (Packet, bool) {
	for _, p := range s.packets {
		if p.Seq == seq {
			return p, true
		}
	}
	return Packet{}, false
}

// RequestRetransmit appends seqs to the FIFO retransmit queue; duplicates
// are allowed and simply resend the packet again.
func (s *Sender) RequestRetransmit(seqs []uint16) {
	s.retransmit = append(s.retransmit, seqs...)
}

// Reset rewinds the send index to 0 and clears the retransmit queue.
func (s *Sender) Reset() {
	s.index = 0
	s.retransmit = nil
}

// Start schedules periodic emission at 1/fps second intervals, invoking
// sink for each packet and onComplete once when both the monotonic index
// and the retransmit queue are exhausted. Runs on its own goroutine; call
// Stop to cancel scheduled (not in-flight) emissions.
func (s *Sender) Start(sink func(Packet), onComplete func()) {
	interval := time.Duration(float64(time.Second) / s.fps)
	stop := make(chan struct{})
	s.stopCh = stop
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p, ok := s.Next()
				if !ok {
					slog.Debug("stream sender exhausted")
					if onComplete != nil {
						onComplete()
					}
					return
				}
				sink(p)
			}
		}
	}()
}

// Stop prevents further scheduled emissions. In-flight sink calls are not
// interrupted.
func (s *Sender) Stop() {
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}
