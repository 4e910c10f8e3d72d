package stream

import (
	"bytes"
	"testing"
)

func TestCRC16KnownVectors(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Fatalf("CRC16(empty) = %#04x, want 0xFFFF", got)
	}
	if got := CRC16([]byte("123456789")); got != 0x29B1 {
		t.Fatalf("CRC16(\"123456789\") = %#04x, want 0x29B1", got)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	cases := []Packet{
		{Seq: 0, Total: 1, Flags: FlagFirst | FlagLast, Payload: []byte("hello")},
		{Seq: 65535, Total: 65535, Flags: 0, Payload: nil},
		{Seq: 7, Total: 20, Flags: FlagRetransmit, Payload: bytes.Repeat([]byte{0xAB}, 200)},
	}
	for _, want := range cases {
		encoded := Encode(want)
		got, crcOK, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !crcOK {
			t.Fatalf("crcOK = false for seq %d", want.Seq)
		}
		if got.Seq != want.Seq || got.Total != want.Total || got.Flags != want.Flags {
			t.Fatalf("got %+v, want %+v", got, want)
		}
		if !bytes.Equal(got.Payload, want.Payload) {
			t.Fatalf("payload mismatch: got %v, want %v", got.Payload, want.Payload)
		}
	}
}

func TestDecodeInvalidMagic(t *testing.T) {
	data := Encode(Packet{Seq: 1, Total: 1, Payload: []byte("x")})
	data[0] = 'X'
	_, _, err := Decode(data)
	if err != ErrInvalidMagic {
		t.Fatalf("err = %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeFrameTooShort(t *testing.T) {
	_, _, err := Decode([]byte{'Q', 'S', 0, 1})
	if err != ErrFrameTooShort {
		t.Fatalf("err = %v, want ErrFrameTooShort", err)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data := Encode(Packet{Seq: 1, Total: 1, Payload: []byte("hello")})
	data[len(data)-1] ^= 0xFF // corrupt one payload byte
	_, crcOK, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if crcOK {
		t.Fatalf("crcOK = true for corrupted payload")
	}
}
