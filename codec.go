package num

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
)

// Borsh and Bin both lay out 128-bit integers as 16 bytes, low word first,
// each word little-endian. I128 and U128 implement bin.BinaryMarshaler and
// bin.BinaryUnmarshaler so they can be used as fields of structs encoded with
// bin.MarshalBorsh, bin.MarshalBin and friends.

var (
	_ bin.EncoderDecoder = (*I128)(nil)
	_ bin.EncoderDecoder = (*U128)(nil)
)

// AsBinInt128 converts i to the github.com/gagliardetto/binary
// representation, tagged as little-endian.
func (i I128) AsBinInt128() bin.Int128 {
	return bin.Int128{Lo: i.lo, Hi: i.hi, Endianness: binary.LittleEndian}
}

// I128FromBinInt128 is the counterpart to AsBinInt128. The Endianness tag is
// ignored; Lo and Hi are already decoded words.
func I128FromBinInt128(v bin.Int128) I128 {
	return I128{hi: v.Hi, lo: v.Lo}
}

func (i I128) MarshalWithEncoder(enc *bin.Encoder) error {
	return enc.WriteInt128(i.AsBinInt128(), binary.LittleEndian)
}

func (i *I128) UnmarshalWithDecoder(dec *bin.Decoder) error {
	v, err := dec.ReadInt128(binary.LittleEndian)
	if err != nil {
		return err
	}
	*i = I128FromBinInt128(v)
	return nil
}

// AsBinUint128 converts u to the github.com/gagliardetto/binary
// representation, tagged as little-endian.
func (u U128) AsBinUint128() bin.Uint128 {
	return bin.Uint128{Lo: u.lo, Hi: u.hi, Endianness: binary.LittleEndian}
}

func U128FromBinUint128(v bin.Uint128) U128 {
	return U128{hi: v.Hi, lo: v.Lo}
}

func (u U128) MarshalWithEncoder(enc *bin.Encoder) error {
	return enc.WriteUint128(u.AsBinUint128(), binary.LittleEndian)
}

func (u *U128) UnmarshalWithDecoder(dec *bin.Decoder) error {
	v, err := dec.ReadUint128(binary.LittleEndian)
	if err != nil {
		return err
	}
	*u = U128FromBinUint128(v)
	return nil
}
