// blockhash.go -- the keyed block hash H(seed_hash, index)
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// blockKeyLo/blockKeyHi are fixed 128-bit constants. The low 8 bytes of
// blockKeyLo fill the second half of the block-hash key (the first half is
// seedHash), and both serve as the SipHash keys of the seed digest
// (digestHalves). They are part of the wire contract: any conforming
// implementation of this format must use these exact keys, the same way the
// CHD format pins its header magic and layout.
var (
	blockKeyLo = [16]byte{0x73, 0x65, 0x71, 0x72, 0x61, 0x6e, 0x64, 0x2d, 0x62, 0x6c, 0x6b, 0x2d, 0x6c, 0x6f, 0x00, 0x01}
	blockKeyHi = [16]byte{0x73, 0x65, 0x71, 0x72, 0x61, 0x6e, 0x64, 0x2d, 0x62, 0x6c, 0x6b, 0x2d, 0x68, 0x69, 0x00, 0x02}
)

// blockHash computes H(seedHash, index): one 64-bit block, deterministic and
// pure in its two inputs. It avalanches on index because SipHash-2-4 is a
// keyed PRF over its message and we feed index as the message with seedHash
// folded into the key.
func blockHash(seedHash, index uint64) uint64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[0:8], seedHash)
	binary.LittleEndian.PutUint64(key[8:16], blockKeyLo64())

	var msg [8]byte
	binary.LittleEndian.PutUint64(msg[:], index)

	return siphash.Hash(
		binary.LittleEndian.Uint64(key[0:8]),
		binary.LittleEndian.Uint64(key[8:16]),
		msg[:],
	)
}

func blockKeyLo64() uint64 {
	return binary.LittleEndian.Uint64(blockKeyLo[0:8])
}

// cascadeBlockHash computes one block inside a cascade at the given depth
// and sub-index, without ever touching the outer index that blockHash above
// would otherwise advance. depth starts at 1 for the outermost cascade and
// increases with nesting; subIndex is private to that cascade level.
func cascadeBlockHash(seedHash, outerIndex uint64, depth uint32, subIndex uint64) uint64 {
	k0 := seedHash ^ (uint64(depth) * 0x9e3779b97f4a7c15)
	k1 := outerIndex ^ blockKeyLo64() ^ (uint64(depth) << 32)

	var msg [8]byte
	binary.LittleEndian.PutUint64(msg[:], subIndex)

	return siphash.Hash(k0, k1, msg[:])
}

// digestHalves folds canonical seed bytes (already mixed once with fasthash
// by the caller, see seed.go) into the two 64-bit halves of the 128-bit seed
// digest. The low half becomes seedHash.
func digestHalves(mixed uint64, canonical []byte) (hi, lo uint64) {
	var msg [8]byte
	binary.LittleEndian.PutUint64(msg[:], mixed)

	k0 := binary.LittleEndian.Uint64(blockKeyHi[0:8])
	k1 := binary.LittleEndian.Uint64(blockKeyHi[8:16])
	hi = siphash.Hash(k0, k1, append(msg[:], canonical...))

	k0 = binary.LittleEndian.Uint64(blockKeyLo[0:8])
	k1 = binary.LittleEndian.Uint64(blockKeyLo[8:16])
	lo = siphash.Hash(k0, k1, append(msg[:], canonical...))

	return hi, lo
}
