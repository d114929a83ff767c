package engine

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

var (
	internalSeed = CreateRandomStateSeed()
	internalRng  = CreateRNG(&internalSeed)
)

// CreateRandomStateSeed makes a PCG seeded from the OS entropy source,
// suitable as the seed of a real (non-reproduced) battle.
func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	if _, err := cryptoRand.Read(randBytes[:]); err != nil {
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}
