package eddsa

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/iden3/go-iden3-crypto/constants"
	"golang.org/x/crypto/blake2b"
)

const poseidonSeed = "poseidon"

var ErrPoseidonInput = errors.New("invalid poseidon input")

// PoseidonParams selects one Poseidon instance: state width T and the number
// of full and partial rounds. Round constants and the MDS matrix are derived
// from the "poseidon" seed with blake2b, so every parameter set is a distinct
// hash function.
type PoseidonParams struct {
	T             int
	FullRounds    int
	PartialRounds int
}

// ChallengeParams is the instance hashing EdDSA challenges (R, A, msg).
var ChallengeParams = PoseidonParams{T: 6, FullRounds: 6, PartialRounds: 52}

type poseidonInstance struct {
	constants []*big.Int
	matrix    [][]*big.Int
}

// PoseidonParams -> *poseidonInstance
var poseidonCache sync.Map

func (p PoseidonParams) validate() error {
	if p.T < 2 || p.FullRounds <= 0 || p.FullRounds%2 != 0 || p.PartialRounds < 0 {
		return fmt.Errorf("%w: bad parameters %+v", ErrPoseidonInput, p)
	}
	return nil
}

func (p PoseidonParams) instance() *poseidonInstance {
	if v, ok := poseidonCache.Load(p); ok {
		return v.(*poseidonInstance)
	}

	c := pseudoRandom(poseidonSeed+"_matrix_0000", 2*p.T)
	matrix := make([][]*big.Int, p.T)
	for i := range matrix {
		matrix[i] = make([]*big.Int, p.T)
		for j := range matrix[i] {
			d := new(big.Int).Sub(c[i], c[p.T+j])
			d.Mod(d, constants.Q)
			matrix[i][j] = new(big.Int).ModInverse(d, constants.Q)
		}
	}

	inst := &poseidonInstance{
		constants: pseudoRandom(poseidonSeed+"_constants", p.FullRounds+p.PartialRounds),
		matrix:    matrix,
	}
	v, _ := poseidonCache.LoadOrStore(p, inst)
	return v.(*poseidonInstance)
}

// pseudoRandom chains blake2b-256 from seed, reading each digest little-endian.
func pseudoRandom(seed string, n int) []*big.Int {
	out := make([]*big.Int, 0, n)
	h := blake2b.Sum256([]byte(seed))
	for len(out) < n {
		v := new(big.Int).SetBytes(reverse(h[:]))
		out = append(out, v.Mod(v, constants.Q))
		h = blake2b.Sum256(h[:])
	}
	return out
}

// HashPoseidon hashes between 1 and T-1 field elements with instance p.
func HashPoseidon(p PoseidonParams, inputs ...*big.Int) (*big.Int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 || len(inputs) >= p.T {
		return nil, fmt.Errorf("%w: %d inputs for width %d", ErrPoseidonInput, len(inputs), p.T)
	}

	state := make([]*big.Int, p.T)
	for i := range state {
		state[i] = new(big.Int)
		if i >= len(inputs) {
			continue
		}
		in := inputs[i]
		if in == nil || in.Sign() < 0 || in.Cmp(constants.Q) >= 0 {
			return nil, fmt.Errorf("%w: input %d is not a field element", ErrPoseidonInput, i)
		}
		state[i].Set(in)
	}

	inst := p.instance()
	half := p.FullRounds / 2
	for r, c := range inst.constants {
		for _, s := range state {
			s.Add(s, c).Mod(s, constants.Q)
		}
		if r < half || r >= half+p.PartialRounds {
			for _, s := range state {
				sbox(s)
			}
		} else {
			sbox(state[0])
		}
		state = mix(state, inst.matrix)
	}
	return state[0], nil
}

var five = big.NewInt(5)

func sbox(x *big.Int) {
	x.Exp(x, five, constants.Q)
}

func mix(state []*big.Int, matrix [][]*big.Int) []*big.Int {
	out := make([]*big.Int, len(state))
	tmp := new(big.Int)
	for i, row := range matrix {
		acc := new(big.Int)
		for j, m := range row {
			acc.Add(acc, tmp.Mul(m, state[j]))
		}
		out[i] = acc.Mod(acc, constants.Q)
	}
	return out
}
