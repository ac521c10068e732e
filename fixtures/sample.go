/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

import "fmt"

// Tag is a short text value rendered by the serializer as a native string.
// It is kept as a distinct type so sample records exercise named string
// fields separately from plain strings.
type Tag string

// FloatArr is a growable float array field, the serializer-native
// counterpart to the fixed-size arrays below.
type FloatArr []float32

// NoteFragments is the number of concatenated fragments in Sample.Note.
const NoteFragments = 21

// arraySeed is the pinned counter value used for the fixed-size array
// section of a Sample. The array fields are filled from a local counter
// that always starts here, independent of the running counter.
const arraySeed = 29

// Sample is one fully populated sub-record. Every field value is derived
// from a single incrementing counter, filled in declared order.
type Sample struct {
	// Scalars
	Num   int32  `json:"num"`
	Num16 int16  `json:"num16"`
	NumU  uint64 `json:"numU"`

	// Single-level containers
	Ints   []int32           `json:"ints"`
	Ratios map[int32]float64 `json:"ratios"`
	Note   string            `json:"note"`

	// Nested containers
	IntsNested [][]int32           `json:"intsNested"`
	RatiosSeq  []map[int32]float64 `json:"ratiosSeq"`

	// Serializer-native types
	Label  Tag      `json:"label"`
	Floats FloatArr `json:"floats"`

	// Fixed-size 1-D arrays
	ArrInt    [3]int32    `json:"arrInt"`
	ArrInts   [3][]int32  `json:"arrInts"`
	ArrLabel  [3]Tag      `json:"arrLabel"`
	ArrFloats [3]FloatArr `json:"arrFloats"`

	// Fixed-size 2-D arrays
	Arr2Int    [2][3]int32    `json:"arr2Int"`
	Arr2Ints   [2][3][]int32  `json:"arr2Ints"`
	Arr2Label  [2][3]Tag      `json:"arr2Label"`
	Arr2Floats [2][3]FloatArr `json:"arr2Floats"`
}

// NewSample populates a Sample from the given counter and returns it
// together with the counter value to seed the next sample.
//
// Each field takes the current counter value, then the counter advances
// by one. The fixed-size array section at the end does not consume the
// running counter: it is filled from a local counter pinned at 29, and
// the returned value reflects only the fields before it.
func NewSample(counter int) (Sample, int) {
	var s Sample
	c := &counter

	s.Num = int32(tick(c))
	s.Num16 = int16(tick(c))
	s.NumU = uint64(tick(c))

	s.Ints = []int32{int32(tick(c)), int32(tick(c)), int32(tick(c))}

	s.Ratios = make(map[int32]float64, 2)
	for i := 0; i < 2; i++ {
		k := int32(tick(c))
		s.Ratios[k] = float64(tick(c))
	}

	s.Note = noteFragment(tick(c))
	for i := 0; i < NoteFragments-1; i++ {
		s.Note += noteFragment(tick(c))
	}

	s.IntsNested = [][]int32{
		{int32(tick(c)), int32(tick(c)), int32(tick(c))},
		{int32(tick(c)), int32(tick(c))},
	}

	s.RatiosSeq = make([]map[int32]float64, 0, 4)
	for i := 0; i < 4; i++ {
		m := make(map[int32]float64, 3)
		for j := 0; j < 3; j++ {
			k := int32(tick(c))
			m[k] = float64(tick(c))
		}
		s.RatiosSeq = append(s.RatiosSeq, m)
	}

	s.Label = labelFor(tick(c))
	s.Floats = FloatArr{float32(tick(c)), float32(tick(c)), float32(tick(c))}

	s.fillArrays()

	return s, counter
}

// fillArrays populates the fixed-size array section from its own pinned
// counter. The 2-D slots are filled column by column, interleaved with
// the 1-D slots at the same outer index.
func (s *Sample) fillArrays() {
	local := arraySeed
	c := &local

	for i := 0; i < 3; i++ {
		s.ArrInt[i] = int32(tick(c))
		s.ArrInts[i] = []int32{int32(tick(c)), int32(tick(c)), int32(tick(c))}
		s.ArrLabel[i] = labelFor(tick(c))
		s.ArrFloats[i] = FloatArr{float32(tick(c)), float32(tick(c)), float32(tick(c))}

		for j := 0; j < 2; j++ {
			s.Arr2Int[j][i] = int32(tick(c))
			s.Arr2Ints[j][i] = []int32{int32(tick(c)), int32(tick(c)), int32(tick(c))}
			s.Arr2Label[j][i] = labelFor(tick(c))
			s.Arr2Floats[j][i] = FloatArr{float32(tick(c)), float32(tick(c)), float32(tick(c))}
		}
	}
}

// tick returns the current counter value and advances it by one.
func tick(c *int) int {
	v := *c
	*c++
	return v
}

func noteFragment(n int) string {
	return fmt.Sprintf("I'm string %d!", n)
}

func labelFor(n int) Tag {
	return Tag(fmt.Sprintf("I'm label %d", n))
}
