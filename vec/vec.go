package vec

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Num is the type of every value manipulated by the search.
type Num = int32

// A Vector holds one value per test case.
type Vector []Num

// A Key is the hashable encoding of a Vector.
// Two vectors have the same Key iff they are equal.
type Key string

// Constant returns a vector of length d whose values are all n.
func Constant(n Num, d int) Vector {
	v := make(Vector, d)
	for i := range v {
		v[i] = n
	}
	return v
}

// Key returns the key associated with v.
func (v Vector) Key() Key {
	buf := make([]byte, 4*len(v))
	for i, n := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(n))
	}
	return Key(buf)
}

// Vector decodes the vector encoded in k.
func (k Key) Vector() Vector {
	v := make(Vector, len(k)/4)
	for i := range v {
		v[i] = Num(binary.LittleEndian.Uint32([]byte(k[4*i : 4*i+4])))
	}
	return v
}

// Equal is true iff v and w hold the same values.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// In is true iff every value of v lies in [lo, hi].
func (v Vector) In(lo, hi Num) bool {
	for _, n := range v {
		if n < lo || n > hi {
			return false
		}
	}
	return true
}

// Map returns a new vector where f was applied to each value of v.
func (v Vector) Map(f func(Num) Num) Vector {
	res := make(Vector, len(v))
	for i, n := range v {
		res[i] = f(n)
	}
	return res
}

func (v Vector) String() string {
	strs := make([]string, len(v))
	for i, n := range v {
		strs[i] = strconv.Itoa(int(n))
	}
	return "(" + strings.Join(strs, ", ") + ")"
}
