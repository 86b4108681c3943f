/*
Package vec gives access to the elementwise integer arithmetic the search engine relies on.

A Vector is the evaluation of one expression across every test case of a search:
position i holds the value of the expression for the i-th set of inputs.
All values are 32-bit signed integers with two's complement wraparound.

Operators are provided by a Kernel. Total operators (addition, bitwise operators,
comparisons...) always produce a Vector. Partial operators (division, modulo, shifts
and exponentiation) report whether they are defined on every position:

    k := vec.New(vec.Options{Floor: true})
    div, mod, ok := k.DivMod(vec.Vector{-21}, vec.Vector{4})
    // div = (-6), mod = (3), ok = true

If an error value is configured, partial operators become total: invalid positions
hold the error value, and the error value then absorbs any further operation:

    e := vec.Num(-159236)
    k := vec.New(vec.Options{ErrorValue: &e})
    q, _, ok := k.DivMod(vec.Vector{1, 2}, vec.Vector{0, 1})
    // q = (-159236, 2), ok = true

Vectors are slices and cannot be used as map keys; their Key is.
*/
package vec
