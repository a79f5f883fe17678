// Package gen emits the hlist conversion files for analyzed records.
//
// Generation uses text/template + go/format for readable, deterministic
// Go code. Each record gets one file in its own package containing:
//   - a <Type>HList alias spelling out the field-sequence list type
//   - FromHList, the positional fill from a list (pointer receiver)
//   - ToHList, the copying conversion (pointer receiver)
//   - IntoHList, the consuming conversion (value receiver)
package gen
