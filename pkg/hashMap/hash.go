package hashMap

import "fmt"

// HashFunc maps a key to a signed 32-bit code. Sums wrap on overflow, so
// long keys may produce negative codes.
type HashFunc func(key string) int32

const (
	CharSumName 		= "sum"
	WeightedCharSumName = "weighted"
)

// CharSum adds up the character codes of key.
func CharSum(key string) int32 {
	var r int32
	for _, c := range key {
		r += c
	}
	return r
}

// WeightedCharSum adds up every character code multiplied by its position + 1.
func WeightedCharSum(key string) int32 {
	var r, pos int32
	for _, c := range key {
		pos++
		r += pos * c
	}
	return r
}

func HashFuncByName(name string) (HashFunc, error) {
	switch name {
	case "", CharSumName:
		return CharSum, nil
	case WeightedCharSumName:
		return WeightedCharSum, nil
	default:
		return nil, fmt.Errorf("unknown hash function: %q", name)
	}
}
