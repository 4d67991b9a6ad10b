package utils

import (
	"math/rand"
	"strconv"
)

// RandomSeed は 10〜99 の範囲のシードを文字列で返します。
// Pollinations はシードを文字列のクエリ値として受け取るため、ここで整形します。
func RandomSeed() string {
	return strconv.Itoa(10 + rand.Intn(90))
}
