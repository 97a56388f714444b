package variant

import (
	"math"
	"reflect"
	"strconv"

	"github.com/bearlytools/variant/typelist"
)

// Discriminator identifies the alternative a Union holds. 0 (NoAlternative) means the
// Union is empty, n means it holds a value of the nth alternative of its Set.
type Discriminator uint8

// NoAlternative is the Discriminator of an empty Union.
const NoAlternative Discriminator = 0

// MaxAlternatives is the largest number of alternatives a Set may have.
const MaxAlternatives = math.MaxUint8

func (d Discriminator) String() string {
	if d == NoAlternative {
		return "NoAlternative"
	}
	return "Alternative(" + strconv.Itoa(int(d)) + ")"
}

// indexOf returns the Discriminator of the first t in l.
func indexOf(l typelist.List, t reflect.Type) (Discriminator, bool) {
	pos, ok := l.IndexOf(t)
	if !ok {
		return NoAlternative, false
	}
	return Discriminator(pos + 1), true
}
