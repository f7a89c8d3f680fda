// internal/intake/appid/appid.go
package appid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

const suffixLength = 5

// Generator produces application identifiers of the form
// <prefix>-<base36 millisecond timestamp>-<5 random base36 chars>, upper-cased.
// Uniqueness is probabilistic; collisions are not detected.
type Generator struct {
	prefix string
	now    func() time.Time
}

func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix: prefix,
		now:    time.Now,
	}
}

// NewGeneratorWithClock allows tests to pin the timestamp component.
func NewGeneratorWithClock(prefix string, now func() time.Time) *Generator {
	return &Generator{prefix: prefix, now: now}
}

func (g *Generator) Generate() string {
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)

	var sb strings.Builder
	for i := 0; i < suffixLength; i++ {
		sb.WriteByte(base36Chars[rand.IntN(len(base36Chars))])
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", g.prefix, ts, sb.String()))
}
