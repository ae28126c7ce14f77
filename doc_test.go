package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceKeysAreNotPrefixes(t *testing.T) {
	keys := TraceKeys()
	for _, k1 := range keys {
		for _, k2 := range keys {
			if k1 != k2 {
				assert.False(t, strings.HasPrefix(k2, k1+"."), "%q is a prefix of %q", k1, k2)
			}
		}
	}
}
