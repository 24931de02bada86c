package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	require.Equal(t, xxhash.Sum64([]byte("udoc")), Sum([]byte("udoc")))
	require.Equal(t, xxhash.Sum64(nil), Sum(nil))
	require.NotEqual(t, Sum([]byte("a")), Sum([]byte("b")))
}
