package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWordContextBuildsBothIndexes(t *testing.T) {
	ctx, err := LoadWordContext(testDictPath)
	require.NoError(t, err)
	require.NotNil(t, ctx.Terms)
	require.NotNil(t, ctx.Anagrams)

	_, ok := ctx.TryGet("cat")
	require.True(t, ok, "expected TryGet to resolve a known word")

	_, ok = ctx.TryGet("zzzzz")
	require.False(t, ok, "TryGet should report false for an absent word")
}

func TestLoadWordContextMissingFileFails(t *testing.T) {
	_, err := LoadWordContext("../testdata/does-not-exist.tsv")
	require.Error(t, err)
}

func TestGetContextCachesAcrossCalls(t *testing.T) {
	first, err := GetContext(testDictPath)
	require.NoError(t, err)
	second, err := GetContext(testDictPath)
	require.NoError(t, err)
	require.Same(t, first, second, "GetContext should return the same cached instance on every call")
}
