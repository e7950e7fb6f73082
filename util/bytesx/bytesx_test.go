package bytesx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zzzzer91/bytekit/util/errorx"
)

func TestCopy(t *testing.T) {
	dst := make([]byte, 3)
	assert.Equal(t, 3, Copy(dst, []byte("abcdef")))
	assert.Equal(t, "abc", string(dst))
	assert.Equal(t, 2, Copy(dst, []byte("xy")))
	assert.Equal(t, "xyc", string(dst))
	assert.Equal(t, 0, Copy(nil, []byte("x")))
}

func TestPrefixSuffix(t *testing.T) {
	tests := []struct {
		name   string
		b      string
		affix  string
		prefix bool
		suffix bool
	}{
		{name: "empty affix", b: "abc", affix: "", prefix: true, suffix: true},
		{name: "prefix only", b: "abc", affix: "ab", prefix: true},
		{name: "suffix only", b: "abc", affix: "bc", suffix: true},
		{name: "whole", b: "abc", affix: "abc", prefix: true, suffix: true},
		{name: "longer than input", b: "ab", affix: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prefix, HasPrefix([]byte(tt.b), []byte(tt.affix)))
			assert.Equal(t, tt.suffix, HasSuffix([]byte(tt.b), []byte(tt.affix)))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, []byte{}))
	assert.True(t, Equal([]byte("ab"), []byte("ab")))
	assert.False(t, Equal([]byte("ab"), []byte("abc")))
	assert.False(t, Equal([]byte("ab"), []byte("ac")))
}

func TestIndexByte(t *testing.T) {
	assert.Equal(t, 2, IndexByte([]byte{0x10, 0xff, 0xab}, 0xab))
	assert.Equal(t, -1, IndexByte([]byte{0x10}, 0xab))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, []byte{}, Join(nil, []byte(",")))

	one := []byte("solo")
	got := Join([][]byte{one}, []byte(","))
	assert.Equal(t, "solo", string(got))
	got[0] = 'S'
	assert.Equal(t, "solo", string(one))

	assert.Equal(t, "a, b, c", string(Join([][]byte{[]byte("a"), []byte("b"), []byte("c")}, []byte(", "))))
	assert.Equal(t, "ab", string(Join([][]byte{[]byte("a"), []byte("b")}, nil)))
}

func TestRepeat(t *testing.T) {
	got, err := Repeat([]byte("ab"), 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", string(got))

	got, err = Repeat([]byte("ab"), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Repeat([]byte("ab"), -1)
	assert.ErrorIs(t, err, errorx.ErrInvalidArgument)

	assert.PanicsWithValue(t, errorx.ErrOverflow, func() {
		_, _ = Repeat([]byte("ab"), math.MaxInt/2+1)
	})
}

func TestRepeatProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOfN(rapid.Byte(), 1, 16).Draw(t, "b")
		k := rapid.IntRange(0, 64).Draw(t, "k")
		got, err := Repeat(b, k)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(b)*k {
			t.Fatalf("len %d, want %d", len(got), len(b)*k)
		}
		for i := 0; i < k; i++ {
			if !Equal(got[i*len(b):(i+1)*len(b)], b) {
				t.Fatalf("window %d differs", i)
			}
		}
	})
}

func TestTrim(t *testing.T) {
	b := []byte("prefix-body-suffix")

	body := TrimPrefix(b, []byte("prefix-"))
	assert.Equal(t, "body-suffix", string(body))
	body[0] = 'B'
	assert.Equal(t, byte('B'), b[7])

	assert.Equal(t, "prefix-Body", string(TrimSuffix(b, []byte("-suffix"))))
	assert.Equal(t, string(b), string(TrimPrefix(b, []byte("nope"))))
	assert.Equal(t, string(b), string(TrimSuffix(b, []byte("nope"))))
}
