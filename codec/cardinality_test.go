package codec_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/sat"
)

func TestAtMost_Exhaustive(t *testing.T) {
	lits := []int{1, -2, 3, 4}
	for bound := 0; bound <= len(lits)+1; bound++ {
		cs, maxID := codec.AtMost(lits, bound, 5)
		require.GreaterOrEqual(t, maxID, 5)
		for _, c := range cs {
			for _, l := range c {
				v := l
				if v < 0 {
					v = -v
				}
				require.True(t, v <= 4 || (v >= 5 && v <= maxID), "bound=%d literal %d outside [5,%d]", bound, l, maxID)
			}
		}

		for mask := 0; mask < 1<<4; mask++ {
			s := sat.NewGini()
			require.NoError(t, sat.AddAll(s, cs))
			for v := 1; v <= 4; v++ {
				if mask&(1<<(v-1)) != 0 {
					require.NoError(t, s.AddClause(v))
				} else {
					require.NoError(t, s.AddClause(-v))
				}
			}
			// lits[1] is negated: it holds when variable 2 is false.
			trueLits := bits.OnesCount(uint(mask ^ 0b0010))
			require.Equal(t, trueLits <= bound, s.Solve(), "bound=%d mask=%04b", bound, mask)
		}
	}
}

func TestAtMost_Gophersat(t *testing.T) {
	// Eight literals, at most two true: forcing three must fail.
	lits := []int{1, 2, 3, 4, 5, 6, 7, 8}
	cs, _ := codec.AtMost(lits, 2, 9)

	s, err := sat.New(sat.Gophersat)
	require.NoError(t, err)
	require.NoError(t, sat.AddAll(s, cs))
	require.NoError(t, sat.AddAll(s, [][]int{{1}, {5}}))
	require.True(t, s.Solve())
	m, err := s.Model()
	require.NoError(t, err)
	require.Equal(t, 2, codec.CountTrue(m, lits))

	require.NoError(t, s.AddClause(8))
	require.False(t, s.Solve())
}

func TestCountTrue(t *testing.T) {
	m := []int{1, -2, 3}
	require.Equal(t, 3, codec.CountTrue(m, []int{1, -2, 3}))
	require.Equal(t, 0, codec.CountTrue(m, []int{-1, 2, -3}))
	require.Equal(t, 0, codec.CountTrue(m, []int{9}))
}
