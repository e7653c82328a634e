package alphabet

// WordIter enumerates every word over an alphabet: first the empty word, then
// all words of length 1, length 2, and so on. Within a length, words appear in
// lexicographic order of symbol ids.
//
// The zero value is not usable; obtain one from (*Alphabet).Words.
type WordIter struct {
	a    *Alphabet
	ids  []int // odometer over symbol ids for the current length
	init bool  // ε already produced
	done bool
}

// Words returns a fresh enumerator. The sequence is infinite unless the
// alphabet is empty, in which case only ε is produced.
func (a *Alphabet) Words() *WordIter {
	return &WordIter{a: a}
}

// Next returns the next word, or false once the sequence is exhausted
// (only possible for an empty alphabet).
func (it *WordIter) Next() (Word, bool) {
	if it.done {
		return nil, false
	}
	if !it.init {
		it.init = true
		if it.a.Size() == 0 {
			it.done = true
		}

		return Word{}, true
	}

	// Advance the odometer; on overflow grow to the next length.
	n := it.a.Size()
	i := len(it.ids) - 1
	for ; i >= 0; i-- {
		it.ids[i]++
		if it.ids[i] < n {
			break
		}
		it.ids[i] = 0
	}
	if i < 0 {
		it.ids = make([]int, len(it.ids)+1)
	}

	return it.a.Decode(it.ids), true
}

// Take returns the first n words of the enumeration; none when n <= 0.
func (it *WordIter) Take(n int) []Word {
	if n <= 0 {
		return nil
	}
	out := make([]Word, 0, n)
	for len(out) < n {
		w, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}

	return out
}
