// Package alphabet defines the symbols, words and alphabets that every other
// dfaid package speaks in.
//
// A Symbol is a non-empty string. The empty string plays the role of the
// "absent" symbol and is never a member of an Alphabet. An Alphabet is a
// finite, sorted, duplicate-free set of symbols with a stable bijection to the
// dense integer ids 0..Size()-1; the ids are what the tree builder, the SAT
// codec and the automaton runtime use internally.
//
// Key features:
//   - New(symbols...): build an Alphabet; sorts, deduplicates, rejects "".
//   - FromString(s): split a string into one-rune symbols ("abb" → a,b,b).
//   - Word.Key(): collision-free map key for a word.
//   - (*Alphabet).Words(): enumerate every word by increasing length,
//     lexicographic within a length, ties broken by symbol order.
//
// Errors:
//
//   - ErrNullSymbol       if the empty symbol is supplied.
//   - ErrUnknownSymbol    if a symbol is not a member of the alphabet.
package alphabet
