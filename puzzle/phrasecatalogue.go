package puzzle

// phraseCatalogue is the built-in set of short noun-phrase skeletons
// a `!phrase` query can match, reproducing the original's
// PHRASEEXPRESSIONS list: "the #n", "#j #n", "a #n + @c*",
// "an #n + @v*", "the #j #n", "a #j + @c* #n", "an #j + @v* #n",
// "#a #v". Built directly as Go literals rather than parsed from the
// DSL strings at init time: package lang depends on package puzzle
// for its result types, so puzzle cannot call back into lang without
// an import cycle.
var phraseCatalogue = []*FixedLengthExpression{
	// "the #n"
	{Words: []WordQueryTerm{
		literalTerm("the"),
		posTerm(Noun),
	}},
	// "#j #n"
	{Words: []WordQueryTerm{
		posTerm(Adjective),
		posTerm(Noun),
	}},
	// "a #n + @c*"  (article "a" takes a consonant-starting noun)
	{Words: []WordQueryTerm{
		literalTerm("a"),
		allTerm(posQuery(Noun), firstLetterQuery('c')),
	}},
	// "an #n + @v*" (article "an" takes a vowel-starting noun)
	{Words: []WordQueryTerm{
		literalTerm("an"),
		allTerm(posQuery(Noun), firstLetterQuery('v')),
	}},
	// "the #j #n"
	{Words: []WordQueryTerm{
		literalTerm("the"),
		posTerm(Adjective),
		posTerm(Noun),
	}},
	// "a #j + @c* #n"
	{Words: []WordQueryTerm{
		literalTerm("a"),
		allTerm(posQuery(Adjective), firstLetterQuery('c')),
		posTerm(Noun),
	}},
	// "an #j + @v* #n"
	{Words: []WordQueryTerm{
		literalTerm("an"),
		allTerm(posQuery(Adjective), firstLetterQuery('v')),
		posTerm(Noun),
	}},
	// "#a #v"  (adverb followed by a verb)
	{Words: []WordQueryTerm{
		posTerm(Adverb),
		posTerm(Verb),
	}},
}

func literalTerm(word string) WordQueryTerm {
	return WordQueryTerm{Alternatives: []WordQuery{{Kind: WordQueryLiteral, Literal: word}}}
}

func posQuery(pos PartOfSpeech) WordQuery {
	return WordQuery{Kind: WordQueryPartOfSpeech, PartOfSpeech: pos}
}

func posTerm(pos PartOfSpeech) WordQueryTerm {
	return WordQueryTerm{Alternatives: []WordQuery{posQuery(pos)}}
}

func firstLetterQuery(class byte) WordQuery {
	return WordQuery{Kind: WordQueryFirstLetterClass, FirstLetter: class}
}

func allTerm(queries ...WordQuery) WordQueryTerm {
	return WordQueryTerm{Alternatives: []WordQuery{{Kind: WordQueryAll, SubQueries: queries}}}
}
