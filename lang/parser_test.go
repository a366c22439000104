package lang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenwicklabs/lexigram/puzzle"
)

func TestParseLiteralExpression(t *testing.T) {
	q, err := Parse("cat dog")
	require.NoError(t, err)
	require.Equal(t, puzzle.QuestionExpression, q.Kind)

	fle, ok := q.Expression.(*puzzle.FixedLengthExpression)
	require.True(t, ok)
	require.Len(t, fle.Words, 2)

	for i, want := range []string{"cat", "dog"} {
		alt := fle.Words[i].Alternatives[0]
		require.Equal(t, puzzle.WordQueryLiteral, alt.Kind)
		require.Equal(t, want, alt.Literal)
	}
}

func TestParsePatternSlot(t *testing.T) {
	q, err := Parse("c???t")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	require.Equal(t, puzzle.WordQueryPattern, fle.Words[0].Alternatives[0].Kind)
}

func TestParseWildcardAny(t *testing.T) {
	q, err := Parse("*")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	require.Equal(t, puzzle.WordQueryAny, fle.Words[0].Alternatives[0].Kind)
}

func TestParsePartOfSpeechAndTagAtoms(t *testing.T) {
	q, err := Parse("#n #masculine")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	require.Equal(t, puzzle.WordQueryPartOfSpeech, fle.Words[0].Alternatives[0].Kind)
	require.Equal(t, puzzle.WordQueryTag, fle.Words[1].Alternatives[0].Kind)
}

func TestParseFirstLetterClass(t *testing.T) {
	q, err := Parse("@v")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	require.Equal(t, puzzle.WordQueryFirstLetterClass, fle.Words[0].Alternatives[0].Kind)
}

func TestParseConjunction(t *testing.T) {
	q, err := Parse("#n + @v")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	require.Len(t, fle.Words, 1, "'+' should join into a single slot")

	all := fle.Words[0].Alternatives[0]
	require.Equal(t, puzzle.WordQueryAll, all.Kind)
	require.Len(t, all.SubQueries, 2)
}

func TestParseNestedDisjunctionGroup(t *testing.T) {
	q, err := Parse("(cat/dog)")
	require.NoError(t, err)
	fle := q.Expression.(*puzzle.FixedLengthExpression)
	nested := fle.Words[0].Alternatives[0]
	require.Equal(t, puzzle.WordQueryNested, nested.Kind)
	require.Len(t, nested.Nested.Alternatives, 2)
}

func TestParsePhraseExpression(t *testing.T) {
	q, err := Parse("!anything")
	require.NoError(t, err)
	many, ok := q.Expression.(*puzzle.ManyExpression)
	require.True(t, ok)
	require.Equal(t, puzzle.ManyPhrase, many.Type)
}

func TestParseManyAnyPlaceholder(t *testing.T) {
	q, err := Parse("**")
	require.NoError(t, err)
	many, ok := q.Expression.(*puzzle.ManyExpression)
	require.True(t, ok)
	require.Equal(t, puzzle.ManyAny, many.Type)
	require.Equal(t, 2, many.MinWords)
	require.Equal(t, 2, many.MaxWords)
}

func TestParseAnagramEquation(t *testing.T) {
	q, err := Parse("cat =a act")
	require.NoError(t, err)
	require.Equal(t, puzzle.QuestionEquation, q.Kind)
	require.Equal(t, puzzle.EqualityAnagram, q.Equation.Operator)
}

func TestParseSpoonerismEquationWithOmittedRightSide(t *testing.T) {
	q, err := Parse("emma darcy =s")
	require.NoError(t, err)
	require.Equal(t, puzzle.EqualitySpoonerism, q.Equation.Operator)

	right, ok := q.Equation.Right.(*puzzle.FixedLengthExpression)
	require.True(t, ok)
	require.Len(t, right.Words, 2)
	for _, term := range right.Words {
		require.Equal(t, puzzle.WordQueryAny, term.Alternatives[0].Kind)
	}
}

func TestParseAnagramEquationWithOmittedRightSide(t *testing.T) {
	q, err := Parse("cat =a")
	require.NoError(t, err)
	right, ok := q.Equation.Right.(*puzzle.FixedLengthExpression)
	require.True(t, ok)
	require.Len(t, right.Words, 1)
}

func TestParseRejectsTrailingInputAfterEquation(t *testing.T) {
	_, err := Parse("cat =a act dog extra =a")
	require.Error(t, err)
}

func TestParseUnknownTagOrPartOfSpeechErrors(t *testing.T) {
	_, err := Parse("#nonsense")
	require.Error(t, err)
}

func TestParseEmptyInputErrors(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}
