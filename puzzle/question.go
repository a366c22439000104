package puzzle

import "fmt"

// QuestionKind distinguishes a plain expression question from an
// equation question.
type QuestionKind int

const (
	QuestionExpression QuestionKind = iota
	QuestionEquation
)

// Question is the parsed form of one query: either a bare expression
// (`c???t + *e*`) or an equation (`cat =a *`). Package lang is the
// only producer of Questions from surface syntax.
type Question struct {
	Kind       QuestionKind
	Expression Expression
	Equation   *Equation
}

// SolveSettings carries a solution-count bound, matching the
// original's default of 20. Question.Solve does not read it; paging is
// bounded by the caller (see driver.Driver.LoadMore).
type SolveSettings struct {
	MaxSolutions int
}

// DefaultSolveSettings matches solvable.rs's SolveSettings::default.
var DefaultSolveSettings = SolveSettings{MaxSolutions: 20}

// QuestionIterator lazily produces QuestionSolutions, wrapping either
// an Expression's TupleIterator or an Equation's EquationIterator
// behind one interface so drivers don't need to know which kind of
// question they are paging through.
type QuestionIterator struct {
	next func() (QuestionSolution, bool)
}

func (it *QuestionIterator) Next() (QuestionSolution, bool) {
	if it == nil || it.next == nil {
		return QuestionSolution{}, false
	}
	return it.next()
}

// Solve begins solving q against ctx. Expression questions always run
// the expression's own Solve (the cartesian solver), including
// all-literal expressions; there is no separate TermDict lookup path.
func (q *Question) Solve(ctx *WordContext) (*QuestionIterator, error) {
	switch q.Kind {
	case QuestionExpression:
		return q.solveExpression(ctx)
	case QuestionEquation:
		eqIter, err := q.Equation.Solve(ctx)
		if err != nil {
			return nil, err
		}
		kind := SolutionAnagram
		if q.Equation.Operator == EqualitySpoonerism {
			kind = SolutionSpoonerism
		}
		return &QuestionIterator{next: func() (QuestionSolution, bool) {
			eqSol, ok := eqIter.Next()
			if !ok {
				return QuestionSolution{}, false
			}
			return QuestionSolution{Kind: kind, Left: eqSol.Left, Right: eqSol.Right}, true
		}}, nil
	default:
		return nil, fmt.Errorf("unknown question kind")
	}
}

// EstimateCost gives a cheap upper bound on how many candidate
// combinations solving q would need to consider, without actually
// solving it. driver.Driver runs this concurrently with the real
// Solve call and logs the result at debug level.
func (q *Question) EstimateCost(ctx *WordContext) int {
	switch q.Kind {
	case QuestionExpression:
		return estimateCost(ctx.Terms, q.Expression)
	case QuestionEquation:
		left := estimateCost(ctx.Terms, q.Equation.Left)
		right := estimateCost(ctx.Terms, q.Equation.Right)
		if left == 0 {
			return right
		}
		if right == 0 || right < left {
			return right
		}
		return left
	default:
		return 0
	}
}

func (q *Question) solveExpression(ctx *WordContext) (*QuestionIterator, error) {
	iter := q.Expression.Solve(ctx.Terms)
	return &QuestionIterator{next: func() (QuestionSolution, bool) {
		tuple, ok := iter.Next()
		if !ok {
			return QuestionSolution{}, false
		}
		return QuestionSolution{Kind: SolutionExpression, Expr: Solution{Homographs: tuple}}, true
	}}, nil
}
