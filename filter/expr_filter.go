package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/flixster/tmdb"
)

// ExprFilter represents a compiled expr filter
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// helpers are available in every expression. contains, startsWith and
// endsWith are expr operators already and are case-sensitive.
var helpers = map[string]interface{}{
	"includes": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// CompileExprFilter compiles an expr filter expression
func CompileExprFilter(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(tmdb.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Position:   -1,
			Err:        err,
		}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// environment exposes the movie fields and helpers to an expression
func environment(movie tmdb.Movie) map[string]interface{} {
	env := make(map[string]interface{}, len(helpers)+5)
	for name, fn := range helpers {
		env[name] = fn
	}

	env["Movie"] = movie
	env["Title"] = movie.Title
	env["Overview"] = movie.Overview
	env["PosterPath"] = movie.PosterPath
	env["hasPoster"] = movie.HasPoster

	return env
}

// Evaluate evaluates the filter against a movie
func (f *ExprFilter) Evaluate(movie tmdb.Movie) bool {
	result, err := expr.Run(f.program, environment(movie))
	if err != nil {
		return false
	}

	boolResult, ok := result.(bool)
	return ok && boolResult
}

// Apply returns the movies that match, keeping their order
func (f *ExprFilter) Apply(movies []tmdb.Movie) []tmdb.Movie {
	matches := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matches = append(matches, movie)
		}
	}
	return matches
}

// String returns the original expression
func (f *ExprFilter) String() string {
	return f.expr
}

// CreateExprFilter creates a filter function from an expression
func CreateExprFilter(expression string) (func(tmdb.Movie) bool, error) {
	filter, err := CompileExprFilter(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return filter.Evaluate, nil
}
