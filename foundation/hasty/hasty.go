// File: hasty.go
// Title: hasty Front-End Engine
// Description: Runs the scanner, parser and semantic passes as one
//              pipeline. Each call gets a run ID that appears in its log
//              entries and in the details of returned errors.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-22
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-22 v0.1.0: Initial implementation
// - 2025-03-14 v0.1.1: Stage in error details, duration from the run timer

package hasty

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
	mdwlog "github.com/msto63/hasty/foundation/core/log"
	"github.com/msto63/hasty/foundation/hasty/ast"
	"github.com/msto63/hasty/foundation/hasty/lexer"
	"github.com/msto63/hasty/foundation/hasty/parser"
	"github.com/msto63/hasty/foundation/hasty/passes"
	"github.com/msto63/hasty/foundation/hasty/scope"
	"github.com/msto63/hasty/foundation/hasty/token"
	"github.com/msto63/hasty/foundation/hasty/types"
	"github.com/msto63/hasty/foundation/utils/stringx"
)

const (
	// DefaultMaxSourceLength bounds accepted source text in bytes
	DefaultMaxSourceLength = 1 << 20

	previewLength = 40
)

// Options configures an Engine
type Options struct {
	Logger *mdwlog.Logger
	// MaxSourceLength rejects larger sources with CodeInvalidInput
	MaxSourceLength int
	// MaxDepth is forwarded to the parser
	MaxDepth int
}

// Engine runs the hasty front end. It holds no per-run state and may be
// reused for any number of sources.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Result carries everything a run produced up to its last stage
type Result struct {
	RunID  string
	Tokens []token.Token
	// Tree is nil after Scan
	Tree *ast.Tree
	// Scope holds the global bindings after Check
	Scope    *scope.Scope[types.Binding]
	Duration time.Duration
}

// Generator turns a resolved tree into target output. Generators must
// not modify bindings.
type Generator interface {
	Generate(tree *ast.Tree, w io.Writer) error
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxSourceLength <= 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "hasty"),
		options: opts,
	}
}

// Scan tokenizes source
func (e *Engine) Scan(source string) (*Result, error) {
	r := e.begin(source)
	defer r.finish()

	if err := r.scan(source); err != nil {
		return nil, err
	}
	return r.result, nil
}

// Parse tokenizes and parses source
func (e *Engine) Parse(source string) (*Result, error) {
	r := e.begin(source)
	defer r.finish()

	if err := r.scan(source); err != nil {
		return nil, err
	}
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r.result, nil
}

// Check tokenizes, parses and resolves source
func (e *Engine) Check(source string) (*Result, error) {
	r := e.begin(source)
	defer r.finish()

	if err := r.scan(source); err != nil {
		return nil, err
	}
	if err := r.parse(); err != nil {
		return nil, err
	}
	if err := r.resolve(); err != nil {
		return nil, err
	}
	return r.result, nil
}

// Compile checks source and hands the resolved tree to gen
func (e *Engine) Compile(source string, gen Generator, w io.Writer) (*Result, error) {
	result, err := e.Check(source)
	if err != nil {
		return nil, err
	}

	if err := gen.Generate(result.Tree, w); err != nil {
		return nil, mdwerror.Wrap(err, "code generation failed").
			WithCode(mdwerror.CodeGenerateError).
			WithOperation("hasty.generate").
			WithDetail("run_id", result.RunID)
	}
	return result, nil
}

// run is the state of one pipeline invocation
type run struct {
	engine *Engine
	logger *mdwlog.Logger
	timer  *mdwlog.Timer
	result *Result
	err    error
}

func (e *Engine) begin(source string) *run {
	id := uuid.NewString()
	logger := e.logger.WithRunID(id)

	if logger.IsLevelEnabled(mdwlog.LevelDebug) {
		logger.Debug("Starting run", mdwlog.Fields{
			"bytes":   len(source),
			"preview": stringx.Truncate(source, previewLength, "..."),
		})
	}

	return &run{
		engine: e,
		logger: logger,
		timer:  logger.StartTimer("hasty run").WithLevel(mdwlog.LevelDebug),
		result: &Result{RunID: id},
	}
}

// finish logs the run. Errors in the source are the expected outcome of
// compiling bad input and are only logged at debug level.
func (r *run) finish() {
	r.result.Duration = r.timer.Elapsed()

	if r.err != nil && mdwerror.GetCode(r.err).IsSourceError() {
		r.logger.Debug("Source rejected",
			mdwlog.Err(r.err).Merge(mdwlog.Field("error_code", mdwerror.GetCode(r.err).String())))
		r.timer.WithField("rejected", true).Stop()
		return
	}
	r.timer.StopWithError(r.err)
}

func (r *run) fail(err error, message string, code mdwerror.Code, stage string) error {
	r.err = mdwerror.Wrap(err, message).
		WithCode(code).
		WithOperation("hasty."+stage).
		WithDetails(r.details(stage))
	return r.err
}

// details identifies the run and stage in a returned error
func (r *run) details(stage string) map[string]interface{} {
	return map[string]interface{}{
		"run_id": r.result.RunID,
		"stage":  stage,
	}
}

func (r *run) scan(source string) error {
	if len(source) > r.engine.options.MaxSourceLength {
		r.err = mdwerror.Newf("source is %d bytes, limit is %d", len(source), r.engine.options.MaxSourceLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("hasty.scan").
			WithDetails(r.details("scan"))
		return r.err
	}
	if !utf8.ValidString(source) {
		r.err = mdwerror.New("source is not valid UTF-8").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("hasty.scan").
			WithDetails(r.details("scan"))
		return r.err
	}

	tokens, err := lexer.Scan(source)
	if err != nil {
		return r.fail(err, "scan failed", mdwerror.CodeScanError, "scan")
	}
	r.result.Tokens = tokens
	r.timer.Checkpoint("scanned", mdwlog.Fields{"tokens": len(tokens)})
	return nil
}

func (r *run) parse() error {
	p := parser.New(parser.Options{
		Logger:   r.logger.WithStage(parser.Stage),
		MaxDepth: r.engine.options.MaxDepth,
	})

	tree, err := p.Parse(r.result.Tokens)
	if err != nil {
		return r.fail(err, "parse failed", mdwerror.CodeParseError, "parse")
	}
	if err := tree.Validate(); err != nil {
		return r.fail(err, "parser produced an invalid tree", mdwerror.CodeInternal, "parse")
	}
	r.result.Tree = tree
	r.timer.Checkpoint("parsed", mdwlog.Fields{"nodes": tree.Len()})
	return nil
}

func (r *run) resolve() error {
	resolver := passes.NewResolver(passes.Options{
		Logger: r.logger.WithStage(passes.Stage),
	})

	if err := passes.Run(r.result.Tree, resolver); err != nil {
		return r.fail(err, "resolve failed", mdwerror.CodeResolveError, "resolve")
	}
	r.result.Scope = resolver.Scope()
	r.timer.Checkpoint("resolved", mdwlog.Fields{"bindings": len(resolver.Scope().Names())})
	return nil
}
