package pyne

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/reader"
	"github.com/hearic/pyne/section"
)

// ErrNoMaterials reports a tape that ends before its first material.
var ErrNoMaterials = errors.New("tape holds no materials")

// Parser provides a fluent interface for decoding ENDF tapes. Each
// configuration method returns a new Parser instance, making it safe to
// derive several configurations from one base and allowing method
// chaining.
type Parser struct {
	// Source
	filename string

	// Reader
	reader       *reader.TapeReader
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	latin1   bool
	progress func(section.Progress)

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Parser. This ensures immutability - each
// chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename:     p.filename,
		reader:       p.reader,
		ownsReader:   p.ownsReader,
		readerOpened: p.readerOpened,
		latin1:       p.latin1,
		progress:     p.progress,
		err:          p.err,
	}
}

// ensureReader opens the tape if not already open and applies the
// accumulated configuration to it.
func (p *Parser) ensureReader() error {
	if !p.readerOpened {
		if p.filename == "" {
			return fmt.Errorf("no filename specified")
		}
		r, err := reader.Open(p.filename)
		if err != nil {
			return err
		}
		p.reader = r
		p.ownsReader = true
		p.readerOpened = true
	}

	if p.latin1 {
		p.reader.SetLatin1()
	}
	if p.progress != nil {
		p.reader.SetProgress(p.progress)
	}
	return nil
}

// Close releases resources associated with the Parser.
// It is safe to call Close multiple times. A Parser built with [Open] can
// run further terminal operations afterwards; each one reopens the tape
// from the beginning.
func (p *Parser) Close() error {
	if p.ownsReader && p.reader != nil {
		err := p.reader.Close()
		p.reader = nil
		p.ownsReader = false
		p.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// Latin1 configures the parser to decode the text columns as ISO 8859-1
// instead of raw bytes. Evaluations predating the format's ASCII
// restriction carry accented characters in author and reference fields.
//
// Example:
//
//	ev, err := pyne.Open("jef22.endf").Latin1().Evaluation()
func (p *Parser) Latin1() *Parser {
	np := p.clone()
	np.latin1 = true
	return np
}

// Progress registers fn to be called after each directory entry is decoded
// or skipped, on the goroutine running the parse.
//
// Example:
//
//	ev, err := pyne.Open("tape.endf").
//	    Progress(func(pr section.Progress) { fmt.Println(pr.Entry.MT) }).
//	    Evaluation()
func (p *Parser) Progress(fn func(section.Progress)) *Parser {
	np := p.clone()
	np.progress = fn
	return np
}

// ============================================================================
// Terminal Operations (execute decoding and return results)
// ============================================================================

// Evaluation decodes the first material on the tape. This is a terminal
// operation that closes the underlying reader. A tape with no materials
// returns [ErrNoMaterials].
//
// Example:
//
//	ev, err := pyne.Open("tape.endf").Evaluation()
func (p *Parser) Evaluation() (*model.Evaluation, error) {
	return p.EvaluationContext(context.Background())
}

// EvaluationContext is [Parser.Evaluation] honoring ctx between sections.
func (p *Parser) EvaluationContext(ctx context.Context) (*model.Evaluation, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, err
	}
	defer p.Close()

	ev, err := p.reader.Evaluation(ctx)
	if err == io.EOF {
		return nil, ErrNoMaterials
	}
	return ev, err
}

// Evaluations decodes every material on the tape in order. This is a
// terminal operation that closes the underlying reader. An empty tape
// yields an empty slice, not an error.
//
// Example:
//
//	evs, err := pyne.Open("tape.endf").Evaluations()
func (p *Parser) Evaluations() ([]*model.Evaluation, error) {
	return p.EvaluationsContext(context.Background())
}

// EvaluationsContext is [Parser.Evaluations] honoring ctx between sections.
func (p *Parser) EvaluationsContext(ctx context.Context) ([]*model.Evaluation, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, err
	}
	defer p.Close()

	return p.reader.ReadAll(ctx)
}

// Survey indexes the tape without decoding any section bodies, reading
// only the identification columns of each card. This is a terminal
// operation that closes the underlying reader.
//
// Example:
//
//	sv, err := pyne.Open("tape.endf").Survey()
//	for _, m := range sv.Materials {
//	    fmt.Println(m.MAT, len(m.Sections))
//	}
func (p *Parser) Survey() (*reader.Survey, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, err
	}
	defer p.Close()

	return p.reader.Scan()
}
