package site

import (
	"context"
	"encoding/json"

	"github.com/philly/arch-blog/postpage/internal/adapters/html"
	"github.com/philly/arch-blog/postpage/internal/posts/application"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
)

// Stages of one page cycle, reported on failure.
const (
	StageLoad     = "load"
	StageRender   = "render"
	StageDocument = "document"
	StageWrite    = "write"
)

// Artifacts is everything one load+render cycle produced, held in memory.
type Artifacts struct {
	Props     *domain.StaticProps
	PropsJSON []byte
	Units     []application.RenderedPost
	HTML      []byte
}

// StageError tags a cycle failure with the stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline drives one page cycle: LoadData, Render, then the document.
// Nothing is cached between runs.
type Pipeline struct {
	page     *application.Page
	document *html.Document
}

// NewPipeline creates a new page pipeline
func NewPipeline(page *application.Page, document *html.Document) *Pipeline {
	return &Pipeline{page: page, document: document}
}

// Run executes one cycle and returns its artifacts.
func (p *Pipeline) Run(ctx context.Context) (*Artifacts, error) {
	props, err := p.page.LoadData(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}

	units, err := p.page.Render(ctx, props.Props)
	if err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	propsJSON, err := json.Marshal(props)
	if err != nil {
		return nil, &StageError{Stage: StageDocument, Err: wrap(ErrDocumentFailed, err)}
	}

	doc, err := p.document.Render(props.Props, units)
	if err != nil {
		return nil, &StageError{Stage: StageDocument, Err: wrap(ErrDocumentFailed, err)}
	}

	return &Artifacts{
		Props:     props,
		PropsJSON: propsJSON,
		Units:     units,
		HTML:      doc,
	}, nil
}
