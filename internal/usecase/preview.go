package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"prosjektbank/internal/compose"
	"prosjektbank/internal/domain"
)

// State is the preview lifecycle. A new Start while Generating is allowed;
// whichever request carries the newest sequence number wins.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateReady
	StateFailed
)

// genTimeout bounds a single preview render.
const genTimeout = 90 * time.Second

// failedMessage is the user-facing generation error; details go to the log.
const failedMessage = "Kunne ikke generere forhåndsvisning"

// Artifact is the finished document for one preview generation. The session
// owns it: it is released when superseded or when the session is closed.
type Artifact struct {
	Filename string
	PDF      []byte
}

func (a *Artifact) release() {
	if a != nil {
		a.PDF = nil
	}
}

// Request is an immutable snapshot of everything one generation needs.
// Exactly one of Project/Employee is set.
type Request struct {
	Project  *domain.Project
	Employee *domain.Employee
	Layout   compose.LayoutID
	Options  compose.Options
	Images   []string
}

// Preview owns the lifecycle of one preview surface: at most one current
// artifact, regenerated whenever the inputs change. Results from superseded
// requests are discarded by sequence number, not completion order.
type Preview struct {
	gen *Generator

	mu      sync.Mutex
	seq     uint64
	state   State
	message string
	current *Artifact
}

func NewPreview(gen *Generator) *Preview {
	return &Preview{gen: gen}
}

// Start launches a generation for req and returns its sequence number.
// Any in-flight generation keeps running but its result will be dropped.
func (p *Preview) Start(req Request) uint64 {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.state = StateGenerating
	p.message = ""
	p.mu.Unlock()

	go p.generate(seq, req)
	return seq
}

func (p *Preview) generate(seq uint64, req Request) {
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	var (
		pdf      []byte
		filename string
		err      error
	)
	if req.Employee != nil {
		pdf, err = p.gen.RenderCV(ctx, req.Employee)
		filename = ExportFilename(req.Employee.Name, "cv")
	} else {
		pdf, err = p.gen.RenderProject(ctx, req.Project, req.Options, req.Layout, req.Images)
		filename = ExportFilename(req.Project.Name, "referanse")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		// A newer request was issued while this one rendered; drop it.
		return
	}

	if err != nil {
		slog.Error("preview generation failed", "seq", seq, "error", err)
		p.state = StateFailed
		p.message = failedMessage
		return
	}

	p.current.release()
	p.current = &Artifact{Filename: filename, PDF: pdf}
	p.state = StateReady
}

// Snapshot returns the session state, a copy of the current artifact (nil
// unless Ready) and the failure message (empty unless Failed). The caller
// gets its own bytes: the session keeps ownership of the internal handle and
// may release it the moment a superseding generation lands, so handing that
// handle out would let release() nil the slice under a concurrent reader.
func (p *Preview) Snapshot() (State, *Artifact, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateReady && p.current != nil {
		pdf := make([]byte, len(p.current.PDF))
		copy(pdf, p.current.PDF)
		return p.state, &Artifact{Filename: p.current.Filename, PDF: pdf}, ""
	}
	return p.state, nil, p.message
}

// Close releases the current artifact and guarantees late results from any
// in-flight generation are discarded.
func (p *Preview) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.current.release()
	p.current = nil
	p.state = StateIdle
	p.message = ""
}

// Hub tracks live preview sessions by token.
type Hub struct {
	gen *Generator

	mu       sync.Mutex
	sessions map[string]*Preview
}

func NewHub(gen *Generator) *Hub {
	return &Hub{gen: gen, sessions: make(map[string]*Preview)}
}

// Open creates a session and returns its token.
func (h *Hub) Open() (string, *Preview) {
	token := uuid.New().String()
	p := NewPreview(h.gen)
	h.mu.Lock()
	h.sessions[token] = p
	h.mu.Unlock()
	return token, p
}

func (h *Hub) Get(token string) (*Preview, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.sessions[token]
	return p, ok
}

// Drop tears a session down and releases its artifact.
func (h *Hub) Drop(token string) {
	h.mu.Lock()
	p, ok := h.sessions[token]
	delete(h.sessions, token)
	h.mu.Unlock()
	if ok {
		p.Close()
	}
}
