package reconcile

import (
	"log/slog"
	"time"

	"github.com/vango-dev/minireact/internal/errors"
	"github.com/vango-dev/minireact/pkg/dom"
	"github.com/vango-dev/minireact/pkg/vdom"
)

// DefaultMaxComponentDepth bounds how many components may resolve into
// another component at a single position.
const DefaultMaxComponentDepth = 64

// record is the engine's bookkeeping for one real node.
type record struct {
	desc      *vdom.VNode             // Description that last reconciled the node
	listeners map[string]dom.Listener // Subscribed listeners by attribute key
}

// Engine reconciles descriptions into real nodes.
type Engine struct {
	logger   *slog.Logger
	pairing  Pairing
	observer Observer
	maxDepth int

	records   map[dom.Node]*record
	rendering bool
	last      Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Replacements are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPairing sets the child pairing strategy. The default is IndexPairing.
func WithPairing(p Pairing) Option {
	return func(e *Engine) {
		if p != nil {
			e.pairing = p
		}
	}
}

// WithObserver registers an observer notified after each render.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithMaxComponentDepth sets how many nested component resolutions are
// allowed at one position.
func WithMaxComponentDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   slog.Default(),
		pairing:  IndexPairing{},
		maxDepth: DefaultMaxComponentDepth,
		records:  make(map[dom.Node]*record),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render makes the first child of container match desc.
//
// On the first call the tree is mounted. Later calls update the real tree in
// place where the recorded description has the same kind and replace it
// otherwise. A real first child the engine did not create is replaced.
//
// Render validates desc before the first host mutation; on error the real
// tree is unchanged.
func (e *Engine) Render(desc *vdom.VNode, container dom.Node) error {
	return e.run(desc, container, func(p *pass) {
		p.diff(desc, container, container.FirstChild())
	})
}

// MustRender is like Render but panics on error.
func (e *Engine) MustRender(desc *vdom.VNode, container dom.Node) {
	if err := e.Render(desc, container); err != nil {
		panic(err)
	}
}

// Mount builds a new real subtree for desc and inserts it into container
// before ref, or appends it when ref is nil. Existing children are left alone.
func (e *Engine) Mount(desc *vdom.VNode, container, ref dom.Node) (dom.Node, error) {
	var node dom.Node
	err := e.run(desc, container, func(p *pass) {
		node = p.mount(desc, container, ref)
	})
	return node, err
}

// Description returns the description that last reconciled node, or nil if
// the engine did not create node or has since removed it.
func (e *Engine) Description(node dom.Node) *vdom.VNode {
	if rec := e.records[node]; rec != nil {
		return rec.desc
	}
	return nil
}

// Tracked returns how many real nodes the engine currently keeps records for.
func (e *Engine) Tracked() int {
	return len(e.records)
}

// LastStats returns the stats of the most recent Render or Mount.
func (e *Engine) LastStats() Stats {
	return e.last
}

func (e *Engine) run(desc *vdom.VNode, container dom.Node, apply func(*pass)) (err error) {
	if e.rendering {
		return errors.New("E007")
	}
	e.rendering = true

	start := time.Now()
	p := &pass{engine: e}
	defer func() {
		e.rendering = false
		e.last = p.stats
		if e.observer != nil {
			e.observer.ObserveRender(p.stats, time.Since(start), err)
		}
	}()

	if container == nil {
		return errors.New("E001")
	}
	if desc == nil {
		return errors.New("E002")
	}
	p.doc = container.OwnerDocument()
	if p.doc == nil {
		return errors.New("E008").
			WithSuggestion("Render into a node that belongs to a document, such as its body")
	}

	if err := p.prepare(desc); err != nil {
		return err
	}
	apply(p)
	return nil
}
