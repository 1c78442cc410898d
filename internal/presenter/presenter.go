// Package presenter mediates between a profile screen's view and the gateway
// that fetches its data.
//
// The presenter owns its State and the gateway; it holds the view only until
// the view detaches. Gateway completions may arrive on any goroutine and are
// serialised behind the presenter's mutex. View calls are made outside it.
package presenter

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"profilescreen/internal/favorite"
	"profilescreen/internal/gateway"
	"profilescreen/internal/popup"
)

// DefaultBarTitle is shown until a fetch returns a product name.
const DefaultBarTitle = "..."

// FetchID identifies one TriggerFetch call.
type FetchID string

// ResultHandler consumes fetch results. The presenter is the gateway's
// ResultHandler.
type ResultHandler interface {
	HandleResult(gateway.FetchResult)
}

var (
	_ ResultHandler     = (*Presenter)(nil)
	_ popup.Delegate    = (*Presenter)(nil)
	_ favorite.Delegate = (*Presenter)(nil)
)

// Presenter drives a profile screen.
type Presenter struct {
	gateway gateway.Gateway
	manager *favorite.Manager
	hooks   Hooks
	policy  FetchPolicy
	logger  *zap.Logger
	tracer  trace.Tracer
	newID   func() FetchID
	userID  int64

	mu       sync.Mutex
	view     View
	state    State
	barTitle *string
	inflight map[FetchID]context.CancelFunc
	version  uint64
	closed   bool
}

// New creates a presenter for userID. The view is held until Detach.
func New(view View, gw gateway.Gateway, userID int64, opts ...Option) *Presenter {
	p := &Presenter{
		gateway:  gw,
		userID:   userID,
		view:     view,
		state:    NewState(userID),
		inflight: make(map[FetchID]context.CancelFunc),
		logger:   zap.NewNop(),
		tracer:   otel.Tracer("profilescreen/presenter"),
		newID:    newFetchID,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.manager == nil {
		p.manager = favorite.NewManager()
	}
	p.manager.SetDelegate(p)
	return p
}

// UserID returns the id the presenter was created for.
func (p *Presenter) UserID() int64 {
	return p.userID
}

// Favorites returns the favourites manager the presenter saves into.
func (p *Presenter) Favorites() *favorite.Manager {
	return p.manager
}

// Detach drops the view. Later view calls become no-ops.
func (p *Presenter) Detach() {
	p.mu.Lock()
	p.view = nil
	p.mu.Unlock()
}

// Close cancels outstanding fetches and detaches the view. Results that
// arrive afterwards are dropped.
func (p *Presenter) Close() {
	p.mu.Lock()
	p.closed = true
	p.view = nil
	for id, cancel := range p.inflight {
		cancel()
		delete(p.inflight, id)
	}
	p.mu.Unlock()
}

// State returns a copy of the presentation state.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// FullName is the user's name and surname.
func (p *Presenter) FullName() string {
	return p.State().FullName()
}

// ShouldShowComponent reports whether the promo component is visible.
func (p *Presenter) ShouldShowComponent() bool {
	return p.State().ShouldShowComponent()
}

// ShouldShowButton is true when both injected flags hold.
func (p *Presenter) ShouldShowButton() bool {
	return p.showButton(p.State())
}

func (p *Presenter) showButton(s State) bool {
	return p.hooks.test(p.hooks.FirstFlag, s) && p.hooks.test(p.hooks.SecondFlag, s)
}

// BarTitle is the product name of the latest successful fetch, or
// DefaultBarTitle when it had none.
func (p *Presenter) BarTitle() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.barTitle == nil {
		return DefaultBarTitle
	}
	return *p.barTitle
}

// InFlight returns the number of outstanding fetches.
func (p *Presenter) InFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inflight)
}

// FirstMethod evaluates the injected FirstMethod hook against the state.
func (p *Presenter) FirstMethod() bool {
	return p.hooks.test(p.hooks.FirstMethod, p.State())
}

// SecondMethod does nothing unless the component flag is enabled. Otherwise
// it runs the first matching branch of FirstCondition, SecondCondition, else.
func (p *Presenter) SecondMethod() {
	s := p.State()
	if !s.ComponentFlagEnabled {
		return
	}
	switch {
	case p.hooks.test(p.hooks.FirstCondition, s):
		p.hooks.run(p.hooks.OnFirstCondition, s)
	case p.hooks.test(p.hooks.SecondCondition, s):
		p.hooks.run(p.hooks.OnSecondCondition, s)
	default:
		p.hooks.run(p.hooks.OnOtherwise, s)
	}
}

// HandleName commits text as the favourites list name and runs
// SecondMethod. It returns false, changing nothing, when text is nil.
func (p *Presenter) HandleName(text *string) bool {
	if text == nil {
		return false
	}
	p.manager.SetName(*text)
	p.SecondMethod()
	p.render()
	return true
}

// TriggerFetch starts one fetch and returns its id. Under PolicyIndependent
// every call is tracked and resolved on its own; under PolicyCancelReplace
// earlier outstanding fetches are cancelled and their results dropped.
func (p *Presenter) TriggerFetch() FetchID {
	id := p.newID()
	ctx, cancel := context.WithCancel(context.Background())
	ctx, span := p.tracer.Start(ctx, "presenter.fetch", trace.WithAttributes(
		attribute.Int64("profilescreen.user.id", p.userID),
		attribute.String("profilescreen.fetch.id", string(id)),
		attribute.String("profilescreen.fetch.policy", p.policy.String()),
	))

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		cancel()
		span.End()
		return id
	}
	if p.policy == PolicyCancelReplace {
		for old, c := range p.inflight {
			c()
			delete(p.inflight, old)
			p.logger.Debug("fetch superseded", zap.String("fetch_id", string(old)))
		}
	}
	p.inflight[id] = cancel
	p.mu.Unlock()

	p.logger.Debug("fetch started", zap.String("fetch_id", string(id)), zap.Int64("user_id", p.userID))
	p.render()

	p.gateway.Fetch(ctx, p.userID, gateway.Once(func(r gateway.FetchResult) {
		p.finish(id, cancel, span, r)
	}))
	return id
}

func (p *Presenter) finish(id FetchID, cancel context.CancelFunc, span trace.Span, r gateway.FetchResult) {
	defer span.End()
	defer cancel()

	p.mu.Lock()
	_, live := p.inflight[id]
	delete(p.inflight, id)
	p.mu.Unlock()

	if err := r.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if !live {
		span.SetAttributes(attribute.Bool("profilescreen.fetch.dropped", true))
		p.logger.Debug("fetch result dropped", zap.String("fetch_id", string(id)))
		return
	}
	p.logger.Debug("fetch finished", zap.String("fetch_id", string(id)), zap.Bool("ok", r.OK()))
	p.HandleResult(r)
}

// HandleResult consumes one fetch result. A success updates state and saves
// the product ids that are present, in order. A failure shows an error alert
// if a view is still attached and is otherwise dropped.
func (p *Presenter) HandleResult(r gateway.FetchResult) {
	if !r.OK() {
		if v := p.currentView(); v != nil {
			v.ShowErrorAlert()
		}
		p.render()
		return
	}

	resp := r.Response()
	p.mu.Lock()
	if resp.Identity != nil {
		p.state.Name = resp.Identity.Name
		p.state.Surname = resp.Identity.Surname
	}
	if resp.Component != nil {
		p.state.ComponentTitle = resp.Component.Title
		p.state.ComponentFlagEnabled = resp.Component.Enabled
	}
	p.barTitle = nil
	if resp.ProductName != nil {
		title := *resp.ProductName
		p.barTitle = &title
	}
	p.mu.Unlock()

	p.saveProducts(resp.ProductIDs())
	p.render()
}

func (p *Presenter) saveProducts(ids []int64) {
	if err := p.manager.Save(ids); err != nil && !errors.Is(err, favorite.ErrEmpty) {
		p.logger.Debug("save products", zap.Error(err))
	}
}

// PopupDidClickButton implements popup.Delegate.
func (p *Presenter) PopupDidClickButton(_ *popup.Popup, b popup.Button) {
	if p.hooks.OnPopupButton != nil {
		p.hooks.OnPopupButton(b)
	}
}

// FavoriteManagerDidAddToListSuccessfully implements favorite.Delegate.
func (p *Presenter) FavoriteManagerDidAddToListSuccessfully(m *favorite.Manager) {
	if p.hooks.OnAddedToList != nil {
		p.hooks.OnAddedToList(m.IDs())
	}
}

// Snapshot returns the current display data.
func (p *Presenter) Snapshot() Snapshot {
	p.mu.Lock()
	p.version++
	s, state := p.snapshotLocked()
	p.mu.Unlock()
	s.ShowButton = p.showButton(state)
	return s
}

// snapshotLocked fills everything but ShowButton, whose hooks run unlocked.
func (p *Presenter) snapshotLocked() (Snapshot, State) {
	title := DefaultBarTitle
	if p.barTitle != nil {
		title = *p.barTitle
	}
	return Snapshot{
		Version:          p.version,
		UserID:           p.userID,
		FullName:         p.state.FullName(),
		BarTitle:         title,
		ShowComponent:    p.state.ShouldShowComponent(),
		ComponentTitle:   p.state.ComponentTitle,
		FavoriteListName: p.manager.Name(),
		SavedIDs:         p.manager.IDs(),
		InFlight:         len(p.inflight),
	}, p.state
}

func (p *Presenter) currentView() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

func (p *Presenter) render() {
	p.mu.Lock()
	r, ok := p.view.(Renderer)
	if !ok {
		p.mu.Unlock()
		return
	}
	p.version++
	s, state := p.snapshotLocked()
	p.mu.Unlock()
	s.ShowButton = p.showButton(state)
	r.Render(s)
}
