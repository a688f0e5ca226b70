package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/logging"
)

// Request is one inbound front-end message.
type Request struct {
	// ID correlates a reply with its request. Fire-and-forget messages may omit it.
	ID      string
	// Kind is the call style the front-end used. Zero accepts either route kind.
	Kind    RouteKind
	Channel Channel
	Sender  port.FrontendID
	Args    []json.RawMessage
}

// Reply is the outcome of a request/response call.
type Reply struct {
	ID      string
	Channel Channel
	OK      bool
	Result  any
	Error   string
}

// Replier delivers replies back to the front-end a request came from.
type Replier interface {
	Reply(ctx context.Context, reply Reply) error
}

// ReplierFunc adapts a function to the Replier interface.
type ReplierFunc func(ctx context.Context, reply Reply) error

// Reply calls f(ctx, reply).
func (f ReplierFunc) Reply(ctx context.Context, reply Reply) error {
	return f(ctx, reply)
}

// Envelope pairs a request with the replier for its connection.
type Envelope struct {
	Request Request
	Replier Replier
}

// RequestSource yields inbound requests. The channel is closed when the source shuts down.
type RequestSource interface {
	Requests() <-chan Envelope
}

// SendHandler handles a fire-and-forget message.
type SendHandler func(ctx context.Context, req Request) error

// InvokeHandler handles a request/response call.
type InvokeHandler func(ctx context.Context, req Request) (any, error)

// Route is one entry of the dispatch table. Build it with Send or Invoke.
type Route struct {
	kind   RouteKind
	send   SendHandler
	invoke InvokeHandler
}

// Send builds a fire-and-forget route.
func Send(h SendHandler) Route {
	return Route{kind: KindSend, send: h}
}

// Invoke builds a request/response route.
func Invoke(h InvokeHandler) Route {
	return Route{kind: KindInvoke, invoke: h}
}

// Kind reports the route variant.
func (r Route) Kind() RouteKind {
	return r.kind
}

func (r Route) valid() bool {
	switch r.kind {
	case KindSend:
		return r.send != nil
	case KindInvoke:
		return r.invoke != nil
	default:
		return false
	}
}

// Routes is the dispatch table handed to NewRouter.
type Routes map[Channel]Route

// Router dispatches requests to a fixed table of routes.
// The table is copied at construction and never mutated afterwards.
type Router struct {
	routes   map[Channel]Route
	inflight sync.WaitGroup
}

// NewRouter builds a router over a copy of routes.
func NewRouter(routes Routes) (*Router, error) {
	table := make(map[Channel]Route, len(routes))
	for channel, route := range routes {
		if channel == "" {
			return nil, errors.New("channel cannot be empty")
		}
		if !route.valid() {
			return nil, fmt.Errorf("route %q has no handler", channel)
		}
		table[channel] = route
	}
	return &Router{routes: table}, nil
}

// Channels returns the routed channels in lexical order.
func (r *Router) Channels() []Channel {
	channels := make([]Channel, 0, len(r.routes))
	for channel := range r.routes {
		channels = append(channels, channel)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	return channels
}

// Kind returns the route kind for channel, or false when it is not routed.
func (r *Router) Kind(channel Channel) (RouteKind, bool) {
	route, ok := r.routes[channel]
	if !ok {
		return 0, false
	}
	return route.kind, true
}

func (r *Router) lookup(channel Channel, want RouteKind) (Route, error) {
	route, ok := r.routes[channel]
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	if route.kind != want {
		return Route{}, fmt.Errorf("%w: %q is a %s route", ErrRouteKind, channel, route.kind)
	}
	return route, nil
}

// Invoke runs a request/response route and returns its result.
func (r *Router) Invoke(ctx context.Context, req Request) (result any, err error) {
	route, err := r.lookup(req.Channel, KindInvoke)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithChannel(ctx, req.Channel.String())
	defer recoverHandler(ctx, &err)

	return route.invoke(ctx, req)
}

// Send runs a fire-and-forget route. Handler failures are logged and
// swallowed; only routing errors are returned.
func (r *Router) Send(ctx context.Context, req Request) error {
	route, err := r.lookup(req.Channel, KindSend)
	if err != nil {
		return err
	}

	ctx = logging.WithChannel(ctx, req.Channel.String())
	if err := runSend(ctx, route, req); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("sender", string(req.Sender)).
			Msg("fire-and-forget handler failed")
	}
	return nil
}

func runSend(ctx context.Context, route Route, req Request) (err error) {
	defer recoverHandler(ctx, &err)
	return route.send(ctx, req)
}

func recoverHandler(ctx context.Context, err *error) {
	if p := recover(); p != nil {
		logging.FromContext(ctx).Error().Interface("panic", p).Msg("route handler panicked")
		*err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
	}
}

// Dispatch runs req on its own goroutine. Invoke results are delivered to
// replier; send routes never reply. Unknown channels get an error reply only
// when the request carries an ID.
func (r *Router) Dispatch(ctx context.Context, req Request, replier Replier) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		r.dispatch(ctx, req, replier)
	}()
}

func (r *Router) dispatch(ctx context.Context, req Request, replier Replier) {
	log := logging.FromContext(ctx)

	kind, ok := r.Kind(req.Channel)
	if !ok {
		log.Warn().Str("channel", req.Channel.String()).Str("sender", string(req.Sender)).Msg("request for unknown channel")
		if req.ID != "" {
			r.reply(ctx, replier, failure(req, fmt.Errorf("%w: %q", ErrUnknownChannel, req.Channel)))
		}
		return
	}

	if req.Kind != 0 && req.Kind != kind {
		log.Warn().
			Str("channel", req.Channel.String()).
			Str("sender", string(req.Sender)).
			Stringer("want", req.Kind).
			Stringer("route", kind).
			Msg("request kind does not match route")
		if req.ID != "" {
			r.reply(ctx, replier, failure(req, fmt.Errorf("%w: %q is a %s route", ErrRouteKind, req.Channel, kind)))
		}
		return
	}

	if kind == KindSend {
		// Routing errors are impossible past the lookup above.
		_ = r.Send(ctx, req)
		return
	}

	result, err := r.Invoke(ctx, req)
	if err != nil {
		log.Debug().Err(err).Str("channel", req.Channel.String()).Msg("invoke failed")
		r.reply(ctx, replier, failure(req, err))
		return
	}
	r.reply(ctx, replier, Reply{ID: req.ID, Channel: req.Channel, OK: true, Result: result})
}

func (r *Router) reply(ctx context.Context, replier Replier, reply Reply) {
	if replier == nil {
		return
	}
	if err := replier.Reply(ctx, reply); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("channel", reply.Channel.String()).
			Str("id", reply.ID).
			Msg("failed to deliver reply")
	}
}

func failure(req Request, err error) Reply {
	return Reply{ID: req.ID, Channel: req.Channel, OK: false, Error: err.Error()}
}

// Listen drains source into Dispatch until ctx is done or the source closes,
// then waits for in-flight requests to finish.
func (r *Router) Listen(ctx context.Context, source RequestSource) error {
	log := logging.FromContext(ctx)
	log.Info().Int("routes", len(r.routes)).Msg("router listening")

	defer r.inflight.Wait()

	requests := source.Requests()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("router stopped")
			return nil
		case env, ok := <-requests:
			if !ok {
				log.Debug().Msg("request source closed")
				return nil
			}
			r.Dispatch(ctx, env.Request, env.Replier)
		}
	}
}
