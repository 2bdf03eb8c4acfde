package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/numwords/pkg/logger"
	"github.com/dmitrymomot/numwords/pkg/numwords"
	"github.com/dmitrymomot/numwords/pkg/wordbook"
)

// DefaultMaxBodyBytes limits POST bodies when WithMaxBodyBytes is not used.
const DefaultMaxBodyBytes int64 = 64 << 10

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Handler serves the conversion API. It is immutable after NewHandler and
// safe for concurrent use.
type Handler struct {
	book     *wordbook.Book
	base     numwords.Overrides
	logger   *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
	maxBody  int64
	checks   []func(context.Context) error
	limiter  *limiter
	router   chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithBaseOptions sets option overrides applied over every pack's defaults
// and under the options of each request.
func WithBaseOptions(o numwords.Overrides) Option {
	return func(h *Handler) { h.base = o }
}

// WithLogger sets the request and error logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics records conversions and request latency in m and serves g on
// /metrics. Either may be nil.
func WithMetrics(m *Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = g
	}
}

// WithMaxBodyBytes caps the size of a POST body.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// WithRateLimit limits each client on the /v1 routes. A zero Burst or
// Interval disables limiting.
func WithRateLimit(rl RateLimit) Option {
	return func(h *Handler) {
		if rl.Burst > 0 && rl.Interval > 0 {
			h.limiter = newLimiter(rl)
		} else {
			h.limiter = nil
		}
	}
}

// WithHealthCheck adds a readiness check run by /healthz.
func WithHealthCheck(check func(context.Context) error) Option {
	return func(h *Handler) {
		if check != nil {
			h.checks = append(h.checks, check)
		}
	}
}

// NewHandler returns the API router over the packs of book.
func NewHandler(book *wordbook.Book, opts ...Option) (*Handler, error) {
	if book == nil {
		return nil, ErrNilBook
	}
	h := &Handler{
		book:    book,
		logger:  discardLogger,
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.router = h.routes()
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID, h.logRequests, h.metrics.Instrument, middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, Response{Error: &ErrorDetail{Code: CodeNotFound, Message: "route not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: &ErrorDetail{Code: CodeMethodNotAllowed, Message: "method not allowed"}})
	})

	r.Get("/healthz", h.health)
	if h.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.middleware)
		}
		r.Get("/words", h.getWords)
		r.Post("/words", h.postWords)
		r.Get("/languages", h.languages)
	})
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			logger.Route(routePattern(r)),
			logger.Status(statusOf(ww)),
			logger.Duration(time.Since(start)),
		)
	})
}

// health reports liveness when no checks are configured and readiness otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if len(h.checks) == 0 {
		writeData(w, map[string]string{"status": "alive"})
		return
	}
	for _, check := range h.checks {
		if err := check(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, Response{Error: &ErrorDetail{Code: "not_ready", Message: "service not ready"}})
			return
		}
	}
	writeData(w, map[string]string{"status": "ready"})
}

func (h *Handler) languages(w http.ResponseWriter, _ *http.Request) {
	writeData(w, LanguagesResult{
		Default:   h.book.DefaultLanguage(),
		Languages: h.book.Languages(),
	})
}

// wordsRequest is one conversion. Options and Words are decoded documents
// so they report the same messages as word pack files.
type wordsRequest struct {
	Number  any    `json:"number"`
	Style   string `json:"style"`
	Lang    string `json:"lang"`
	Options any    `json:"options"`
	Words   any    `json:"words"`
}

type paramKind int

const (
	boolParam paramKind = iota
	intParam
	stringParam
)

// queryOptions maps GET query parameters onto option document keys.
var queryOptions = []struct {
	param string
	key   string
	kind  paramKind
}{
	{"integer", "integerOnly", boolParam},
	{"places", "decimalPlaces", intParam},
	{"comma", "useComma", boolParam},
	{"and", "useAnd", boolParam},
	{"only", "useOnlyWord", boolParam},
	{"currency", "useCurrency", boolParam},
	{"major", "majorCurrencySymbol", stringParam},
	{"minor", "minorCurrencySymbol", stringParam},
	{"majorAtEnd", "majorCurrencyAtEnd", boolParam},
	{"minorAtEnd", "minorCurrencyAtEnd", boolParam},
	{"suppressMajor", "suppressMajorIfZero", boolParam},
	{"suppressMinor", "suppressMinorIfZero", boolParam},
	{"case", "useCase", stringParam},
}

func (h *Handler) getWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := wordsRequest{
		Style: q.Get("style"),
		Lang:  q.Get("lang"),
	}
	if q.Has("n") {
		req.Number = q.Get("n")
	}

	doc := make(map[string]any)
	for _, o := range queryOptions {
		if !q.Has(o.param) {
			continue
		}
		raw := q.Get(o.param)
		doc[o.key] = raw
		switch o.kind {
		case boolParam:
			if b, err := strconv.ParseBool(raw); err == nil {
				doc[o.key] = b
			}
		case intParam:
			if n, err := strconv.Atoi(raw); err == nil {
				doc[o.key] = n
			}
		}
	}
	if len(doc) > 0 {
		req.Options = doc
	}

	h.convert(w, r, req)
}

func (h *Handler) postWords(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
		case errors.Is(err, io.EOF):
			err = badRequestError{msg: "request body is empty"}
		default:
			err = badRequestError{msg: "malformed JSON body: " + err.Error()}
		}
		writeError(w, r, h.logger, err)
		return
	}
	h.convert(w, r, req)
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request, req wordsRequest) {
	lang := req.Lang
	if lang == "" {
		lang = h.book.Negotiate(r.Header.Get("Accept-Language"))
	}
	pack, err := h.book.Pack(lang)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	conv := numwords.New(append(pack.ConvertOptions(),
		numwords.WithOverrides(h.base),
		numwords.WithLogger(h.logger),
	)...)
	effective := conv.Options()

	result, err := h.render(conv, &effective, req)
	h.metrics.ObserveConversion(effective, err)
	if err != nil {
		h.logger.DebugContext(r.Context(), "conversion rejected", logger.Language(pack.Language), logger.Error(err))
		writeError(w, r, h.logger, err)
		return
	}

	result.Language = pack.Language
	writeData(w, result)
}

// render decodes the request against conv and converts the number. It
// updates effective with the options the conversion ran with.
func (h *Handler) render(conv *numwords.Converter, effective *numwords.Options, req wordsRequest) (WordsResult, error) {
	overrides, err := numwords.DecodeOverrides(req.Options)
	if err != nil {
		return WordsResult{}, err
	}
	overrides.Apply(effective)

	var opts []numwords.Option
	switch strings.ToLower(req.Style) {
	case "":
	case numwords.StyleIndian:
		effective.UseIndianStyle = true
	case numwords.StyleInternational:
		effective.UseIndianStyle = false
	default:
		return WordsResult{}, &numwords.InvalidInputError{Message: "Invalid style: " + req.Style}
	}
	opts = append(opts, numwords.WithOptions(*effective))

	words, err := numwords.DecodeWords(req.Words)
	if err != nil {
		return WordsResult{}, err
	}
	opts = append(opts, numwords.WithWords(words))

	n, err := numwords.ParseNumber(req.Number)
	if err != nil {
		return WordsResult{}, err
	}

	s, err := conv.ToWords(n, opts...)
	if err != nil {
		return WordsResult{}, err
	}
	style, mode := numwords.Describe(*effective)
	return WordsResult{Words: s, Number: n, Style: style, Mode: mode}, nil
}
