package exchangetest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/gdax/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Page size bounds for /products/:id/trades.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Request is a request the server received.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

type fault struct {
	status    int
	remaining int
}

// Server is a fake exchange on an httptest.Server.
type Server struct {
	engine *gin.Engine
	ts     *httptest.Server
	log    *logger.Logger

	mu       sync.Mutex
	products []Product
	tapes    map[string]tape
	faults   map[string]*fault
	requests []Request
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs every request through log.
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithProducts replaces the listed products.
func WithProducts(products ...Product) Option {
	return func(s *Server) { s.products = slices.Clone(products) }
}

// WithTrades sets the trade tape of a product. The product must be listed.
func WithTrades(productID string, trades []Trade) Option {
	return func(s *Server) { s.tapes[productID] = newTape(trades) }
}

// WithTape sets a generated tape of n trades for a product.
func WithTape(productID string, n int) Option {
	return WithTrades(productID, Tape(n))
}

// New starts a server. Close it when done.
func New(opts ...Option) *Server {
	s := &Server{
		log:      logger.Nop(),
		products: slices.Clone(DefaultProducts),
		tapes:    make(map[string]tape),
		faults:   make(map[string]*fault),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(s.record(), recovery(s.log), requestLogger(s.log), s.inject())
	s.routes()
	s.ts = httptest.NewServer(s.engine)
	return s
}

// URL returns the base URL of the server, e.g. "http://127.0.0.1:PORT".
func (s *Server) URL() string { return s.ts.URL }

// Close shuts the server down.
func (s *Server) Close() { s.ts.Close() }

// FailNext makes the next n requests to path answer with status.
func (s *Server) FailNext(path string, status, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = &fault{status: status, remaining: n}
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// RequestsTo returns the received requests whose path is path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) routes() {
	s.engine.GET("/time", raw(TimeJSON))
	s.engine.GET("/currencies", raw(CurrenciesJSON))
	s.engine.GET("/products", s.listProducts)

	p := s.engine.Group("/products/:id", s.requireProduct)
	p.GET("/ticker", raw(TickerJSON))
	p.GET("/stats", raw(StatsJSON))
	p.GET("/book", s.book)
	p.GET("/trades", s.trades)

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "NotFound"})
	})
}

func raw(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(body))
	}
}

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	products := slices.Clone(s.products)
	s.mu.Unlock()
	c.JSON(http.StatusOK, products)
}

func (s *Server) requireProduct(c *gin.Context) {
	id := c.Param("id")
	s.mu.Lock()
	listed := slices.ContainsFunc(s.products, func(p Product) bool { return p.ID == id })
	s.mu.Unlock()
	if !listed {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "NotFound"})
		return
	}
	c.Next()
}

func (s *Server) book(c *gin.Context) {
	switch c.DefaultQuery("level", "1") {
	case "1":
		raw(BookLevel1JSON)(c)
	case "2":
		raw(BookLevel2JSON)(c)
	case "3":
		raw(BookLevel3JSON)(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid level"})
	}
}

func (s *Server) trades(c *gin.Context) {
	limit := DefaultLimit
	if v, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		limit = min(n, MaxLimit)
	}

	before, hasBefore, ok := cursorParam(c, "before")
	if !ok {
		return
	}
	after, hasAfter, ok := cursorParam(c, "after")
	if !ok {
		return
	}

	s.mu.Lock()
	t := s.tapes[c.Param("id")]
	var page []Trade
	switch {
	case hasAfter:
		page = t.after(after, limit)
	case hasBefore:
		page = t.before(before, limit)
	default:
		page = t.latest(limit)
	}
	page = slices.Clone(page)
	s.mu.Unlock()

	if len(page) > 0 {
		c.Header("CB-BEFORE", strconv.FormatUint(page[0].TradeID, 10))
		c.Header("CB-AFTER", strconv.FormatUint(page[len(page)-1].TradeID, 10))
	}
	if page == nil {
		page = []Trade{}
	}
	c.JSON(http.StatusOK, page)
}

// cursorParam parses a trade id query parameter. It writes a 400 and reports
// !ok when the value is malformed.
func cursorParam(c *gin.Context, name string) (id uint64, present, ok bool) {
	v, present := c.GetQuery(name)
	if !present {
		return 0, false, true
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, true, false
	}
	return id, true, true
}
