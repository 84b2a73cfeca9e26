package apiserver

import (
	"net/http"
	"sync"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultWorkers is the number of goroutines handling rpc requests
const DefaultWorkers = 50

// APIServer provides json rpc and web service for the chain
type APIServer struct {
	sync.Mutex
	e       *echo.Echo
	subMap  map[string]*JRPCSub
	reqCh   chan *ReqData
	done    chan struct{}
	closeMu sync.Once
}

// NewAPIServer returns a APIServer serving the metrics of the gatherer on /metrics
func NewAPIServer(gatherer prometheus.Gatherer, workers int) *APIServer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	s := &APIServer{
		e:      echo.New(),
		subMap: map[string]*JRPCSub{},
		reqCh:  make(chan *ReqData),
		done:   make(chan struct{}),
	}
	s.e.HideBanner = true
	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.POST("/api/endpoints/http", s.handleHTTP)
	s.e.GET("/api/endpoints/websocket", s.handleWebsocket)
	if gatherer != nil {
		s.e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	for i := 0; i < workers; i++ {
		go s.work()
	}
	return s
}

// Name returns the name of the service
func (s *APIServer) Name() string {
	return "farm.apiserver"
}

// Handler returns the http handler of the routes
func (s *APIServer) Handler() http.Handler {
	return s.e
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	return s.e.Start(BindAddress)
}

// Close stops the web service and the workers
func (s *APIServer) Close() {
	s.closeMu.Do(func() {
		close(s.done)
		s.e.Close()
	})
}
