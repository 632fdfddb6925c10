package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mazegen/internal/maze"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Time to wait for the peer to acknowledge our close.
	closeGracePeriod = 2 * time.Second
	// DefaultMaxCells bounds the grid size a client may request. Every frame
	// carries the whole grid.
	DefaultMaxCells = 10000
)

var errClientClosed = errors.New("client closed connection")

// Params are the per-connection generation parameters, decoded from the
// websocket URL query.
type Params struct {
	Rows int   `schema:"rows"`
	Cols int   `schema:"cols"`
	Seed int64 `schema:"seed"`
	Rate int   `schema:"rate"`
}

// Server streams maze generation to websocket clients, one private maze per
// connection.
type Server struct {
	defaults Params
	maxCells int
	log      *logrus.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	decoder  *schema.Decoder
}

// NewServer builds a server whose connections fall back to defaults for any
// parameter the client leaves out.
func NewServer(defaults Params, logger *logrus.Logger) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	s := &Server{
		defaults: defaults,
		maxCells: DefaultMaxCells,
		log:      logger,
		router:   mux.NewRouter(),
		decoder:  decoder,
	}
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleStream).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) params(r *http.Request) (Params, error) {
	p := s.defaults
	if err := s.decoder.Decode(&p, r.URL.Query()); err != nil {
		return Params{}, fmt.Errorf("decode query: %w", err)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return Params{}, &maze.ConfigError{Rows: p.Rows, Cols: p.Cols}
	}
	if p.Rows > s.maxCells/p.Cols {
		return Params{}, fmt.Errorf("grid of %dx%d cells exceeds limit %d", p.Rows, p.Cols, s.maxCells)
	}
	if p.Rate < 0 {
		return Params{}, fmt.Errorf("rate %d must not be negative", p.Rate)
	}
	return p, nil
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	log := s.log.WithFields(logrus.Fields{
		"session": session,
		"rows":    p.Rows,
		"cols":    p.Cols,
		"seed":    p.Seed,
	})
	log.Info("stream opened")

	group, ctx := errgroup.WithContext(r.Context())
	// Once the publisher fails, unblock the reader so Wait can return even if
	// the client stays connected without sending anything.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()
	completed := false
	group.Go(func() error {
		return readUntilClosed(conn)
	})
	group.Go(func() error {
		if err := s.publish(ctx, conn, session, p, log); err != nil {
			return err
		}
		completed = true
		return nil
	})

	err = group.Wait()
	switch {
	case completed:
		log.Info("stream complete")
	case err == nil || errors.Is(err, errClientClosed) || errors.Is(err, context.Canceled):
		log.Info("stream aborted by client")
	default:
		log.WithError(err).Warn("stream failed")
	}
}

// publish generates the maze and writes one frame per checkpoint followed by
// a final done frame, then starts the close handshake.
func (s *Server) publish(ctx context.Context, conn *websocket.Conn, session string, p Params, log *logrus.Entry) error {
	grid, err := maze.New(p.Rows, p.Cols)
	if err != nil {
		return err
	}
	gen, err := maze.NewGenerator(grid, maze.WithSeed(p.Seed), maze.WithLogger(log))
	if err != nil {
		return err
	}
	var tick <-chan time.Time
	if p.Rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(p.Rate))
		defer ticker.Stop()
		tick = ticker.C
	}

	err = gen.Run(ctx, func(cp maze.Checkpoint) error {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		return writeFrame(conn, NewFrame(session, cp, false))
	})
	if err != nil {
		return err
	}

	final := maze.Checkpoint{
		View:   grid,
		Start:  maze.Coord{},
		End:    grid.End(),
		Step:   gen.Steps(),
		Carved: gen.Carved(),
	}
	if err := writeFrame(conn, NewFrame(session, final, true)); err != nil {
		return err
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "maze complete")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return conn.SetReadDeadline(time.Now().Add(closeGracePeriod))
}

func writeFrame(conn *websocket.Conn, f Frame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set deadline: %w", err)
	}
	// A failed write means the peer is gone; report it like a read-side close.
	if err := conn.WriteJSON(f); err != nil {
		return fmt.Errorf("%w: publish failed: %v", errClientClosed, err)
	}
	return nil
}

// readUntilClosed drains client messages. Any read error means the peer is
// gone or closing, so it always ends with errClientClosed to cancel the
// publisher.
func readUntilClosed(conn *websocket.Conn) error {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return fmt.Errorf("%w: %v", errClientClosed, err)
		}
	}
}
