package main

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	annotate "github.com/swdee/go-annotate"
	"github.com/swdee/go-annotate/canvas/raster"
	"github.com/swdee/go-annotate/render"
	"github.com/swdee/go-annotate/result"
	"github.com/urfave/cli"
)

const (
	// idleTimeout closes connections that send no frame for this long
	idleTimeout = 60 * time.Second
	// writeTimeout bounds writing a single annotated frame
	writeTimeout = 10 * time.Second
	// maxMessageSize is the largest result message accepted
	maxMessageSize = 8 << 20
)

// Serve starts the HTTP server streaming annotated frames over websockets
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	style, err := loadStyle(ctx)

	if err != nil {
		return err
	}

	var font *raster.Typeface

	if file := ctx.String("font"); file != "" {
		if font, err = raster.LoadFont(file); err != nil {
			return err
		}
	}

	srv := newStreamServer(style, font, ctx.Int("pool"), ctx.Int("width"), ctx.Int("height"))
	defer srv.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/stream", srv.Stream)

	addr := ctx.String("listen")
	logger.Noticef("Streaming annotated frames at ws://%s/stream", addr)

	return http.ListenAndServe(addr, mux)
}

// streamServer renders results received over websocket connections onto
// pooled raster surfaces
type streamServer struct {
	style    render.Style
	font     *raster.Typeface
	pool     *raster.Pool
	upgrader websocket.Upgrader
}

func newStreamServer(style render.Style, font *raster.Typeface, poolSize, width, height int) *streamServer {

	if poolSize < 1 {
		poolSize = 1
	}

	return &streamServer{
		style: style,
		font:  font,
		pool:  raster.NewPool(poolSize, width, height),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Close releases the surface pool
func (s *streamServer) Close() {
	s.pool.Close()
}

// Stream is the websocket handler.  Each text message holds one JSON result
// which is answered with a binary message holding the annotated PNG frame,
// or a text message describing why the result could not be drawn.
func (s *streamServer) Stream(w http.ResponseWriter, r *http.Request) {

	conn, err := s.upgrader.Upgrade(w, r, nil)

	if err != nil {
		logger.Warningf("Websocket upgrade failed: %v", err)
		return
	}

	defer conn.Close()

	logger.Infof("Client %s connected", r.RemoteAddr)

	// a drawer per connection keeps the smoothing of streams apart
	drawer := annotate.NewDrawer(s.style)

	conn.SetReadLimit(maxMessageSize)

	for {
		conn.SetReadDeadline(time.Now().Add(idleTimeout))

		kind, msg, err := conn.ReadMessage()

		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warningf("Websocket error for %s: %v", r.RemoteAddr, err)
			}
			break
		}

		if kind != websocket.TextMessage {
			continue
		}

		reply := websocket.BinaryMessage
		frame, err := s.render(drawer, msg)

		if err != nil {
			logger.Debugf("Frame from %s not rendered: %v", r.RemoteAddr, err)
			reply = websocket.TextMessage
			frame = []byte(err.Error())
		}

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))

		if err := conn.WriteMessage(reply, frame); err != nil {
			logger.Debugf("Error writing to %s: %v", r.RemoteAddr, err)
			break
		}
	}

	logger.Infof("Client %s disconnected", r.RemoteAddr)
}

// render decodes a result and returns it drawn as a PNG frame
func (s *streamServer) render(drawer *annotate.Drawer, msg []byte) ([]byte, error) {

	res, err := result.Decode(bytes.NewReader(msg))

	if err != nil {
		return nil, err
	}

	surface, ok := s.pool.Get()

	if !ok {
		return nil, errors.New("surface pool closed")
	}

	defer s.pool.Return(surface)

	if s.font != nil {
		surface.Context().SetTypeface(s.font)
	}

	drawer.All(surface, res, nil)

	var out bytes.Buffer

	if err := surface.EncodePNG(&out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
