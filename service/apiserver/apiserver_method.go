package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/meverselabs/yfacfarm/common/rlog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ReqData struct {
	req   *JRPCRequest
	resCh chan *JRPCResponse
}

func (s *APIServer) handleHTTP(c echo.Context) error {
	defer c.Request().Body.Close()
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()

	var req JRPCRequest
	if err := dec.Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &JRPCResponse{
			JSONRPC: "2.0",
			Error:   errors.Wrap(ErrInvalidRequest, err.Error()).Error(),
		})
	}
	res, err := s.dispatch(&req)
	if err != nil {
		return err
	}
	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *APIServer) handleWebsocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var req JRPCRequest
		if err := dec.Decode(&req); err != nil {
			return err
		}
		res, err := s.dispatch(&req)
		if err != nil {
			return err
		}
		if res != nil {
			if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				return err
			}
			if err := conn.WriteJSON(res); err != nil {
				return err
			}
		}
	}
}

// dispatch hands the request to a worker and waits the response
func (s *APIServer) dispatch(req *JRPCRequest) (*JRPCResponse, error) {
	resCh := make(chan *JRPCResponse, 1)
	select {
	case s.reqCh <- &ReqData{req: req, resCh: resCh}:
	case <-s.done:
		return nil, errors.WithStack(ErrServerClosed)
	}
	select {
	case res := <-resCh:
		return res, nil
	case <-s.done:
		return nil, errors.WithStack(ErrServerClosed)
	}
}

func (s *APIServer) work() {
	for {
		select {
		case r := <-s.reqCh:
			r.resCh <- s.handleJRPC(r.req)
		case <-s.done:
			return
		}
	}
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, errors.WithStack(ErrExistSubName)
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}

func (s *APIServer) handleJRPC(req *JRPCRequest) *JRPCResponse {
	fail := func(err error) *JRPCResponse {
		if req.ID == nil {
			return nil
		}
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   err.Error(),
		}
	}

	ls := strings.SplitN(req.Method, ".", 2)
	if len(ls) != 2 {
		return fail(ErrInvalidMethod)
	}
	s.Lock()
	sub, has := s.subMap[ls[0]]
	s.Unlock()
	if !has {
		return fail(ErrInvalidMethod)
	}
	sub.Lock()
	fn, has := sub.funcMap[ls[1]]
	sub.Unlock()
	if !has {
		return fail(ErrInvalidMethod)
	}

	ret, err := fn(req.ID, NewArgument(req.Params))
	if err != nil {
		rlog.Named("apiserver").Debug("rpc failed", zap.String("method", req.Method), zap.Error(err))
		return fail(err)
	}
	if req.ID == nil {
		return nil
	}
	return &JRPCResponse{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
		Result:  ret,
	}
}
