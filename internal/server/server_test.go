package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/server"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadfile"
)

const mapText = `3
Home
Market
Island
3
0 1 3 30
1 0 3 30
1 2 0 0
0
`

type ServerSuite struct {
	suite.Suite
	h http.Handler
}

func (s *ServerSuite) SetupTest() {
	rec, err := roadfile.Parse(strings.NewReader(mapText))
	s.Require().NoError(err)
	nw, err := planner.NewNetwork(rec)
	s.Require().NoError(err)
	s.h = server.New(nw, config.Default().Server, zaptest.NewLogger(s.T())).Handler()
}

func (s *ServerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.h.ServeHTTP(rr, req)

	return rr
}

func (s *ServerSuite) TestHealth() {
	rr := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"status":"ok"}`, rr.Body.String())
	s.NotEmpty(rr.Header().Get(server.HeaderRequestID))
}

func (s *ServerSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()
	s.h.ServeHTTP(rr, req)
	s.Equal("abc-123", rr.Header().Get(server.HeaderRequestID))
}

func (s *ServerSuite) TestLocations() {
	rr := s.do(http.MethodGet, "/api/locations", "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var body struct {
		Locations []roadfile.Location `json:"locations"`
		Connected bool                `json:"connected"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Len(body.Locations, 3)
	s.Equal("Island", body.Locations[2].Name)
	s.False(body.Connected, "nothing leaves Island")
}

func (s *ServerSuite) TestPlanOK() {
	rr := s.do(http.MethodPost, "/api/trips", `{"start":0,"end":1,"mode":"T"}`)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Equal("application/json", rr.Header().Get("Content-Type"))

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Equal([]interface{}{0.0, 1.0}, body["path"])
	s.Equal(3.0, body["total_distance"])
	s.InDelta(0.1, body["total_hours"], 1e-12)
	s.Equal("6 min 0.0 sec", body["total_duration"])
}

func (s *ServerSuite) TestPlanZeroSpeedLegEncodesNullHours() {
	rr := s.do(http.MethodPost, "/api/trips", `{"start":1,"end":2,"mode":"D"}`)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Nil(body["total_hours"])
	legs := body["legs"].([]interface{})
	s.Require().Len(legs, 1)
	s.Nil(legs[0].(map[string]interface{})["hours"])
	s.Equal("unreachable", legs[0].(map[string]interface{})["duration"])
}

func (s *ServerSuite) TestPlanNoPath() {
	rr := s.do(http.MethodPost, "/api/trips", `{"start":2,"end":0,"mode":"D"}`)
	s.Equal(http.StatusNotFound, rr.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	s.Contains(body["error"], "no path")
	s.Equal(rr.Header().Get(server.HeaderRequestID), body["request_id"])
}

func (s *ServerSuite) TestPlanBadRequests() {
	for name, body := range map[string]string{
		"not json":      `{`,
		"missing start": `{"end":1,"mode":"D"}`,
		"negative":      `{"start":-1,"end":1,"mode":"D"}`,
		"bad mode":      `{"start":0,"end":1,"mode":"X"}`,
		"unknown field": `{"start":0,"end":1,"mode":"D","via":2}`,
		"out of range":  `{"start":0,"end":9,"mode":"D"}`,
	} {
		rr := s.do(http.MethodPost, "/api/trips", body)
		s.Equal(http.StatusBadRequest, rr.Code, name)
	}
}

func (s *ServerSuite) TestMethodNotAllowed() {
	rr := s.do(http.MethodGet, "/api/trips", "")
	s.Equal(http.StatusMethodNotAllowed, rr.Code)
}

func (s *ServerSuite) TestMetrics() {
	_ = s.do(http.MethodPost, "/api/trips", `{"start":0,"end":1,"mode":"D"}`)
	rr := s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "lvroute_plan_total")
	s.Contains(rr.Body.String(), `lvroute_http_requests_total{code="200",method="POST",route="/api/trips"}`)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", server.RequestID(context.Background()))
}

func TestRun_GracefulShutdown(t *testing.T) {
	// reserve a free port
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	rec, err := roadfile.Parse(strings.NewReader(mapText))
	require.NoError(t, err)
	nw, err := planner.NewNetwork(rec)
	require.NoError(t, err)

	cfg := config.Default().Server
	cfg.Addr = addr
	cfg.ShutdownTimeout = 2 * time.Second
	srv := server.New(nw, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
