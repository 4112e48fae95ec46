package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "gopkg.in/check.v1"

	"github.com/benbeisheim/variantchess-backend/internal/config"
)

func Test(t *testing.T) { TestingT(t) }

type ServerSuite struct{}

var _ = Suite(&ServerSuite{})

func (s *ServerSuite) TestSplitOrigins(c *C) {
	c.Check(splitOrigins("http://a, http://b ,,"), DeepEquals, []string{"http://a", "http://b"})
	c.Check(splitOrigins(""), HasLen, 0)
}

func (s *ServerSuite) TestNewApp(c *C) {
	app := newApp(config.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/bots", nil)
	req.Header.Set("X-Player-ID", "p1")
	res, err := app.Test(req, -1)
	c.Assert(err, IsNil)
	c.Check(res.StatusCode, Equals, http.StatusOK)

	req = httptest.NewRequest(http.MethodOptions, "/api/bots", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	res, err = app.Test(req, -1)
	c.Assert(err, IsNil)
	c.Check(res.Header.Get("Access-Control-Allow-Origin"), Equals, "http://localhost:5173")
}

func (s *ServerSuite) TestWaitShutdown(c *C) {
	app := newApp(config.Default())
	sigint := make(chan os.Signal, 1)
	closed := make(chan struct{})
	go waitShutdown(app, sigint, closed)

	select {
	case <-closed:
		c.Fatal("shut down before the signal")
	case <-time.After(50 * time.Millisecond):
	}

	sigint <- os.Interrupt
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		c.Fatal("no shutdown after the signal")
	}
}
