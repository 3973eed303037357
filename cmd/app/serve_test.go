package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wichananm65/product-catalogue/internal/config"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestServe_StopsWhileFetchHangs(t *testing.T) {
	requested := make(chan struct{}, 1)
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested <- struct{}{}
		<-release
	}))
	defer upstream.Close()
	defer close(release)

	addr := freeAddr(t)
	cfg := config.Config{
		Addr:        addr,
		ProductsURL: upstream.URL,
		Source:      config.SourceHTTP,
		JWTSecret:   "test-secret",
		TimeZone:    "Asia/Karachi",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg) }()

	select {
	case <-requested:
	case <-time.After(5 * time.Second):
		t.Fatalf("upstream was never called")
	}

	// wait until the API answers so shutdown hits a running server
	deadline := time.Now().Add(5 * time.Second)
	for {
		res, err := http.Get("http://" + addr + "/health")
		if err == nil {
			_ = res.Body.Close()
			if res.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never became healthy: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve still running 5s after cancel")
	}
}

func TestServe_FailsWhenAddressIsTaken(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer upstream.Close()
	defer close(release)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := config.Config{
		Addr:        ln.Addr().String(),
		ProductsURL: upstream.URL,
		Source:      config.SourceHTTP,
		JWTSecret:   "test-secret",
		TimeZone:    "Asia/Karachi",
	}

	done := make(chan error, 1)
	go func() { done <- runServe(context.Background(), cfg) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected listen error")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after listen failed")
	}
}
