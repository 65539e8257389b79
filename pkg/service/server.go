// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urfave/negroni/v3"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc"
	"github.com/livekit/rendezvous-server/pkg/telemetry/prometheus"
	"github.com/livekit/rendezvous-server/version"
)

type NodeID string

type RendezvousServer struct {
	config     *config.Config
	nodeID     NodeID
	rtcService *RTCService
	store      RORoomStore
	syncer     *RoomStoreSyncer
	reclaimer  *rtc.GraceReclaimer
	httpServer *http.Server
	promServer *http.Server
	running    atomic.Bool
	doneChan   chan struct{}
	closedChan chan struct{}
}

func NewRendezvousServer(
	conf *config.Config,
	nodeID NodeID,
	rtcService *RTCService,
	store RoomStore,
	syncer *RoomStoreSyncer,
	reclaimer *rtc.GraceReclaimer,
) *RendezvousServer {
	s := &RendezvousServer{
		config:     conf,
		nodeID:     nodeID,
		rtcService: rtcService,
		store:      store,
		syncer:     syncer,
		reclaimer:  reclaimer,
		closedChan: make(chan struct{}),
	}

	middlewares := []negroni.Handler{
		// always first
		negroni.NewRecovery(),
		cors.New(cors.Options{
			AllowedOrigins: conf.Signal.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}),
	}

	mux := http.NewServeMux()
	mux.Handle("/rtc", rtcService)
	mux.HandleFunc("/healthz", s.healthCheck)
	if conf.Development {
		mux.HandleFunc("/debug/rooms", s.debugRooms)
	}

	s.httpServer = &http.Server{
		Handler:           configureMiddlewares(mux, middlewares...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if conf.PrometheusPort > 0 {
		s.promServer = &http.Server{
			Handler: promhttp.Handler(),
		}
	}
	return s
}

func (s *RendezvousServer) Node() NodeID {
	return s.nodeID
}

func (s *RendezvousServer) HTTPHandler() http.Handler {
	return s.httpServer.Handler
}

func (s *RendezvousServer) IsRunning() bool {
	return s.running.Load()
}

func (s *RendezvousServer) Start() error {
	if s.running.Load() {
		return ErrAlreadyRunning
	}

	addresses := s.config.BindAddresses
	if len(addresses) == 0 {
		addresses = []string{""}
	}

	// ensure we could listen
	listeners := make([]net.Listener, 0, len(addresses))
	promListeners := make([]net.Listener, 0, len(addresses))
	for _, addr := range addresses {
		ln, err := net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(int(s.config.Port))))
		if err != nil {
			return err
		}
		listeners = append(listeners, ln)

		if s.promServer != nil {
			ln, err = net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(int(s.config.PrometheusPort))))
			if err != nil {
				return err
			}
			promListeners = append(promListeners, ln)
		}
	}

	if s.promServer != nil {
		prometheus.Init(string(s.nodeID))
	}

	logger.Infow("starting rendezvous server",
		"version", version.Version,
		"nodeID", s.nodeID,
		"port", s.config.Port,
		"bindAddresses", addresses,
		"emptyTimeout", s.config.Room.EmptyTimeoutDuration(),
	)

	var httpGroup errgroup.Group
	for _, ln := range listeners {
		l := ln
		httpGroup.Go(func() error {
			return s.httpServer.Serve(l)
		})
	}
	for _, ln := range promListeners {
		l := ln
		httpGroup.Go(func() error {
			return s.promServer.Serve(l)
		})
	}
	go func() {
		if err := httpGroup.Wait(); err != http.ErrServerClosed {
			logger.Errorw("could not start server", err)
			s.Stop(true)
		}
	}()

	s.doneChan = make(chan struct{})
	s.running.Store(true)

	<-s.doneChan

	// close signal connections first so rooms drain through the normal disconnect path
	s.rtcService.Stop()
	s.reclaimer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.httpServer.Shutdown(ctx)
	if s.promServer != nil {
		_ = s.promServer.Shutdown(ctx)
	}

	s.syncer.Stop()

	close(s.closedChan)
	return nil
}

func (s *RendezvousServer) Stop(force bool) {
	// wait for all signal connections to close
	if !force {
		for s.rtcService.SessionCount() > 0 {
			time.Sleep(time.Second)
		}
	}

	if !s.running.Swap(false) {
		return
	}
	close(s.doneChan)

	// wait for fully closed
	<-s.closedChan
}

func (s *RendezvousServer) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type debugRoomsResponse struct {
	NodeID NodeID             `json:"nodeId"`
	Stats  prometheus.Stats   `json:"stats"`
	Rooms  []*roomDebugRecord `json:"rooms"`
}

type roomDebugRecord struct {
	RoomID         string   `json:"roomId"`
	NodeID         string   `json:"nodeId,omitempty"`
	Members        []string `json:"members"`
	CreatedAt      string   `json:"createdAt"`
	EmptySince     string   `json:"emptySince,omitempty"`
	CleanupPending bool     `json:"cleanupPending"`
}

func (s *RendezvousServer) debugRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.store.ListRooms(r.Context())
	if err != nil {
		handleError(w, r, http.StatusInternalServerError, err)
		return
	}

	res := debugRoomsResponse{
		NodeID: s.nodeID,
		Stats:  prometheus.CurrentStats(),
		Rooms:  make([]*roomDebugRecord, 0, len(rooms)),
	}
	for _, room := range rooms {
		rec := &roomDebugRecord{
			RoomID:         room.RoomID,
			NodeID:         room.NodeID,
			Members:        make([]string, 0, len(room.Members)),
			CreatedAt:      room.CreatedAt.Format(time.RFC3339),
			CleanupPending: room.CleanupPending,
		}
		for _, m := range room.Members {
			rec.Members = append(rec.Members, string(m))
		}
		if !room.EmptySince.IsZero() {
			rec.EmptySince = room.EmptySince.Format(time.RFC3339)
		}
		res.Rooms = append(res.Rooms, rec)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.Warnw("could not encode rooms", err)
	}
}

func configureMiddlewares(handler http.Handler, middlewares ...negroni.Handler) *negroni.Negroni {
	n := negroni.New()
	for _, m := range middlewares {
		n.Use(m)
	}
	n.UseHandler(handler)
	return n
}
