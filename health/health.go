// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sprintertech/across-dataworker/dataworker"
)

type BundleSource interface {
	Latest() (*dataworker.Bundle, error)
}

// Handler reports ok once the dataworker built its first bundle.
func Handler(bundles BundleSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := bundles.Latest(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("no bundle built"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}

// StartHealthEndpoint starts /health endpoint on provided port
func StartHealthEndpoint(port uint16, bundles BundleSource) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", Handler(bundles))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Starting /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
	}
}
