package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("target", pflag.ExitOnError)
	port := flags.Int("port", 9999, "Listening port")
	delay := flags.Duration("delay", 0, "Delay before answering each request")
	_ = flags.Parse(os.Args[1:])

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *port <= 0 {
		log.Fatal("port must be > 0")
	}

	addr := fmt.Sprintf(":%d", *port)
	log.WithFields(logrus.Fields{"addr": addr, "delay": delay.String()}).Info("target server listening")
	log.Fatal(http.ListenAndServe(addr, newHandler(*delay)))
}

// newHandler answers every GET with a small JSON body after delay.
func newHandler(delay time.Duration) http.Handler {
	var served atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"served":  served.Add(1),
		})
	})
	return mux
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
