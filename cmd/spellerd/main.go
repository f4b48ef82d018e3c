package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"speller/internal/customdict"
	"speller/internal/dictionary"
	"speller/internal/speller"
	"speller/pkg/accuracy"
	"speller/pkg/editdist"
)

func main() {
	_ = godotenv.Load()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "spellerd",
		Level: hclog.LevelFromString(getenv("LOG_LEVEL", "info")),
	})

	level, err := accuracy.ParseLevel(getenv("ACCURACY_LEVEL", "medium"))
	if err != nil {
		logger.Error("invalid ACCURACY_LEVEL", "error", err)
		os.Exit(1)
	}
	calc, err := editdist.Select(getenv("DISTANCE_ALGO", "tworow"))
	if err != nil {
		logger.Error("invalid DISTANCE_ALGO", "error", err)
		os.Exit(1)
	}
	workers := getEnvInt("RANK_WORKERS", 1)

	dictionaryPath := getenv("DICTIONARY_PATH", "words.txt")
	dict, err := dictionary.Load(dictionaryPath)
	if err != nil {
		logger.Error("failed to load dictionary", "path", dictionaryPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dictionary loaded", "path", dictionaryPath, "words", dict.Len())

	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	store := customdict.New(client, os.Getenv("REDIS_KEY"))

	// Custom words persist in Redis; fold them into the in-memory set so
	// the exact-match fast path sees them.
	if words, err := store.All(context.Background()); err != nil {
		logger.Warn("failed to load custom words", "error", err)
	} else {
		for _, w := range words {
			dict.Add(w)
		}
		logger.Info("custom words loaded", "count", len(words))
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/check", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word  string `json:"word"`
			Level string `json:"level"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		reqLevel := level
		if req.Level != "" {
			parsed, err := accuracy.ParseLevel(req.Level)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}
			reqLevel = parsed
		}
		word := strings.ToLower(strings.TrimSpace(req.Word))
		sp := speller.New(dict,
			speller.WithCalculator(calc),
			speller.WithLevel(reqLevel),
			speller.WithWorkers(workers),
		)
		res := sp.Check(word)
		logger.Debug("checked word", "word", word, "level", reqLevel, "correct", res.Correct, "matches", len(res.Matches))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		word := strings.ToLower(strings.TrimSpace(req.Word))
		if err := store.Add(r.Context(), word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		dict.Add(word)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.ToLower(strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/"))
		if word == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if err := store.Remove(r.Context(), word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		dict.Remove(word)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	addr := getenv("HTTP_ADDR", ":8080")
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
