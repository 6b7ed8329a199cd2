// cmd/symdemo/main.go — Standalone HTTP demo server for go-sympy
//
// Exposes the simplifier and the smart equation solver over HTTP for
// quick manual testing.
//
// Usage:
//   go run cmd/symdemo/main.go -port 8080
//
// Simplify endpoint: POST /simplify  {"coeffs": [c0, c1, ...], "var": "x"}
// Solve endpoint:     POST /solve    {"coeffs": [c0, c1, ...], "var": "x"}
// Health endpoint:    GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	sympy "github.com/njchilds90/go-sympy"
)

// solveRequest mirrors the shape a thin client would POST: a single
// named variable and the integer coefficients of a polynomial in it,
// from which equationFromCoeffs builds the sum of terms c*x^i.
type solveRequest struct {
	Coeffs []int64 `json:"coeffs"` // coeffs[i] is the coefficient of x^i
	Var    string  `json:"var"`
}

func equationFromCoeffs(coeffs []int64, v string) sympy.Expr {
	var terms []sympy.Expr
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		term := sympy.Mul(sympy.NumberOf(c), sympy.Pow(sympy.Var(v), sympy.NumberOf(int64(i))))
		terms = append(terms, term)
	}
	return sympy.Add(terms...)
}

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/simplify", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		e := equationFromCoeffs(req.Coeffs, req.Var)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"input":  e.String(),
			"result": sympy.Simplify(e).String(),
		})
	})

	mux.HandleFunc("/solve", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		e := equationFromCoeffs(req.Coeffs, req.Var)
		solver := sympy.NewSmartEquationSolver()
		result, steps, err := solver.SolveWithExplanation(e, req.Var)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		titles := make([]string, len(steps))
		for i, s := range steps {
			titles[i] = s.Title
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": result.String(),
			"steps":  titles,
		})
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("go-sympy demo server listening on %s", addr)
	log.Printf("  POST /simplify — simplify a polynomial given as coefficients")
	log.Printf("  POST /solve    — solve a polynomial equation for var")
	log.Printf("  GET  /health   — health check")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
