package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Invicton-Labs/go-linkedlists/collections"
	"github.com/Invicton-Labs/go-linkedlists/log"
	"github.com/Invicton-Labs/go-linkedlists/scenario"
	"github.com/gin-gonic/gin"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"go.uber.org/zap/zapcore"
)

type response struct {
	Error      string            `json:"error"`
	Operations []string          `json:"operations"`
	Results    []scenario.Result `json:"results"`
}

func newEngine(buf *bytes.Buffer, config Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Logger = log.New(log.NewInput{
		Name:  "server-test",
		Level: zapcore.InfoLevel,
		Sink:  zapcore.AddSync(buf),
	})
	engine := gin.New()
	RegisterRouting(engine, config)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method string, target string, body string) (int, response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	out := response{}
	assert.NotError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestOperations(t *testing.T) {
	buf := &bytes.Buffer{}
	code, out := do(t, newEngine(buf, Config{}), http.MethodGet, "/api/operations", "")
	assert.Equal(t, http.StatusOK, code)
	check.True(t, collections.SliceEqual(out.Operations, scenario.Operations()))
	check.Substring(t, buf.String(), "Handled request")
	check.Substring(t, buf.String(), "request_id")
}

func TestRunScenarios(t *testing.T) {
	t.Run("Results", func(t *testing.T) {
		engine := newEngine(&bytes.Buffer{}, Config{Parallelism: 2})
		code, out := do(t, engine, http.MethodPost, "/api/scenarios?parallelism=1", `[
			{"name": "partition", "kind": "doubly", "seed": [5, 1, 3, 2, 4], "steps": [{"op": "partitionList", "args": [3]}]},
			{"name": "binary", "kind": "singly", "seed": [1, 1, 0], "steps": [{"op": "binary"}, {"op": "get", "args": [7]}]}
		]`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 2, len(out.Results))
		check.Equal(t, "partition", out.Results[0].Name)
		check.True(t, collections.SliceEqual(out.Results[0].Values, []int{1, 2, 5, 3, 4}))
		check.Equal(t, "6", out.Results[1].Steps[0].Output)
		check.Substring(t, out.Results[1].Steps[1].Error, "out of range")
		check.NotZero(t, out.Results[1].RunID)
	})
	t.Run("InvalidScenario", func(t *testing.T) {
		code, out := do(t, newEngine(&bytes.Buffer{}, Config{}), http.MethodPost, "/api/scenarios", `[{"name": "x", "kind": "tree"}]`)
		check.Equal(t, http.StatusBadRequest, code)
		check.Substring(t, out.Error, "unknown list kind")
	})
	t.Run("MalformedBody", func(t *testing.T) {
		code, out := do(t, newEngine(&bytes.Buffer{}, Config{}), http.MethodPost, "/api/scenarios", `{`)
		check.Equal(t, http.StatusBadRequest, code)
		check.NotZero(t, out.Error)
	})
	t.Run("BadParallelism", func(t *testing.T) {
		code, _ := do(t, newEngine(&bytes.Buffer{}, Config{}), http.MethodPost, "/api/scenarios?parallelism=-1", `[]`)
		check.Equal(t, http.StatusBadRequest, code)
	})
	t.Run("TooMany", func(t *testing.T) {
		body := `[{"name": "a", "kind": "singly"}, {"name": "b", "kind": "doubly"}]`
		code, out := do(t, newEngine(&bytes.Buffer{}, Config{MaxScenarios: 1}), http.MethodPost, "/api/scenarios", body)
		check.Equal(t, http.StatusRequestEntityTooLarge, code)
		check.Substring(t, out.Error, "too many scenarios")
	})
}
