package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Logger logs every request with its status and latency.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("HTTP request")
}

func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			_ = resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{
				Error:   http.StatusText(http.StatusInternalServerError),
				Status:  http.StatusInternalServerError,
				Message: "internal error",
			})
		}
	}()

	chain.ProcessFilter(req, resp)
}

func HandleError(resp *restful.Response, err error, status int) {
	_ = resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error:   http.StatusText(status),
		Status:  status,
		Message: err.Error(),
	})
}
