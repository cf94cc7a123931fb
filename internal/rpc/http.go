package rpc

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"
)

// HTTPOptions customises the Fiber transport.
type HTTPOptions struct {
	// NewContext builds the per-request context. Nil means every caller is anonymous.
	NewContext func(c *fiber.Ctx) *Context
	// Observe is called once per procedure call.
	Observe func(path string, code Code, elapsed time.Duration)
	// OnMutation is called after a successful mutation by an authenticated caller.
	OnMutation func(rc *Context, path string)
	Logger     zerolog.Logger
}

type httpTransport struct {
	router *Router
	opts   HTTPOptions
}

// NewHTTPHandler serves GET and POST /:path. Batches use ?batch=1 with a
// comma separated path and an input object keyed by call index.
func NewHTTPHandler(router *Router, opts HTTPOptions) fiber.Handler {
	t := &httpTransport{router: router, opts: opts}
	return t.handle
}

func (t *httpTransport) handle(c *fiber.Ctx) error {
	rc := Anonymous()
	if t.opts.NewContext != nil {
		if built := t.opts.NewContext(c); built != nil {
			rc = built
		}
	}

	via := KindQuery
	if c.Method() == fiber.MethodPost {
		via = KindMutation
	}

	// Params aliases the request buffer; the path outlives the request in
	// metrics labels and published events.
	param := utils.CopyString(c.Params("path"))
	rawPath, err := url.PathUnescape(param)
	if err != nil {
		rawPath = param
	}
	input := t.readInput(c, via)
	ctx := c.UserContext()

	if c.Query("batch") != "1" {
		response, status := t.call(ctx, rc, rawPath, via, input)
		return c.Status(status).JSON(response)
	}

	paths := strings.Split(rawPath, ",")
	inputs := map[string]json.RawMessage{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &inputs); err != nil {
			rpcErr := BadRequest("batch input must be an object keyed by call index", nil)
			return c.Status(rpcErr.Code.HTTPStatus()).JSON(errorResponse(rawPath, rpcErr))
		}
	}

	responses := make([]Response, len(paths))
	status := 0
	for i, path := range paths {
		response, callStatus := t.call(ctx, rc, path, via, inputs[strconv.Itoa(i)])
		responses[i] = response
		switch {
		case status == 0:
			status = callStatus
		case status != callStatus:
			status = fiber.StatusMultiStatus
		}
	}
	return c.Status(status).JSON(responses)
}

func (t *httpTransport) readInput(c *fiber.Ctx, via Kind) json.RawMessage {
	if via == KindQuery {
		if raw := c.Query("input"); raw != "" {
			return json.RawMessage(raw)
		}
		return nil
	}
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	// fasthttp reuses the body buffer once the handler returns.
	return json.RawMessage(append([]byte(nil), body...))
}

func (t *httpTransport) call(ctx context.Context, rc *Context, path string, via Kind, input json.RawMessage) (Response, int) {
	started := time.Now()
	out, err := t.router.Call(ctx, rc, path, via, input)
	elapsed := time.Since(started)

	if err != nil {
		rpcErr := AsError(err)
		t.logFailure(rc, path, rpcErr)
		t.observe(path, rpcErr.Code, elapsed)
		return errorResponse(path, rpcErr), rpcErr.Code.HTTPStatus()
	}

	t.observe(path, CodeOK, elapsed)
	if t.opts.OnMutation != nil && rc.Authenticated() {
		if procedure, ok := t.router.Lookup(path); ok && procedure.Kind() == KindMutation {
			t.opts.OnMutation(rc, path)
		}
	}
	return successResponse(out), fiber.StatusOK
}

func (t *httpTransport) observe(path string, code Code, elapsed time.Duration) {
	if t.opts.Observe == nil {
		return
	}
	if _, ok := t.router.Lookup(path); !ok {
		path = "unknown"
	}
	t.opts.Observe(path, code, elapsed)
}

func (t *httpTransport) logFailure(rc *Context, path string, err *Error) {
	logger := rc.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = t.opts.Logger
	}
	event := logger.Warn()
	if err.Code == CodeInternal {
		event = logger.Error()
	}
	event = event.Str("path", path).Str("code", string(err.Code))
	if cause := err.Unwrap(); cause != nil {
		event = event.Err(cause)
	}
	event.Msg(err.Message)
}
