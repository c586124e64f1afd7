package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	TagPid     = "pid"
	RequestID  = "request_id"
)

// data carries per-request measurements. Every request gets its own instance
// so concurrent requests never observe each other's timings.
type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag resolves a single log field value for the current request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Response().Body())
		},
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			reqID := c.Get(fiber.HeaderXRequestID)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			return reqID
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, exist := all[tag]; exist {
			ftm[tag] = ft
		}
	}
	return ftm
}
