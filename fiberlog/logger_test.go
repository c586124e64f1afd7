package fiberlog

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newLoggedApp(tags []string) (*fiber.App, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: tags}))
	return app, hook
}

func TestConcurrentRequestsKeepOwnLatency(t *testing.T) {
	const handlerDelay = 40 * time.Millisecond

	app, hook := newLoggedApp([]string{TagPath, TagLatency, TagStatus})
	app.Get("/slow", func(ctx *fiber.Ctx) error {
		time.Sleep(handlerDelay)
		return ctx.SendString("ok")
	})
	app.Get("/fast", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	// overlap slow and fast requests so shared timing state would smear
	// one request's latency into another's log entry
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for g := 0; g < 8; g++ {
		path := "/slow"
		if g%2 == 1 {
			path = "/fast"
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			for i := 0; i < 4; i++ {
				resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
				if err != nil {
					errs <- err
					return
				}
				resp.Body.Close()
			}
		}(path)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 32)
	for _, entry := range entries {
		latency, err := time.ParseDuration(entry.Data[TagLatency].(string))
		require.NoError(t, err)
		if entry.Data[TagPath] == "/slow" {
			require.GreaterOrEqual(t, latency, handlerDelay,
				"slow request logged with another request's timing")
		}
	}
}

func TestLogLevelFollowsStatus(t *testing.T) {
	app, hook := newLoggedApp([]string{TagStatus, TagMethod})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	resp.Body.Close()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	resp.Body.Close()

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, logrus.InfoLevel, entries[0].Level)
	require.Equal(t, 200, entries[0].Data[TagStatus])
	require.Equal(t, logrus.WarnLevel, entries[1].Level)
	require.Equal(t, 404, entries[1].Data[TagStatus])
}
