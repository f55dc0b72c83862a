// Package web serves the browser console for the Mystery Stays backend.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"sync"
	"time"

	"mysterystays/demo"
	"mysterystays/forms"
	"mysterystays/services/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Slot is the output area under one form.
type Slot struct {
	Body string
	Err  string
}

// Page is what the console template renders. Slots is keyed by form name.
type Page struct {
	BackendURL string
	Demo       *demo.Result
	Slots      map[string]*Slot
}

// FormDispatcher sends one form submission to the backend.
type FormDispatcher interface {
	Dispatch(ctx context.Context, form forms.Form, values url.Values) (string, error)
}

// DemoRunner runs the one-click walkthrough.
type DemoRunner interface {
	Run(ctx context.Context) (*demo.Result, error)
}

// Console holds the page state. Each form writes only its own slot.
type Console struct {
	backendURL string
	dispatcher FormDispatcher
	runner     DemoRunner
	logger     logger.Logger
	timeout    time.Duration

	mu    sync.Mutex
	demo  *demo.Result
	slots map[forms.Form]*Slot
}

type ConsoleOptions struct {
	BackendURL string
	Dispatcher FormDispatcher
	Runner     DemoRunner
	Logger     logger.Logger // optional
	Timeout    time.Duration // optional
}

func NewConsole(opts ConsoleOptions) *Console {
	c := &Console{
		backendURL: opts.BackendURL,
		dispatcher: opts.Dispatcher,
		runner:     opts.Runner,
		logger:     opts.Logger,
		timeout:    opts.Timeout,
		slots:      make(map[forms.Form]*Slot),
	}
	if c.logger == nil {
		c.logger = logger.Nop{}
	}
	if c.timeout <= 0 {
		c.timeout = 2 * time.Minute
	}
	return c
}

// Template parses the embedded console page.
func Template() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/index.html"))
}

// Register mounts the console on router.
func (c *Console) Register(router *gin.Engine) {
	router.SetHTMLTemplate(Template())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", c.Index)
	router.POST("/demo", c.RunDemo)
	router.POST("/forms/:form", c.SubmitForm)
}

func (c *Console) page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots := make(map[string]*Slot, len(c.slots))
	for k, v := range c.slots {
		slots[string(k)] = v
	}
	return Page{BackendURL: c.backendURL, Demo: c.demo, Slots: slots}
}

func (c *Console) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", c.page())
}

func (c *Console) RunDemo(ctx *gin.Context) {
	runCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	result, err := c.runner.Run(runCtx)
	if err != nil {
		c.logger.Error("demo failed: %v", err)
	}

	c.mu.Lock()
	c.demo = result
	c.mu.Unlock()

	ctx.Redirect(http.StatusSeeOther, "/#oneClickDemo")
}

func (c *Console) SubmitForm(ctx *gin.Context) {
	form := forms.Form(ctx.Param("form"))
	if !knownForm(form) {
		ctx.String(http.StatusNotFound, "unknown form %q", form)
		return
	}
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	runCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	slot := &Slot{}
	body, err := c.dispatcher.Dispatch(runCtx, form, ctx.Request.PostForm)
	if err != nil {
		c.logger.Error("%s failed: %v", form, err)
		slot.Err = err.Error()
	} else {
		slot.Body = body
	}

	c.mu.Lock()
	c.slots[form] = slot
	c.mu.Unlock()

	ctx.Redirect(http.StatusSeeOther, "/")
}

func knownForm(form forms.Form) bool {
	for _, f := range forms.Forms {
		if f == form {
			return true
		}
	}
	return false
}
