package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/kikuchan-store/internal/cart/domain"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/controller"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
)

// Server maps requests onto page sessions. Gestures are serialized by mu,
// so the cart sees one gesture at a time.
type Server struct {
	mu       sync.Mutex
	cart     *cartapp.Service
	sessions map[string]*Session
	fallback *Session
	msgs     view.Messages
	log      *slog.Logger
}

// NewServer takes the sessions to serve; the first one handles requests
// whose redirect path matches no session.
func NewServer(cart *cartapp.Service, msgs view.Messages, log *slog.Logger, sessions ...*Session) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cart:     cart,
		sessions: make(map[string]*Session, len(sessions)),
		msgs:     msgs,
		log:      log,
	}
	for _, sess := range sessions {
		s.sessions[sess.Page.Path()] = sess
		if s.fallback == nil {
			s.fallback = sess
		}
	}
	return s
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logMiddleware())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	for path := range s.sessions {
		r.GET(path, s.renderPage)
	}
	r.GET("/api/cart", s.snapshot)

	r.POST("/cart/items/:id", s.productEvent(controller.EventAdd))
	r.POST("/cart/items/:id/delete", s.productEvent(controller.EventRemove))
	r.POST("/cart/toggle", s.event(controller.EventToggle))
	r.POST("/cart/open", s.event(controller.EventOpen))
	r.POST("/cart/close", s.event(controller.EventClose))
	r.POST("/backdrop/dismiss", s.event(controller.EventBackdropDismiss))
	r.POST("/overlay/dismiss", s.event(controller.EventOverlayDismiss))
	r.POST("/checkout", s.event(controller.EventCheckout))
	return r
}

func (s *Server) renderPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[c.FullPath()]
	if !ok {
		sess = s.fallback
	}

	data := s.pageData(sess)
	consumeOnce(sess.Page)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTemplate.Execute(c.Writer, data); err != nil {
		s.log.Error("page render failed", slog.Any("err", err), slog.String("page", sess.Page.Name()))
	}
}

func (s *Server) snapshot(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respondJSON(c, s.sessionFor(c.Query("page")))
}

func (s *Server) productEvent(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		s.dispatch(c, controller.Event{Name: name, ProductID: id})
	}
}

func (s *Server) event(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.dispatch(c, controller.Event{Name: name})
	}
}

func (s *Server) dispatch(c *gin.Context, ev controller.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(c.PostForm("redirect"))
	ev.Prompter = formPrompter{page: sess.Page, confirmed: c.PostForm("confirm") == "yes"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := sess.Bus.Dispatch(ctx, ev); err != nil {
		s.log.Error("dispatch failed", slog.Any("err", err), slog.String("event", ev.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if wantsJSON(c) {
		s.respondJSON(c, sess)
		return
	}
	c.Redirect(http.StatusSeeOther, sess.Page.Path())
}

type cartSnapshot struct {
	Lines         []cartdomain.CartLine `json:"lines"`
	TotalQuantity int                   `json:"totalQuantity"`
	TotalPrice    int64                 `json:"totalPrice"`
	PanelOpen     bool                  `json:"panelOpen"`
	OverlayActive bool                  `json:"overlayActive"`
	ReceiptID     string                `json:"receiptId,omitempty"`
	Notice        string                `json:"notice,omitempty"`
	Confirm       string                `json:"confirm,omitempty"`
}

func (s *Server) respondJSON(c *gin.Context, sess *Session) {
	snap := cartSnapshot{
		Lines:         s.cart.Lines(),
		TotalQuantity: s.cart.TotalQuantity(),
		TotalPrice:    s.cart.TotalPrice(),
		PanelOpen:     sess.Ctrl.State() == controller.PanelOpen,
		OverlayActive: sess.Ctrl.OverlayActive(),
		Notice:        activeText(sess.Page, view.RoleNotice),
		Confirm:       activeText(sess.Page, view.RoleDialog),
	}
	if r, ok := sess.Ctrl.Receipt(); ok {
		snap.ReceiptID = r.ID
	}
	consumeOnce(sess.Page)
	c.JSON(http.StatusOK, snap)
}

func (s *Server) pageData(sess *Session) pageData {
	p := sess.Page
	d := pageData{
		Title:    "kikuchan store",
		Path:     p.Path(),
		ThankYou: s.msgs.ThankYou,
		Notice:   activeText(p, view.RoleNotice),
		Dialog:   activeText(p, view.RoleDialog),
	}
	for _, b := range p.Targets(view.RoleBadge) {
		d.Badges = append(d.Badges, b.Text())
	}
	if len(d.Badges) == 0 {
		d.Badges = []string{strconv.Itoa(s.cart.TotalQuantity())}
	}
	if g, ok := p.Target(view.RoleProductGrid); ok {
		d.HasGrid = true
		d.Grid = g.HTML()
	}
	if panel, ok := p.Target(view.RolePanel); ok {
		d.HasPanel = true
		d.PanelOpen = panel.Active()
		if b, ok := p.Target(view.RoleBackdrop); ok {
			d.BackdropActive = b.Active()
		}
		if l, ok := p.Target(view.RoleLineList); ok {
			d.Lines = l.HTML()
		}
		if t, ok := p.Target(view.RoleTotal); ok {
			d.Total = t.Text()
		}
	}
	if o, ok := p.Target(view.RoleOverlay); ok {
		d.HasOverlay = true
		d.OverlayActive = o.Active()
		d.OverlayText = o.Text()
	}
	return d
}

func (s *Server) sessionFor(path string) *Session {
	if sess, ok := s.sessions[path]; ok {
		return sess
	}
	return s.fallback
}

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func activeText(p *view.Page, r view.Role) string {
	t, ok := p.Target(r)
	if !ok || !t.Active() {
		return ""
	}
	return t.Text()
}
