package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/01moynul/taptosell-console/internal/ai"
	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/audit"
	"github.com/01moynul/taptosell-console/internal/auth"
	"github.com/01moynul/taptosell-console/internal/cache"
	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/notify"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/01moynul/taptosell-console/internal/stats"
	"github.com/01moynul/taptosell-console/internal/storefront"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Client  *apiclient.Client
	Notices *notify.Hub
	Audit   audit.Recorder
	AI      *ai.Service
	Tokens  *auth.TokenManager
	Search  *storefront.SearchSessions
	Cache   cache.Cache

	Plans    *resource.Controller[models.SubscriptionPlan, stats.PlanStats]
	Payouts  *resource.Controller[models.PayoutRequest, stats.PayoutStats]
	Products *resource.Controller[models.Product, stats.ProductStats]
	Users    *resource.Controller[models.User, stats.UserStats]
	Shipping *resource.Controller[models.ShippingCompany, stats.ShippingStats]
	Stories  *resource.Controller[models.Story, stats.StoryStats]

	now      func() time.Time
	cacheTTL time.Duration

	settingsMu sync.RWMutex
	settings   models.PlatformSettings
}

// Deps are the collaborators main wires in.
type Deps struct {
	Client         *apiclient.Client
	// Notices keeps each user's toasts apart.
	Notices        *notify.Hub
	Audit          audit.Recorder
	AI             *ai.Service
	Tokens         *auth.TokenManager
	SearchDebounce time.Duration
	// Cache holds public storefront reads for CacheTTL. Nil disables it.
	Cache          cache.Cache
	CacheTTL       time.Duration
}

// New builds the handlers and one list controller per admin screen.
func New(d Deps) *Handlers {
	h := &Handlers{
		Client:   d.Client,
		Notices:  d.Notices,
		Audit:    d.Audit,
		AI:       d.AI,
		Tokens:   d.Tokens,
		Cache:    d.Cache,
		now:      time.Now,
		cacheTTL: d.CacheTTL,
	}
	if h.Notices == nil {
		h.Notices = notify.NewHub(100)
	}
	if h.Audit == nil {
		h.Audit = audit.NoopRecorder{}
	}
	if h.Cache == nil {
		h.Cache = cache.NoopCache{}
	}
	if h.AI == nil {
		h.AI = &ai.Service{}
	}

	record := h.recordMutation

	h.Plans = resource.New(resource.Config[models.SubscriptionPlan, stats.PlanStats]{
		Name:         "subscription plan",
		Resource:     "admin/subscription-plans",
		Normalize:    models.NormalizePlan,
		SearchFields: models.SubscriptionPlan.SearchFields,
		FilterValue:  models.SubscriptionPlan.FilterValue,
		Stats:        stats.Plans,
		OnMutation:   record,
	}, d.Client, nil)

	h.Payouts = resource.New(resource.Config[models.PayoutRequest, stats.PayoutStats]{
		Name:         "payout request",
		Resource:     "admin/payouts",
		Normalize:    models.NormalizePayout,
		SearchFields: models.PayoutRequest.SearchFields,
		FilterValue:  models.PayoutRequest.FilterValue,
		Stats:        stats.Payouts,
		OnMutation:   record,
	}, d.Client, nil)

	h.Products = resource.New(resource.Config[models.Product, stats.ProductStats]{
		Name:         "product",
		Resource:     "admin/products",
		Normalize:    models.NormalizeProduct,
		SearchFields: models.Product.SearchFields,
		FilterValue:  models.Product.FilterValue,
		Stats:        stats.Products,
		OnMutation:   record,
	}, d.Client, nil)

	h.Users = resource.New(resource.Config[models.User, stats.UserStats]{
		Name:         "user",
		Resource:     "admin/users",
		Normalize:    models.NormalizeUser,
		SearchFields: models.User.SearchFields,
		FilterValue:  models.User.FilterValue,
		Stats:        stats.Users,
		OnMutation:   record,
	}, d.Client, nil)

	h.Shipping = resource.New(resource.Config[models.ShippingCompany, stats.ShippingStats]{
		Name:         "shipping company",
		Resource:     "admin/shipping-companies",
		Normalize:    models.NormalizeShippingCompany,
		SearchFields: models.ShippingCompany.SearchFields,
		FilterValue:  models.ShippingCompany.FilterValue,
		Stats:        stats.ShippingCompanies,
		OnMutation:   record,
	}, d.Client, nil)

	h.Stories = resource.New(resource.Config[models.Story, stats.StoryStats]{
		Name:         "story",
		Resource:     "stories",
		Normalize:    models.NormalizeStory,
		SearchFields: models.Story.SearchFields,
		FilterValue:  models.Story.FilterValue,
		Stats:        func(items []models.Story) stats.StoryStats { return stats.Stories(items, h.now()) },
		OnMutation:   record,
	}, d.Client, nil)

	h.Search = storefront.NewSearchSessions(d.SearchDebounce, 30*time.Minute, storefront.ProductSearch(d.Client))
	return h
}

type actorKey struct{}

// requestContext carries the caller's request id and user id down to the
// API client and the audit hook, and routes toasts to the caller's own center.
func (h *Handlers) requestContext(c *gin.Context) context.Context {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)

	ctx := apiclient.WithRequestID(c.Request.Context(), requestID)
	ctx = notify.WithNotifier(ctx, h.noticesFor(c))
	return context.WithValue(ctx, actorKey{}, c.GetInt64("userID"))
}

// noticesFor returns the caller's notification center.
func (h *Handlers) noticesFor(c *gin.Context) *notify.Center {
	return h.Notices.For(c.GetInt64("userID"))
}

func (h *Handlers) recordMutation(ctx context.Context, m resource.Mutation) {
	e := audit.Entry{
		RequestID: apiclient.RequestID(ctx),
		Resource:  m.Resource,
		EntityID:  m.EntityID,
		Action:    string(m.Action),
		OK:        m.Err == nil,
		CreatedAt: h.now().UTC(),
	}
	e.ActorID, _ = ctx.Value(actorKey{}).(int64)
	if m.Err != nil {
		e.Message = apiclient.Message(m.Err, m.Err.Error())
	}
	audit.Safe(h.Audit)(ctx, e)
}

// listView loads a controller and renders it through the request's filters.
func listView[T any, S any](c *gin.Context, h *Handlers, ctrl *resource.Controller[T, S], filterKeys ...string) {
	// 1. --- Fetch ---
	// A failed load keeps the previous list; the view carries the error.
	_ = ctrl.Load(h.requestContext(c))

	// 2. --- Filter and render ---
	view := ctrl.View(resource.QueryFromValues(c.Request.URL.Query(), filterKeys...))
	status := http.StatusOK
	if view.State == resource.StateError && view.Total == 0 {
		status = http.StatusBadGateway
	}
	c.JSON(status, view)
}

// submitDialog validates a form, runs the write and answers with the dialog
// state: closed on success, open with the typed values on failure.
func submitDialog[F forms.Form](c *gin.Context, h *Handlers, form F, write func(ctx context.Context, form F) error, success int, after func() any) {
	editor := forms.NewEditor[F](h.noticesFor(c))
	editor.Open(form)

	if err := editor.Submit(h.requestContext(c), form, write); err != nil {
		body := gin.H{"dialog": editor.State(), "form": editor.Form()}
		var verrs forms.ValidationErrors
		if errors.As(err, &verrs) {
			body["error"] = verrs.Error()
			body["fields"] = verrs
			c.JSON(http.StatusBadRequest, body)
			return
		}
		body["error"] = apiclient.Message(err, "Request failed")
		c.JSON(upstreamStatus(err), body)
		return
	}

	body := gin.H{"dialog": editor.State()}
	if after != nil {
		body["result"] = after()
	}
	c.JSON(success, body)
}

// upstreamStatus maps a platform error onto our answer: client errors pass
// through, everything else is a bad gateway.
func upstreamStatus(err error) int {
	if errors.Is(err, apiclient.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	if status := apiclient.StatusCode(err); status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}

func respondUpstreamError(c *gin.Context, err error, fallback string) {
	c.JSON(upstreamStatus(err), gin.H{"error": apiclient.Message(err, fallback)})
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// queryLimit reads ?limit= within 1..max.
func queryLimit(c *gin.Context, def, max int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func messageOr(err error, fallback string) string {
	return apiclient.Message(err, fallback)
}

func settingsMutation(err error) resource.Mutation {
	return resource.Mutation{Resource: settingsPath, Action: resource.ActionUpdate, Err: err}
}
