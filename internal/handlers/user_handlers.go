package handlers

import (
	"context"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/gin-gonic/gin"
)

// --- Console Session ---

// LoginInput is what the console login form sends.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/auth/login
// The platform checks the credentials; the console then issues its own session token.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Ask the platform ---
	raw, err := h.Client.Create(h.requestContext(c), "auth/login", map[string]any{
		"email":    input.Email,
		"password": input.Password,
	})
	if err != nil {
		respondUpstreamError(c, err, "Invalid email or password")
		return
	}
	record := raw
	if nested := normalize.Map(raw["user"]); nested != nil {
		record = nested
	}
	user := models.NormalizeUser(record)
	userID := normalize.ToInt64(record["id"])
	if userID <= 0 || user.RoleID == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unexpected login response from the platform"})
		return
	}

	// 3. --- Refuse banned accounts and shoppers ---
	if user.IsBanned {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account has been banned"})
		return
	}
	if user.RoleID == models.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Customer accounts cannot use the console"})
		return
	}

	// 4. --- Issue the console token ---
	token, err := h.Tokens.Generate(userID, user.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

//
// --- Admin: User Handlers ---
//

// GetUsers is the handler for GET /v1/admin/users
// Filters: search, role, status (active|banned).
func (h *Handlers) GetUsers(c *gin.Context) {
	listView(c, h, h.Users, "role", "status")
}

// UpdateUser is the handler for PUT /v1/admin/users/:id
// The form is prefilled from the user's current state on the platform, so a
// request that only changes the role still sends the ban flag (and the reverse).
func (h *Handlers) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	ctx := h.requestContext(c)

	// 1. --- Fetch the current record ---
	// Always fresh: the cached list may predate another admin's change.
	raw, err := h.Client.Get(ctx, "admin/users", id)
	if apiclient.StatusCode(err) == http.StatusNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to load user")
		return
	}
	user := models.NormalizeUser(raw)

	// 2. --- Overlay the submitted fields ---
	form := forms.UserFromEntity(user)
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Submit ---
	submitDialog(c, h, form, func(ctx context.Context, f forms.UserForm) error {
		return h.Users.Update(ctx, id, f.Payload())
	}, http.StatusOK, func() any { return h.Users.View(resource.Query{}) })
}
