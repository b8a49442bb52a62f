package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/kevotieno/craft_agency/models"
)

var store *session.Store

// AuthUser is the projection of the signed-in user carried by the session.
// Handlers receive it through c.Locals("authUser") instead of touching the
// session store directly.
type AuthUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func InitSessionStore() {
	store = session.New(session.Config{
		KeyLookup:      "cookie:session_id",
		Expiration:     72 * time.Hour,
		CookieHTTPOnly: true,
		KeyGenerator:   uuid.NewString,
	})
}

// SaveUserSession rotates the session key and stores the user projection.
func SaveUserSession(c *fiber.Ctx, user *models.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set("user_id", user.ID)
	sess.Set("first_name", user.FirstName)
	sess.Set("last_name", user.LastName)
	sess.Set("email", user.Email)
	sess.Set("role", user.Role)
	return sess.Save()
}

// DestroySession removes the server-side session entry and expires the cookie.
func DestroySession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentUser returns the session's user projection, or nil when the request
// carries no authenticated session.
func CurrentUser(c *fiber.Ctx) *AuthUser {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}

	id, ok := sess.Get("user_id").(uint)
	if !ok {
		return nil
	}

	user := &AuthUser{ID: id}
	user.FirstName, _ = sess.Get("first_name").(string)
	user.LastName, _ = sess.Get("last_name").(string)
	user.Email, _ = sess.Get("email").(string)
	user.Role, _ = sess.Get("role").(string)
	return user
}
