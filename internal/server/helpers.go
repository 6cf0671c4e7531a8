package server

import (
	"errors"
	"strings"
	"unicode"

	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const (
	maxPaginationLimit = 100
	defaultPageLimit   = 20
)

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// requireUser loads the authenticated user from the userID local set by
// AuthRequired. On failure it writes the response and returns
// errResponseWritten; callers should check: if err != nil { return nil }.
func (s *Server) requireUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return nil, errResponseWritten
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		_ = models.RespondAppError(c, err)
		return nil, errResponseWritten
	}
	if user.Banned {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Account suspended"))
		return nil, errResponseWritten
	}
	return user, nil
}

// optionalUser resolves the viewer on public routes. An absent or invalid
// Authorization header yields a nil viewer, never an error.
func (s *Server) optionalUser(c *fiber.Ctx) *models.User {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	userID, ok := s.parseToken(c, parts[1])
	if !ok {
		return nil
	}
	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return nil
	}
	// Banned viewers stay resolved so they can still fetch their own
	// content by ID; mutating routes go through requireUser and reject
	// them there.
	return user
}
